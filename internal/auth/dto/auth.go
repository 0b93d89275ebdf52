package dto

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type UpdateUserRequest struct {
	UID       string `json:"uid" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type UpdatePasswordRequest struct {
	UID         string `json:"uid" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type DeleteUserRequest struct {
	UID string `json:"uid" binding:"required"`
}

type CheckUserRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetLinkRequest struct {
	Email     string `json:"email" binding:"required"`
	SendEmail bool   `json:"sendEmail"`
}

type CheckUserResponse struct {
	OK        bool     `json:"ok"`
	UID       string   `json:"uid,omitempty"`
	Email     string   `json:"email,omitempty"`
	Providers []string `json:"providers,omitempty"`
	Code      string   `json:"code,omitempty"`
}

type ResetLinkResponse struct {
	OK        bool     `json:"ok"`
	UID       string   `json:"uid,omitempty"`
	Link      string   `json:"link,omitempty"`
	Code      string   `json:"code,omitempty"`
	Providers []string `json:"providers,omitempty"`
}
