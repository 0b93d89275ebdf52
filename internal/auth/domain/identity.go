package domain

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// CanManage reports whether this identity may mutate a resource owned by
// ownerUID. Admins may mutate anything.
func (i *Identity) CanManage(ownerUID string) bool {
	return i.IsAdmin || i.UID == ownerUID
}
