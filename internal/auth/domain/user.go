package domain

import "time"

// UserProfile is the Firestore document kept alongside each Firebase Auth
// user, keyed by uid under the "users" collection.
type UserProfile struct {
	Username  string     `json:"username" firestore:"username"`
	FirstName string     `json:"firstName" firestore:"firstName"`
	LastName  string     `json:"lastName" firestore:"lastName"`
	Email     string     `json:"email" firestore:"email"`
	Role      string     `json:"role" firestore:"role"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}
