// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User represents a registered account. The (Username, Email) pair identifies
// an account: both signup's duplicate check and login look users up by the
// exact pair, so the credentials presented at login must match the ones used
// at signup.
type User struct {
	ID       string `json:"_id,omitempty"` // Store-assigned identifier, hex-encoded.
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` // Bcrypt hash. Returned verbatim on signup per the API contract.
	RoleID   RoleID `json:"roleId"`   // Stored but never enforced by any route.
}
