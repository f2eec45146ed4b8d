package domain

// Identity is the authenticated caller attached to a request after the
// session token has been verified.
type Identity struct {
	ID       string
	Role     Role
	Email    string
	Username string
}
