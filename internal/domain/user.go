package domain

// User is kept for the weak UserID reference on trips. There is no
// authentication in this system, so users never cross the HTTP boundary;
// the password field exists only because the seed data carries one.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
