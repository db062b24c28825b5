package user

// User is an account allowed to sign in.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
}

// SeedInput describes one configured account. Password is hashed at boot when
// PasswordHash is empty.
type SeedInput struct {
	ID           string
	Username     string
	Password     string
	PasswordHash string
	Role         string
}
