package repository

// GetOneUserOptions filters a single user. Non-empty fields are ANDed.
type GetOneUserOptions struct {
	ID       string
	Username string
}
