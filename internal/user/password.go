package user

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BuildUsers turns configured accounts into Users, hashing plain passwords
// and generating ids where none are set.
func BuildUsers(inputs []SeedInput) ([]User, error) {
	seen := make(map[string]struct{}, len(inputs))
	users := make([]User, 0, len(inputs))

	for _, in := range inputs {
		username := strings.TrimSpace(in.Username)
		if username == "" {
			return nil, ErrUsernameRequired
		}
		if _, ok := seen[username]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, username)
		}
		seen[username] = struct{}{}

		hash := in.PasswordHash
		if hash == "" {
			if in.Password == "" {
				return nil, fmt.Errorf("%w: %s", ErrPasswordRequired, username)
			}
			var err error
			if hash, err = HashPassword(in.Password); err != nil {
				return nil, err
			}
		}

		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}

		users = append(users, User{ID: id, Username: username, PasswordHash: hash, Role: in.Role})
	}
	return users, nil
}
