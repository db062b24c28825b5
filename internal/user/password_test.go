package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUsers(t *testing.T) {
	preHashed, err := HashPassword("secret")
	require.NoError(t, err)

	users, err := BuildUsers([]SeedInput{
		{ID: "u-1", Username: "admin", Password: "admin123", Role: "admin"},
		{Username: " clerk ", PasswordHash: preHashed, Role: "user"},
	})
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "u-1", users[0].ID)
	assert.NotEqual(t, "admin123", users[0].PasswordHash)
	assert.True(t, CheckPassword(users[0].PasswordHash, "admin123"))
	assert.False(t, CheckPassword(users[0].PasswordHash, "wrong"))

	assert.Equal(t, "clerk", users[1].Username)
	assert.NotEmpty(t, users[1].ID)
	assert.Equal(t, preHashed, users[1].PasswordHash)
}

func TestBuildUsersErrors(t *testing.T) {
	tcs := map[string]struct {
		in   []SeedInput
		want error
	}{
		"missing username": {in: []SeedInput{{Password: "x"}}, want: ErrUsernameRequired},
		"missing password": {in: []SeedInput{{Username: "a"}}, want: ErrPasswordRequired},
		"duplicate": {
			in:   []SeedInput{{Username: "a", Password: "x"}, {Username: "a", Password: "y"}},
			want: ErrDuplicateUsername,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := BuildUsers(tc.in)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
