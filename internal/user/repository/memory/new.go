package memory

import (
	"context"

	"inventory-management/internal/user"
	"inventory-management/internal/user/repository"
)

type implRepository struct {
	byID       map[string]user.User
	byUsername map[string]user.User
}

// New creates a Repository over a fixed set of users. The set is never
// modified after construction, so reads need no locking.
func New(users []user.User) repository.Repository {
	r := &implRepository{
		byID:       make(map[string]user.User, len(users)),
		byUsername: make(map[string]user.User, len(users)),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[u.Username] = u
	}
	return r
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (user.User, error) {
	var (
		u  user.User
		ok bool
	)
	switch {
	case opt.ID != "":
		u, ok = r.byID[opt.ID]
		if ok && opt.Username != "" && u.Username != opt.Username {
			ok = false
		}
	case opt.Username != "":
		u, ok = r.byUsername[opt.Username]
	}
	if !ok {
		return user.User{}, nil
	}
	return u, nil
}
