package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-management/internal/auth"
	"inventory-management/internal/user"
	"inventory-management/internal/user/repository/memory"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

func newTestUseCase(t *testing.T) (*implUseCase, scope.Manager) {
	t.Helper()
	users, err := user.BuildUsers([]user.SeedInput{
		{ID: "u-admin", Username: "admin", Password: "admin123", Role: "admin"},
	})
	if err != nil {
		t.Fatalf("BuildUsers: %v", err)
	}
	mgr := scope.New("test-secret", "inventory-test", time.Hour)
	return New(memory.New(users), mgr, log.NewNop()), mgr
}

func TestSignIn_Success(t *testing.T) {
	uc, mgr := newTestUseCase(t)

	out, err := uc.SignIn(context.Background(), auth.SignInInput{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if out.User.ID != "u-admin" {
		t.Errorf("user id = %q, want u-admin", out.User.ID)
	}

	sc, err := mgr.Verify(out.AccessToken)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sc.UserID != "u-admin" || sc.Role != "admin" || sc.Username != "admin" {
		t.Errorf("unexpected scope %+v", sc)
	}
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	uc, _ := newTestUseCase(t)

	tests := []auth.SignInInput{
		{Username: "admin", Password: "wrong"},
		{Username: "ghost", Password: "admin123"},
	}
	for _, in := range tests {
		_, err := uc.SignIn(context.Background(), in)
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("SignIn(%q) err = %v, want ErrInvalidCredentials", in.Username, err)
		}
	}
}

func TestSignIn_MissingFields(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.SignIn(context.Background(), auth.SignInInput{Username: "  "})
	var vErr *pkgErrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if got := vErr.Fields.Fields(); len(got) != 2 || got[0] != auth.FieldUsername || got[1] != auth.FieldPassword {
		t.Errorf("fields = %v", got)
	}
}
