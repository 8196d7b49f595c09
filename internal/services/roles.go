package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/store"
)

var (
	ErrRequesterNotFound = errors.New("requester has no user record")
	ErrNotAdmin          = errors.New("requester is not an admin")
	ErrInvalidRole       = errors.New("role must be \"user\" or \"admin\"")
)

// RoleAuthority answers role questions from the stored user records.
type RoleAuthority struct {
	users store.UserStore
}

func NewRoleAuthority(users store.UserStore) *RoleAuthority {
	return &RoleAuthority{users: users}
}

// IsAdmin reports whether uid has a stored admin role. A uid with no record is
// not an admin.
func (r *RoleAuthority) IsAdmin(ctx context.Context, uid string) (bool, error) {
	u, err := r.users.FindUser(ctx, uid)
	if err != nil {
		return false, fmt.Errorf("look up user: %w", err)
	}
	return u.IsAdmin(), nil
}

// RequireAdmin returns nil only when requesterUID belongs to an admin. A
// missing record yields ErrRequesterNotFound, a non-admin one ErrNotAdmin.
func (r *RoleAuthority) RequireAdmin(ctx context.Context, requesterUID string) error {
	u, err := r.users.FindUser(ctx, requesterUID)
	if err != nil {
		return fmt.Errorf("look up requester: %w", err)
	}
	if u == nil {
		return ErrRequesterNotFound
	}
	if !u.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}

// ChangeRole sets targetUID's role on behalf of requesterUID, who must be an
// admin.
func (r *RoleAuthority) ChangeRole(ctx context.Context, requesterUID, targetUID, role string) (*models.WriteResult, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if err := r.RequireAdmin(ctx, requesterUID); err != nil {
		return nil, err
	}
	res, err := r.users.SetUserRole(ctx, targetUID, role)
	if err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}
	return res, nil
}
