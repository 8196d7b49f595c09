package services

import (
	"context"
	"fmt"

	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/store"
)

// TokenMinter issues an access token for a uid.
type TokenMinter interface {
	Issue(uid string) (string, error)
}

type UpsertResult struct {
	Result *models.WriteResult `json:"result"`
	Token  string              `json:"token"`
}

type UserService struct {
	users  store.UserStore
	tokens TokenMinter
}

func NewUserService(users store.UserStore, tokens TokenMinter) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Resolve decides what to write for uid given the stored record, if any.
// An existing record is written back as it is; a new one gets the "user"
// role unless the payload names one.
func Resolve(uid string, existing, incoming *models.User) *models.User {
	if existing != nil {
		doc := *existing
		doc.UID = uid
		return &doc
	}
	doc := *incoming
	doc.UID = uid
	if doc.Role == "" {
		doc.Role = models.RoleUser
	}
	return &doc
}

// Upsert syncs the profile for uid and returns the store result together with
// a freshly issued token, on every call. The payload's role is only checked
// when no record exists yet, since an existing record ignores the payload.
func (s *UserService) Upsert(ctx context.Context, uid string, incoming *models.User) (*UpsertResult, error) {
	existing, err := s.users.FindUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if existing == nil && incoming.Role != "" && !models.ValidRole(incoming.Role) {
		return nil, ErrInvalidRole
	}
	res, err := s.users.UpsertUser(ctx, Resolve(uid, existing, incoming))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	token, err := s.tokens.Issue(uid)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &UpsertResult{Result: res, Token: token}, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = make([]models.User, 0)
	}
	return users, nil
}
