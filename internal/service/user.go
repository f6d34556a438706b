package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"todaypickup-relay-go/internal/model"
	"todaypickup-relay-go/internal/store"
)

// UserService implements the user business layer over the store. Passwords
// are digested before they reach persistence and never leave it again.
type UserService struct {
	store  *store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService.
func NewUserService(st *store.UserStore, logger *slog.Logger) *UserService {
	return &UserService{
		store:  st,
		logger: logger.With("component", "user_service"),
	}
}

// hashPassword returns the sha256 hex digest of password.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CreateUser creates a user. store.ErrDuplicate passes through when email or
// username is taken.
func (s *UserService) CreateUser(ctx context.Context, in model.UserCreate) (*model.UserResponse, error) {
	u, err := s.store.Create(ctx, in.Email, in.Username, hashPassword(in.Password))
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// GetUser returns a user by id; store.ErrNotFound when absent.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.UserResponse, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ListUsers returns users with skip/limit pagination.
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]model.UserResponse, error) {
	users, err := s.store.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out, nil
}

// UpdateUser applies a partial update; a new password is re-digested.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in model.UserUpdate) (*model.UserResponse, error) {
	fields := map[string]any{}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.Password != nil {
		fields["hashed_password"] = hashPassword(*in.Password)
	}

	u, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// DeleteUser removes a user; store.ErrNotFound when absent.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func toUserResponse(u *store.User) *model.UserResponse {
	return &model.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
