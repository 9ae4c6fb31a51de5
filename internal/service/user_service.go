package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inventorypro/internal/middleware"
	"inventorypro/internal/model"
	"inventorypro/internal/store"
	"inventorypro/pkg/pagination"
)

// DTOs
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=Administrator Manager Staff Auditor"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" binding:"required,oneof=Administrator Manager Staff Auditor"`
}

// MeResponse is the profile the frontend loads after login; capabilities let
// it hide controls the user cannot trigger.
type MeResponse struct {
	User         model.User `json:"user"`
	Capabilities []string   `json:"capabilities"`
}

type UserService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, userID string) (MeResponse, error)
	List(ctx context.Context, page, limit int) ([]model.User, int, error)
	Create(ctx context.Context, userID, userName string, req CreateUserRequest) (model.User, error)
	Update(ctx context.Context, userID, userName, id string, req UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, userID, userName, id string) error
}

type userService struct {
	stores        *store.Stores
	audit         AuditService
	tokenLifetime time.Duration
}

func NewUserService(stores *store.Stores, audit AuditService, tokenLifetime time.Duration) UserService {
	return &userService{stores: stores, audit: audit, tokenLifetime: tokenLifetime}
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.stores.Users.Find(func(u model.User) bool {
		return strings.ToLower(u.Email) == email
	})
	if err != nil {
		return LoginResponse{}, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return LoginResponse{}, ErrUnauthorized
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.Secret())
	if err != nil {
		return LoginResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return LoginResponse{Token: token, User: user}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (MeResponse, error) {
	user, err := s.stores.Users.Get(userID)
	if err != nil {
		return MeResponse{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return MeResponse{
		User:         user,
		Capabilities: model.CapabilitiesForRole(user.Role),
	}, nil
}

func (s *userService) List(ctx context.Context, page, limit int) ([]model.User, int, error) {
	paged, total := pagination.Window(s.stores.Users.List(), pagination.Of(page, limit))
	return paged, total, nil
}

func (s *userService) Create(ctx context.Context, userID, userName string, req CreateUserRequest) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.stores.Users.Find(func(u model.User) bool {
		return strings.ToLower(u.Email) == email
	}); err == nil {
		return model.User{}, fmt.Errorf("email %q already registered: %w", email, ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hash),
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.stores.Users.Insert(user); err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit.Record(ctx, userID, userName, model.ActionCreateUser, user.ID.String(), user.Name, map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})
	return user, nil
}

func (s *userService) Update(ctx context.Context, userID, userName, id string, req UpdateUserRequest) (model.User, error) {
	var hash string
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = string(h)
	}

	updated, err := s.stores.Users.Update(id, func(u model.User) model.User {
		u.Name = req.Name
		u.Email = strings.ToLower(strings.TrimSpace(req.Email))
		u.Role = req.Role
		if hash != "" {
			u.Password = hash
		}
		u.UpdatedAt = time.Now()
		return u
	})
	if err != nil {
		return model.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionUpdateUser, updated.ID.String(), updated.Name, map[string]interface{}{
		"email": updated.Email,
		"role":  updated.Role,
	})
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, userID, userName, id string) error {
	if userID == id {
		return fmt.Errorf("cannot delete your own account: %w", ErrValidation)
	}
	user, err := s.stores.Users.Get(id)
	if err != nil {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err := s.stores.Users.Delete(id); err != nil {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	s.audit.Record(ctx, userID, userName, model.ActionDeleteUser, id, user.Name, map[string]interface{}{"deleted": true})
	return nil
}
