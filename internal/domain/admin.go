package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ErrUsernameTaken is returned by AdminRepository.Insert when the unique
// username index rejects the document.
var ErrUsernameTaken = errors.New("username already taken")

// Admin is one admin-panel account. The password hash never leaves the
// backend.
type Admin struct {
	OID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID           string             `bson:"-" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (a *Admin) Normalize() {
	if !a.OID.IsZero() {
		a.ID = a.OID.Hex()
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=admin superadmin"`
}

// Token is the login response payload.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AdminRepository is the admins data access contract. GetByUsername
// returns (nil, nil) when no such admin exists.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Insert(ctx context.Context, admin *Admin) (string, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// AuthUsecase covers login, token-holder resolution and admin account
// management. DeleteAdmin reads the acting admin from the request context.
type AuthUsecase interface {
	Login(ctx context.Context, req LoginRequest) (*Token, error)
	GetAdmin(ctx context.Context, username string) (*Admin, error)
	ListAdmins(ctx context.Context) ([]Admin, error)
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (*Admin, error)
	DeleteAdmin(ctx context.Context, username string) error
}
