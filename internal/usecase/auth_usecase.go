package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	adminRepo domain.AdminRepository
	tokens    *auth.TokenService
	notifier  domain.Notifier
}

func NewAuthUsecase(adminRepo domain.AdminRepository, tokens *auth.TokenService, notifier domain.Notifier) domain.AuthUsecase {
	return &authUsecase{
		adminRepo: adminRepo,
		tokens:    tokens,
		notifier:  notifier,
	}
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password produce the same response.
func (u *authUsecase) Login(ctx context.Context, req domain.LoginRequest) (*domain.Token, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if admin == nil {
		return nil, apperror.Unauthorized("Incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("Incorrect username or password")
	}

	token, err := u.tokens.Issue(admin.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	u.notifier.Record(ctx, domain.NotifyAuth, fmt.Sprintf("Admin '%s' logged in", admin.Username))

	return &domain.Token{AccessToken: token, TokenType: "bearer"}, nil
}

func (u *authUsecase) GetAdmin(ctx context.Context, username string) (*domain.Admin, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if admin == nil {
		return nil, apperror.Unauthorized("Admin account no longer exists")
	}
	return admin, nil
}

func (u *authUsecase) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := u.adminRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return admins, nil
}

func (u *authUsecase) CreateAdmin(ctx context.Context, req domain.CreateAdminRequest) (*domain.Admin, error) {
	existing, err := u.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	admin := &domain.Admin{
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	// Two concurrent creates can both pass the lookup above; the unique
	// index settles the race and the loser still gets a 409.
	id, err := u.adminRepo.Insert(ctx, admin)
	if errors.Is(err, domain.ErrUsernameTaken) {
		return nil, apperror.Conflict("Username already exists")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	admin.ID = id
	return admin, nil
}

// DeleteAdmin removes an admin account. Only superadmins may delete, and
// nobody may delete themselves.
func (u *authUsecase) DeleteAdmin(ctx context.Context, username string) error {
	actor, role := actorFromCtx(ctx)

	if actor == username {
		return apperror.BadRequest("You cannot delete your own account")
	}
	if role != domain.RoleSuperadmin {
		return apperror.Forbidden("Superadmin access required")
	}

	ok, err := u.adminRepo.Delete(ctx, username)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Admin not found")
	}
	return nil
}
