package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/user"
	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/jwt"
	"resort-booking/internal/pkg/password"
	"resort-booking/internal/usecase/queries"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.New("email is already registered")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	CreateStaff(ctx context.Context, req reqdto.CreateStaffRequest) (uuid.UUID, error)
	DeactivateStaff(ctx context.Context, id uuid.UUID) error
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	pool       *pgxpool.Pool
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service, pool *pgxpool.Pool) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
		pool:       pool,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if updateErr := a.userRepo.UpdateLastLogin(ctx, a.pool, view.ID); updateErr != nil {
		// Not critical; the session is already issued.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", updateErr.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: accessToken,
	}, nil
}

func (a *authCommandsImpl) CreateStaff(ctx context.Context, req reqdto.CreateStaffRequest) (uuid.UUID, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	staff := user.NewUser(email, hash, req.Name, role)
	if err := a.userRepo.Create(ctx, a.pool, staff); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}

	return staff.ID(), nil
}

func (a *authCommandsImpl) DeactivateStaff(ctx context.Context, id uuid.UUID) error {
	if err := a.userRepo.SetActive(ctx, a.pool, id, false); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email user.Email, plaintext string) (*queries.AuthorizedUserView, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, plaintext); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
