package commands

import (
	"context"
	"log/slog"

	"havenstay/internal/domain/user"
	"havenstay/internal/infra"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/pkg/jwt"
	"havenstay/internal/pkg/password"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserInactive    = errs.New("user account is inactive")
	ErrEmailTaken      = errs.New("email already registered")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Token  string
	User   *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	Register(ctx context.Context, email, pass string) (uuid.UUID, error)
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	userReads  UserReadStore
	userViews  queries.UserQueries
	attempts   LoginAttemptStore
	jwtService *jwt.Service
}

func NewAuthCommands(
	userRepo UserRepository,
	userReads UserReadStore,
	userViews queries.UserQueries,
	attempts LoginAttemptStore,
	jwtService *jwt.Service,
) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		userReads:  userReads,
		userViews:  userViews,
		attempts:   attempts,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}
	key := credentials.Email().Value()

	locked, err := a.attempts.IsLockedOut(ctx, key)
	if err != nil {
		// Lockout checks degrade to open when the attempt store is down;
		// password verification still stands between callers and a session.
		slog.Warn("login attempt store unavailable", "error", err.Error())
	} else if locked {
		return nil, errs.ErrAccountLocked
	}

	view, hash, err := a.userReads.FindByEmail(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, a.recordFailure(ctx, key)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, a.recordFailure(ctx, key)
	}

	if err := a.attempts.Reset(ctx, key); err != nil {
		slog.Warn("failed to reset login attempts", "error", err.Error())
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		// Not critical; the login itself succeeded.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID: view.ID,
		Token:  token,
		User:   view,
	}, nil
}

func (a *authCommandsImpl) recordFailure(ctx context.Context, key string) error {
	if _, err := a.attempts.RecordAttempt(ctx, key); err != nil {
		slog.Warn("failed to record login attempt", "error", err.Error())
		return errs.ErrInvalidCredentials
	}

	remaining, err := a.attempts.RemainingAttempts(ctx, key)
	if err == nil && remaining == 0 {
		return errs.ErrAccountLocked
	}
	return errs.ErrInvalidCredentials
}

func (a *authCommandsImpl) Register(ctx context.Context, email, pass string) (uuid.UUID, error) {
	credentials, err := user.NewCredentials(email, pass)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity := user.NewUser(credentials.Email(), hash, user.RoleGuest)

	id, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrEmailTaken)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return id, nil
}

func (a *authCommandsImpl) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	return claims.UserID, role, nil
}
