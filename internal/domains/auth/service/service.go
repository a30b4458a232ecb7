package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"cyclebook/config"
	"cyclebook/infras/jwt"
	"cyclebook/infras/otel"
	accountModel "cyclebook/internal/domains/account/model"
	accountRepo "cyclebook/internal/domains/account/repository"
	"cyclebook/internal/domains/auth/model/dto"
	"cyclebook/shared"
	"cyclebook/shared/cache"
	"cyclebook/shared/constant"
	"cyclebook/shared/failure"
	"cyclebook/shared/password"
	gRepo "cyclebook/shared/repository"
	"cyclebook/shared/timezone"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

const (
	cacheRevokedToken = "auth:revoked"

	msgIncorrectPassword = "Incorrect password. Please try again."
	msgUserNotFound      = "User not found"
	msgEmailRegistered   = "Email is already registered with another role"
)

type Auth interface {
	RegisterOrLogin(ctx context.Context, req dto.RegisterOrLoginRequest) (dto.AuthResponse, error)
	VerifyToken(ctx context.Context, accountID string) (dto.VerifyTokenResponse, error)
	Logout(ctx context.Context, session dto.Session) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	Authenticate(ctx context.Context, token string) (dto.Session, error)
}

type serviceImpl struct {
	accountRepo accountRepo.Account
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(accountRepo accountRepo.Account, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		accountRepo: accountRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		jwtService:  jwt,
	}
}

// RegisterOrLogin creates the account on first sight and logs in otherwise.
// The response is the same in both cases.
func (s *serviceImpl) RegisterOrLogin(ctx context.Context, req dto.RegisterOrLoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterOrLogin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	account, err := s.accountRepo.Get(ctx, accountRepo.ByEmailAndRole(req.Email, req.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if !account.Exists() {
		account, err = s.register(ctx, req)
		if err != nil {
			return res, err
		}
	} else {
		if err = password.Verify(req.Password, account.Password); err != nil {
			if errors.Is(err, password.ErrInvalidPassword) {
				log.Info().Str("email", req.Email).Str("role", req.Role).Msg("login rejected, wrong password")

				return res, failure.Unauthorized(msgIncorrectPassword)
			}

			return res, fmt.Errorf("failed to verify password: %w", err)
		}

		log.Info().Str("email", req.Email).Str("role", req.Role).Msg("existing account logged in")
	}

	token, err := s.jwtService.GenerateToken(account.ID, account.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	return dto.AuthResponse{Token: token.Value, Role: account.Role}, nil
}

func (s *serviceImpl) register(ctx context.Context, req dto.RegisterOrLoginRequest) (accountModel.Account, error) {
	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return accountModel.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account := req.ToAccountModel(hashed)

	if err = s.accountRepo.Insert(ctx, account); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return accountModel.Account{}, failure.Conflict(msgEmailRegistered)
		}

		log.Error().Err(err).Msg("failed to create account")

		return accountModel.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info().Str("email", req.Email).Str("role", req.Role).Msg("new account registered")

	return account, nil
}

func (s *serviceImpl) VerifyToken(ctx context.Context, accountID string) (res dto.VerifyTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.findByID(ctx, accountID)
	if err != nil {
		return res, err
	}

	return dto.VerifyTokenResponse{Role: account.Role}, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *serviceImpl) Logout(ctx context.Context, session dto.Session) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.findByID(ctx, session.AccountID); err != nil {
		return err
	}

	ttl := int(math.Ceil(session.ExpiresAt.Sub(timezone.Now()).Seconds()))
	if ttl <= 0 || session.TokenID == "" {
		return nil
	}

	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheRevokedToken, session.TokenID), session.AccountID, ttl); err != nil {
		log.Error().Err(err).Str("account_id", session.AccountID).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	log.Info().Str("account_id", session.AccountID).Msg("account logged out")

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	filter := accountRepo.ByEmailAndRole(req.Email, req.Role)

	account, err := s.accountRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return fmt.Errorf("failed to get account: %w", err)
	}

	if !account.Exists() {
		return failure.NotFound(msgUserNotFound)
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	fields := map[string]any{
		accountModel.FieldPassword:   hashed,
		accountModel.FieldModifiedAt: timezone.Now(),
	}

	if _, err = s.accountRepo.Update(ctx, fields, accountRepo.ByID(account.ID)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Str("email", req.Email).Str("role", req.Role).Msg("password reset")

	return nil
}

// Authenticate resolves a bearer token into a session. Any failure maps to a 403.
func (s *serviceImpl) Authenticate(ctx context.Context, token string) (session dto.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return session, failure.InvalidTokenError
	}

	revoked, err := s.cache.Exists(ctx, shared.BuildCacheKey(cacheRevokedToken, claims.TokenID()))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check token revocation")

		return session, fmt.Errorf("failed to check token revocation: %w", err)
	}

	if revoked {
		return session, failure.InvalidTokenError
	}

	return dto.Session{
		AccountID: claims.UserID,
		Role:      claims.Role,
		TokenID:   claims.TokenID(),
		ExpiresAt: claims.ExpiresAtTime(),
	}, nil
}

func (s *serviceImpl) findByID(ctx context.Context, accountID string) (accountModel.Account, error) {
	account, err := s.accountRepo.Get(ctx, accountRepo.ByID(accountID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return account, fmt.Errorf("failed to get account: %w", err)
	}

	if !account.Exists() {
		return account, failure.NotFound(msgUserNotFound)
	}

	return account, nil
}
