package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cyclebook/config"
	"cyclebook/infras/jwt"
	jwtMocks "cyclebook/infras/jwt/mocks"
	"cyclebook/infras/otel/mocks"
	accountMocks "cyclebook/internal/domains/account/mocks"
	accountModel "cyclebook/internal/domains/account/model"
	"cyclebook/internal/domains/auth/model/dto"
	"cyclebook/internal/domains/auth/service"
	cacheMocks "cyclebook/shared/cache/mocks"
	"cyclebook/shared/failure"
	"cyclebook/shared/password"
)

type fixture struct {
	accounts *accountMocks.MockAccount
	cache    *cacheMocks.MockRedisCache
	jwt      *jwtMocks.MockJWT
	svc      service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		accounts: accountMocks.NewMockAccount(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.accounts, &config.Config{}, f.cache, mocks.NewOtel(), f.jwt)

	return f
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	h, err := password.Hash(plain)
	require.NoError(t, err)

	return h
}

func TestAuthService_RegisterOrLogin(t *testing.T) {
	existing := accountModel.Account{
		ID:       "account-1",
		Email:    "123456789@sastra.ac.in",
		Password: hashed(t, "correct"),
		Role:     "rider",
	}

	tests := []struct {
		name      string
		req       dto.RegisterOrLoginRequest
		setupMock func(f fixture)
		wantCode  int
		wantRole  string
	}{
		{
			name: "existing account with correct password",
			req:  dto.RegisterOrLoginRequest{Email: "123456789@SASTRA.AC.IN", Password: "correct", Role: "rider"},
			setupMock: func(f fixture) {
				f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.jwt.EXPECT().GenerateToken("account-1", "rider").Return(&jwt.Token{Value: "signed"}, nil)
			},
			wantRole: "rider",
		},
		{
			name: "unknown account is created",
			req:  dto.RegisterOrLoginRequest{Email: "987654321@sastra.ac.in", Password: "fresh", Role: "host"},
			setupMock: func(f fixture) {
				f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)
				f.accounts.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a accountModel.Account) error {
					assert.NotEmpty(t, a.ID)
					assert.Equal(t, "987654321@sastra.ac.in", a.Email)
					assert.Equal(t, "host", a.Role)
					assert.NoError(t, password.Verify("fresh", a.Password))

					return nil
				})
				f.jwt.EXPECT().GenerateToken(gomock.Any(), "host").Return(&jwt.Token{Value: "signed"}, nil)
			},
			wantRole: "host",
		},
		{
			name: "wrong password",
			req:  dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "wrong", Role: "rider"},
			setupMock: func(f fixture) {
				f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "email registered under the other role",
			req:  dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "correct", Role: "host"},
			setupMock: func(f fixture) {
				f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)
				f.accounts.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (account): %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository failure",
			req:  dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "correct", Role: "rider"},
			setupMock: func(f fixture) {
				f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "token signing failure",
			req:  dto.RegisterOrLoginRequest{Email: "123456789@sastra.ac.in", Password: "correct", Role: "rider"},
			setupMock: func(f fixture) {
				f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				f.jwt.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return(nil, errors.New("no key"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.RegisterOrLogin(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "signed", res.Token)
			assert.Equal(t, tt.wantRole, res.Role)
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	t.Run("returns role", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{ID: "account-1", Role: "host"}, nil)

		res, err := f.svc.VerifyToken(context.Background(), "account-1")

		require.NoError(t, err)
		assert.Equal(t, "host", res.Role)
	})

	t.Run("account gone", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)

		_, err := f.svc.VerifyToken(context.Background(), "account-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	account := accountModel.Account{ID: "account-1", Role: "rider"}

	t.Run("revokes token until expiry", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account, nil)
		f.cache.EXPECT().Save(gomock.Any(), "auth:revoked:token-1", "account-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ any, ttl int) error {
				assert.InDelta(t, 1800, ttl, 5)

				return nil
			})

		err := f.svc.Logout(context.Background(), dto.Session{
			AccountID: "account-1",
			TokenID:   "token-1",
			ExpiresAt: time.Now().Add(30 * time.Minute),
		})

		assert.NoError(t, err)
	})

	t.Run("expired token needs no revocation", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account, nil)

		err := f.svc.Logout(context.Background(), dto.Session{
			AccountID: "account-1",
			TokenID:   "token-1",
			ExpiresAt: time.Now().Add(-time.Minute),
		})

		assert.NoError(t, err)
	})

	t.Run("account gone", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)

		err := f.svc.Logout(context.Background(), dto.Session{AccountID: "account-1"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache failure", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(account, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		err := f.svc.Logout(context.Background(), dto.Session{
			AccountID: "account-1",
			TokenID:   "token-1",
			ExpiresAt: time.Now().Add(time.Minute),
		})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	req := dto.ResetPasswordRequest{Email: "123456789@sastra.ac.in", NewPassword: "new-secret", Role: "rider"}

	t.Run("updates hash", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{ID: "account-1"}, nil)
		f.accounts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) (int64, error) {
				hash, ok := fields[accountModel.FieldPassword].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("new-secret", hash))
				assert.Contains(t, fields, accountModel.FieldModifiedAt)

				return 1, nil
			})

		assert.NoError(t, f.svc.ResetPassword(context.Background(), req))
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accountModel.Account{}, nil)

		err := f.svc.ResetPassword(context.Background(), req)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	claims := &jwt.Claims{UserID: "account-1", Role: "host"}
	claims.ID = "token-1"
	claims.ExpiresAt = gojwt.NewNumericDate(expiresAt)

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "valid session",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				f.cache.EXPECT().Exists(gomock.Any(), "auth:revoked:token-1").Return(false, nil)
			},
		},
		{
			name: "invalid token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("token").Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "revoked token",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "revocation lookup failure",
			setupMock: func(f fixture) {
				f.jwt.EXPECT().ValidateToken("token").Return(claims, nil)
				f.cache.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			session, err := f.svc.Authenticate(context.Background(), "token")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, dto.Session{
				AccountID: "account-1",
				Role:      "host",
				TokenID:   "token-1",
				ExpiresAt: claims.ExpiresAtTime(),
			}, session)
		})
	}
}
