package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/mock"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockNotifier) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	notifier := mock.NewMockNotifier(ctrl)
	return NewAuthService(users, notifier, testAppConfig(), logger.Nop()), users, notifier
}

func TestAuthService_Authenticate(t *testing.T) {
	stored := models.User{ID: 5, Email: "jane@example.com", IsActive: true}

	tests := []struct {
		name    string
		user    models.User
		found   bool
		wantErr error
	}{
		{
			name:  "correct credentials on active account",
			user:  stored,
			found: true,
		},
		{
			name:    "unknown email or wrong password",
			wantErr: ErrIncorrectEmailOrPassword,
		},
		{
			name:    "correct credentials on deactivated account",
			user:    models.User{ID: 5, Email: "jane@example.com"},
			found:   true,
			wantErr: ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, users, _ := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			users.EXPECT().
				Authenticate(ctx, "jane@example.com", "secret").
				Return(tt.user, tt.found, nil)

			user, err := svc.Authenticate(ctx, "jane@example.com", "secret")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.User{}, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user, user)
		})
	}
}

func TestAuthService_Authenticate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("connection refused")
	users.EXPECT().
		Authenticate(ctx, "jane@example.com", "secret").
		Return(models.User{}, false, dbErr)

	_, err := svc.Authenticate(ctx, "jane@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrIncorrectEmailOrPassword)
}

func TestAuthService_CreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	issued, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, issued.SignedString)

	parsed, err := svc.ParseToken(ctx, issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_NormalisesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(testIssuer, 42, -time.Hour, testSignKey)
	require.NoError(t, err)

	for _, tokenString := range []string{"not-a-jwt", expired.SignedString} {
		_, err := svc.ParseToken(ctx, tokenString)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestAuthService_RecoverPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, notifier := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 5, Email: "jane@example.com", IsActive: true}
	users.EXPECT().GetByEmail(ctx, stored.Email).Return(stored, true, nil)

	notifier.EXPECT().
		SendPasswordResetEmail(ctx, stored.Email, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, token string) error {
			// the mailed token must be exchangeable for this account
			email, err := utils.ValidatePasswordResetToken(token, testSignKey, testIssuer)
			require.NoError(t, err)
			assert.Equal(t, stored.Email, email)
			return nil
		})

	require.NoError(t, svc.RecoverPassword(ctx, stored.Email))
}

func TestAuthService_RecoverPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(models.User{}, false, nil)

	err := svc.RecoverPassword(ctx, "nobody@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 5, Email: "jane@example.com", IsActive: true}
	tokenString, err := utils.GeneratePasswordResetToken(testIssuer, stored.Email, time.Hour, testSignKey)
	require.NoError(t, err)

	users.EXPECT().GetByEmail(ctx, stored.Email).Return(stored, true, nil)
	users.EXPECT().
		Update(ctx, stored, gomock.Any()).
		DoAndReturn(func(_ context.Context, existing models.User, patch models.UserUpdate) (models.User, error) {
			require.NotNil(t, patch.Password)
			assert.Equal(t, "new-password", *patch.Password)
			return existing, nil
		})

	require.NoError(t, svc.ResetPassword(ctx, tokenString, "new-password"))
}

func TestAuthService_ResetPassword_Failures(t *testing.T) {
	validToken := func(t *testing.T) string {
		t.Helper()
		tokenString, err := utils.GeneratePasswordResetToken(testIssuer, "jane@example.com", time.Hour, testSignKey)
		require.NoError(t, err)
		return tokenString
	}

	tests := []struct {
		name        string
		tokenString func(t *testing.T) string
		setup       func(users *mock.MockUserRepository)
		wantErr     error
	}{
		{
			name:        "garbage token",
			tokenString: func(t *testing.T) string { return "not-a-jwt" },
			wantErr:     ErrInvalidResetToken,
		},
		{
			name:        "account vanished after token was issued",
			tokenString: validToken,
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").Return(models.User{}, false, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:        "deactivated account",
			tokenString: validToken,
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().
					GetByEmail(gomock.Any(), "jane@example.com").
					Return(models.User{ID: 5, Email: "jane@example.com"}, true, nil)
			},
			wantErr: ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, users, _ := newTestAuthSvc(t, ctrl)
			if tt.setup != nil {
				tt.setup(users)
			}

			err := svc.ResetPassword(context.Background(), tt.tokenString(t), "new-password")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
