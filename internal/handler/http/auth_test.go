package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-keeper/internal/service"
	"github.com/MKhiriev/go-item-keeper/models"
)

func loginForm(email, password string) *strings.Reader {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	return strings.NewReader(form.Encode())
}

func postLogin(t *testing.T, router http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login/access-token", loginForm(email, password))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLoginAccessToken_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	user := models.User{ID: 5, Email: "jane@example.com", IsActive: true}
	svcs.auth.EXPECT().Authenticate(gomock.Any(), user.Email, "secret").Return(user, nil)
	svcs.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed-jwt"}, nil)

	rr := postLogin(t, router, user.Email, "secret")

	require.Equal(t, http.StatusOK, rr.Code)

	var body models.AccessToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "signed-jwt", body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
}

func TestLoginAccessToken_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"bad credentials", service.ErrIncorrectEmailOrPassword, http.StatusBadRequest},
		{"inactive account", service.ErrInactiveUser, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, svcs := newTestRouter(t, ctrl)
			svcs.auth.EXPECT().
				Authenticate(gomock.Any(), "jane@example.com", "secret").
				Return(models.User{}, tt.err)

			rr := postLogin(t, router, "jane@example.com", "secret")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestTestToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)

	user := models.User{ID: 5, Email: "jane@example.com", IsActive: true}
	svcs.session.EXPECT().CurrentUser(gomock.Any(), "some-token").Return(user, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/v1/login/test-token", nil, "Bearer some-token")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, user.Email, got.Email)
}

func TestRecoverPassword(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.auth.EXPECT().RecoverPassword(gomock.Any(), "jane@example.com").Return(nil)

		rr := doRequest(t, router, http.MethodPost, "/api/v1/password-recovery/jane@example.com", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)

		var body models.Msg
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Password recovery email sent", body.Msg)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.auth.EXPECT().RecoverPassword(gomock.Any(), "nobody@example.com").Return(service.ErrUserNotFound)

		rr := doRequest(t, router, http.MethodPost, "/api/v1/password-recovery/nobody@example.com", nil, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.auth.EXPECT().ResetPassword(gomock.Any(), "reset-token", "new-password").Return(nil)

		body := strings.NewReader(`{"token":"reset-token","new_password":"new-password"}`)
		rr := doRequest(t, router, http.MethodPost, "/api/v1/reset-password/", body, "")

		require.Equal(t, http.StatusOK, rr.Code)

		var msg models.Msg
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
		assert.Equal(t, "Password updated successfully", msg.Msg)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.auth.EXPECT().ResetPassword(gomock.Any(), "bad-token", "new-password").Return(service.ErrInvalidResetToken)

		body := strings.NewReader(`{"token":"bad-token","new_password":"new-password"}`)
		rr := doRequest(t, router, http.MethodPost, "/api/v1/reset-password/", body, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, _ := newTestRouter(t, ctrl)

		rr := doRequest(t, router, http.MethodPost, "/api/v1/reset-password/", strings.NewReader("{"), "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
