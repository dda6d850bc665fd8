package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-keeper/internal/service"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/models"
)

var (
	activeUser = models.User{ID: 10, Email: "me@example.com", IsActive: true}
	superuser  = models.User{ID: 1, Email: "admin@example.com", IsActive: true, IsSuperuser: true}
)

func TestPing_NoAuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	rr := doRequest(t, router, http.MethodGet, "/api/v1/utils/ping/", nil, "")

	require.Equal(t, http.StatusOK, rr.Code)

	var body string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "OK", body)
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	rr := doRequest(t, router, http.MethodGet, "/api/v1/utils/ping/", nil, "")

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

func TestReadUserMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/v1/users/me", nil, "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, activeUser.Email, got.Email)
	assert.NotContains(t, rr.Body.String(), "hashed_password")
}

func TestUpdateUserMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)

	updated := activeUser
	updated.FullName = "New Name"
	svcs.users.EXPECT().
		UpdateMe(gomock.Any(), activeUser, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.User, patch models.UserUpdate) (models.User, error) {
			require.NotNil(t, patch.FullName)
			assert.Equal(t, "New Name", *patch.FullName)
			return updated, nil
		})

	body := strings.NewReader(`{"full_name":"New Name"}`)
	rr := doRequest(t, router, http.MethodPatch, "/api/v1/users/me", body, "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestListUsers_RequiresSuperuser(t *testing.T) {
	t.Run("regular user rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.session.EXPECT().
			CurrentActiveSuperuser(gomock.Any(), "tok").
			Return(models.User{}, service.ErrNotEnoughPrivileges)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/users/", nil, "Bearer tok")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("superuser gets the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.session.EXPECT().CurrentActiveSuperuser(gomock.Any(), "tok").Return(superuser, nil)
		svcs.users.EXPECT().
			GetMulti(gomock.Any(), 5, 10).
			Return([]models.User{activeUser, superuser}, nil)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/users/?offset=5&limit=10", nil, "Bearer tok")

		require.Equal(t, http.StatusOK, rr.Code)

		var got []models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Len(t, got, 2)
	})
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveSuperuser(gomock.Any(), "tok").Return(superuser, nil)
	svcs.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	body := strings.NewReader(`{"email":"taken@example.com","password":"secret"}`)
	rr := doRequest(t, router, http.MethodPost, "/api/v1/users/", body, "Bearer tok")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOpenRegister_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.users.EXPECT().
		OpenRegister(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrOpenRegistrationForbidden)

	body := strings.NewReader(`{"email":"new@example.com","password":"secret"}`)
	rr := doRequest(t, router, http.MethodPost, "/api/v1/users/open", body, "")

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestReadUserByID(t *testing.T) {
	t.Run("self or superuser rule enforced by the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)
		svcs.users.EXPECT().
			GetByID(gomock.Any(), activeUser, int64(20)).
			Return(models.User{}, service.ErrNotEnoughPrivileges)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/users/20", nil, "Bearer tok")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router, svcs := newTestRouter(t, ctrl)
		svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)

		rr := doRequest(t, router, http.MethodGet, "/api/v1/users/abc", nil, "Bearer tok")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveSuperuser(gomock.Any(), "tok").Return(superuser, nil)
	svcs.users.EXPECT().
		Delete(gomock.Any(), superuser, int64(20)).
		Return(models.User{ID: 20, Email: "gone@example.com"}, nil)

	rr := doRequest(t, router, http.MethodDelete, "/api/v1/users/20", nil, "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)

	own := []models.Item{{ID: 1, Title: "first", OwnerID: activeUser.ID}}
	svcs.items.EXPECT().GetMulti(gomock.Any(), activeUser, 0, 100).Return(own, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/v1/items/", nil, "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, own, got)
}

func TestCreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)

	created := models.Item{ID: 1, Title: "groceries", OwnerID: activeUser.ID}
	svcs.items.EXPECT().
		Create(gomock.Any(), activeUser, models.ItemCreate{Title: "groceries"}).
		Return(created, nil)

	body := strings.NewReader(`{"title":"groceries"}`)
	rr := doRequest(t, router, http.MethodPost, "/api/v1/items/", body, "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestReadItem_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown item", service.ErrItemNotFound, http.StatusNotFound},
		{"foreign item", service.ErrNotEnoughPermissions, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, svcs := newTestRouter(t, ctrl)
			svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)
			svcs.items.EXPECT().
				GetByID(gomock.Any(), activeUser, int64(7)).
				Return(models.Item{}, tt.err)

			rr := doRequest(t, router, http.MethodGet, "/api/v1/items/7", nil, "Bearer tok")

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestDeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveUser(gomock.Any(), "tok").Return(activeUser, nil)

	removed := models.Item{ID: 7, Title: "doomed", OwnerID: activeUser.ID}
	svcs.items.EXPECT().Delete(gomock.Any(), activeUser, int64(7)).Return(removed, nil)

	rr := doRequest(t, router, http.MethodDelete, "/api/v1/items/7", nil, "Bearer tok")

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, removed, got)
}

func TestTestEmail_RequiresSuperuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, svcs := newTestRouter(t, ctrl)
	svcs.session.EXPECT().CurrentActiveSuperuser(gomock.Any(), "tok").Return(superuser, nil)
	svcs.notify.EXPECT().SendTestEmail(gomock.Any(), "ops@example.com").Return(nil)

	rr := doRequest(t, router, http.MethodPost, "/api/v1/utils/test-email/?email_to=ops@example.com", nil, "Bearer tok")

	require.Equal(t, http.StatusCreated, rr.Code)

	var body models.Msg
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Test email sent", body.Msg)
}
