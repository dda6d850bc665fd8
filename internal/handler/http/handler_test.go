package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/mock"
	"github.com/MKhiriev/go-item-keeper/internal/service"
)

// testServices bundles the mocked service layer behind a fully routed
// handler, so endpoint tests exercise the real router and middleware stack.
type testServices struct {
	auth    *mock.MockAuthService
	session *mock.MockSessionService
	users   *mock.MockUserService
	items   *mock.MockItemService
	notify  *mock.MockNotifier
}

func newTestRouter(t *testing.T, ctrl *gomock.Controller) (http.Handler, *testServices) {
	t.Helper()

	svcs := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		session: mock.NewMockSessionService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		items:   mock.NewMockItemService(ctrl),
		notify:  mock.NewMockNotifier(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    svcs.auth,
		SessionService: svcs.session,
		UserService:    svcs.users,
		ItemService:    svcs.items,
		Notifier:       svcs.notify,
	}, logger.Nop())

	return h.Init(), svcs
}

func doRequest(t *testing.T, router http.Handler, method, target string, body io.Reader, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
