package http_test

import (
	"cyclebook/config"
	"cyclebook/infras/otel/mocks"
	authMocks "cyclebook/internal/domains/auth/mocks"
	authDto "cyclebook/internal/domains/auth/model/dto"
	bookingMocks "cyclebook/internal/domains/booking/mocks"
	bookingDto "cyclebook/internal/domains/booking/model/dto"
	historyMocks "cyclebook/internal/domains/history/mocks"
	historyDto "cyclebook/internal/domains/history/model/dto"
	authHandler "cyclebook/internal/handlers/auth"
	bookingHandler "cyclebook/internal/handlers/booking"
	historyHandler "cyclebook/internal/handlers/history"
	notificationHandler "cyclebook/internal/handlers/notification"
	"cyclebook/permissions"
	"cyclebook/shared/constant"
	gDto "cyclebook/shared/dto"
	"cyclebook/shared/failure"
	transport "cyclebook/transport/http"
	"cyclebook/transport/http/middleware"
	"cyclebook/transport/http/router"
	"cyclebook/transport/ws"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type app struct {
	server  *transport.HTTP
	auth    *authMocks.MockAuth
	booking *bookingMocks.MockBookingService
	history *historyMocks.MockRideHistoryService
}

func newApp(t *testing.T) app {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()
	cfg := &config.Config{}

	a := app{
		auth:    authMocks.NewMockAuth(ctrl),
		booking: bookingMocks.NewMockBookingService(ctrl),
		history: historyMocks.NewMockRideHistoryService(ctrl),
	}

	hub := ws.NewHub()

	r := router.New(
		router.DomainHandlers{
			Auth:         authHandler.New(a.auth, ot),
			Booking:      bookingHandler.New(a.booking, ot),
			History:      historyHandler.New(a.history, ot),
			Notification: notificationHandler.New(hub),
		},
		middleware.NewAppMiddleware(ot, cfg, nil),
		middleware.NewAuthRoleMiddleware(a.auth, ot, permissions.Get()),
	)

	a.server = transport.New(cfg, r, hub)

	return a
}

func (a app) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.server.ServeHTTP(rec, req)

	return rec
}

func (a app) signIn(token string, session authDto.Session) {
	a.auth.EXPECT().Authenticate(gomock.Any(), token).Return(session, nil)
}

var (
	rider = authDto.Session{AccountID: "rider-1", Role: constant.RoleRider, TokenID: "t-1"}
	host  = authDto.Session{AccountID: "host-1", Role: constant.RoleHost, TokenID: "t-2"}
)

func TestHealth(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, a.server.State())
}

func TestCycleAvailability(t *testing.T) {
	a := newApp(t)
	a.booking.EXPECT().Availability(gomock.Any(), "Library").Return([]bookingDto.CycleAvailability{
		{Cycle: "Cycle 1", Available: true},
	}, nil)

	rec := a.do(http.MethodGet, "/api/cycle-availability?place=Library", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"cycle":"Cycle 1","available":true}]}`, rec.Body.String())
}

func TestBook(t *testing.T) {
	t.Run("rider books", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)
		a.booking.EXPECT().Create(gomock.Any(), "rider-1", bookingDto.CreateBookingRequest{Place: "Library", Cycle: "Cycle 1"}).
			Return(bookingDto.CreateBookingResponse{VerificationCode: "ABC234", Message: "Cycle booked successfully"}, nil)

		rec := a.do(http.MethodPost, "/api/book", "rider-token", `{"place":"Library","cycle":"Cycle 1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"verification_code":"ABC234"`)
	})

	t.Run("missing token", func(t *testing.T) {
		a := newApp(t)

		rec := a.do(http.MethodPost, "/api/book", "", `{"place":"Library","cycle":"Cycle 1"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"No token provided"}`, rec.Body.String())
	})

	t.Run("host is refused", func(t *testing.T) {
		a := newApp(t)
		a.signIn("host-token", host)

		rec := a.do(http.MethodPost, "/api/book", "host-token", `{"place":"Library","cycle":"Cycle 1"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing cycle", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)

		rec := a.do(http.MethodPost, "/api/book", "rider-token", `{"place":"Library"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"cycle is required"}`, rec.Body.String())
	})

	t.Run("cycle in use", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)
		a.booking.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingDto.CreateBookingResponse{}, failure.Conflict("Cycle Cycle 1 at Library is currently in use"))

		rec := a.do(http.MethodPost, "/api/book", "rider-token", `{"place":"Library","cycle":"Cycle 1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Cycle Cycle 1 at Library is currently in use"}`, rec.Body.String())
	})
}

func TestRides(t *testing.T) {
	const bookingID = "3f1c1a52-8a0c-4a55-9d52-6a4f0f6f2a10"

	t.Run("host starts a ride", func(t *testing.T) {
		a := newApp(t)
		a.signIn("host-token", host)
		a.booking.EXPECT().StartRide(gomock.Any(), bookingDto.StartRideRequest{BookingID: bookingID, Code: "ABC234"}).Return(nil)

		rec := a.do(http.MethodPost, "/api/start-ride", "host-token", `{"booking_id":"`+bookingID+`","code":"ABC234"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Ride started"}`, rec.Body.String())
	})

	t.Run("host stops a ride", func(t *testing.T) {
		a := newApp(t)
		a.signIn("host-token", host)
		a.booking.EXPECT().StopRide(gomock.Any(), gomock.Any()).
			Return(bookingDto.StopRideResponse{Message: "Ride stopped", Duration: 20, Cost: 20}, nil)

		rec := a.do(http.MethodPost, "/api/stop-ride", "host-token", `{"booking_id":"`+bookingID+`","drop_location":"Main Gate"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"message":"Ride stopped","duration":20,"cost":20}}`, rec.Body.String())
	})

	t.Run("rider cannot stop", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)

		rec := a.do(http.MethodPost, "/api/stop-ride", "rider-token", `{"booking_id":"`+bookingID+`","drop_location":"Main Gate"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed booking id", func(t *testing.T) {
		a := newApp(t)
		a.signIn("host-token", host)

		rec := a.do(http.MethodPost, "/api/start-ride", "host-token", `{"booking_id":"nope","code":"ABC234"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRideHistory(t *testing.T) {
	t.Run("rider sees own history", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)
		a.history.EXPECT().List(gomock.Any(), "rider-1", gDto.QueryParams{Page: 2, Limit: 5}).
			Return([]historyDto.RideHistoryResponse{{ID: "h-1", Duration: 20, Cost: 20}}, nil)

		rec := a.do(http.MethodGet, "/api/ride-history?page=2&limit=5", "rider-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"h-1"`)
	})

	t.Run("limit too large", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)

		rec := a.do(http.MethodGet, "/api/ride-history?limit=1000", "rider-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSession(t *testing.T) {
	t.Run("verify token", func(t *testing.T) {
		a := newApp(t)
		a.signIn("host-token", host)
		a.auth.EXPECT().VerifyToken(gomock.Any(), "host-1").Return(authDto.VerifyTokenResponse{Role: constant.RoleHost}, nil)

		rec := a.do(http.MethodGet, "/api/verify-token", "host-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"role":"host"}}`, rec.Body.String())
	})

	t.Run("logout revokes the presented token", func(t *testing.T) {
		a := newApp(t)
		a.signIn("rider-token", rider)
		a.auth.EXPECT().Logout(gomock.Any(), rider).Return(nil)

		rec := a.do(http.MethodPost, "/api/logout", "rider-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())
	})

	t.Run("register or login is public", func(t *testing.T) {
		a := newApp(t)
		a.auth.EXPECT().RegisterOrLogin(gomock.Any(), gomock.Any()).
			Return(authDto.AuthResponse{Token: "jwt", Role: constant.RoleRider}, nil)

		rec := a.do(http.MethodPost, "/api/register-or-login", "",
			`{"email":"123456789@sastra.ac.in","password":"secret","role":"rider"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"token":"jwt","role":"rider"}}`, rec.Body.String())
	})
}
