//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shootbook/internal/domain/schedule"
	"shootbook/internal/handler/api"
	resdto "shootbook/internal/handler/dto/response"
	"shootbook/internal/handler/middleware"
	"shootbook/internal/infra/memory"
	"shootbook/internal/pkg/clock"
	"shootbook/internal/pkg/config"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"
	"shootbook/tests/common/builder"
	transportmock "shootbook/tests/mock/transport"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testAdminToken = "test-admin-token"

type ReservationHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	ledger   *memory.Ledger
	booking  commands.BookingCommands
	clock    *clock.MockClock
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())

	cfg := config.NewTestConfig()
	policy, err := schedule.NewPolicy(
		cfg.Booking.TimeZone, cfg.Booking.LeadTime, cfg.Booking.HorizonDays, cfg.Booking.DayTimes)
	s.Require().NoError(err)

	s.ledger = memory.NewLedger()
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, policy.Location()))

	messenger := transportmock.NewMockMessenger(s.mockCtrl)
	messenger.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	notifier := transportmock.NewMockAdminNotifier(s.mockCtrl)
	notifier.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	logger := slog.New(slog.DiscardHandler)
	s.booking = commands.NewBookingCommands(s.ledger, policy, s.clock)
	admin := commands.NewAdminCommands(s.ledger, messenger, notifier, s.clock, cfg.Bot.AdminID, logger)
	reservations := queries.NewReservationQueries(s.ledger)
	availability := queries.NewAvailabilityQueries(s.ledger, policy, s.clock)

	handler := api.NewReservationHandler(admin, reservations, availability, cfg.Bot.AdminID)
	adminAuth := middleware.NewAdminAuth(cfg)

	group := s.router.Group("/api")
	group.Use(adminAuth.RequireAdmin())
	group.GET("/reservations", handler.ListActive)
	group.GET("/reservations/:id", handler.GetReservation)
	group.POST("/reservations/:id/done", handler.MarkDone)
	group.POST("/reservations/:id/cancel", handler.MarkCancelled)
	group.GET("/availability/:date", handler.Availability)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) request(method, path string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authed {
		req.Header.Set("X-Admin-Token", testAdminToken)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ReservationHandlerTestSuite) seed(mutate func(*builder.ReservationBuilder)) int64 {
	b := builder.NewReservationBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	draft, err := b.BuildDraft()
	s.Require().NoError(err)
	created, err := s.booking.Reserve(context.Background(), draft)
	s.Require().NoError(err)
	return created.ID()
}

func (s *ReservationHandlerTestSuite) TestAuthRequired() {
	rec := s.request(http.MethodGet, "/api/reservations", false)
	s.Equal(http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("X-Admin-Token", "wrong-token")
	res := httptest.NewRecorder()
	s.router.ServeHTTP(res, req)
	s.Equal(http.StatusForbidden, res.Code)
}

func (s *ReservationHandlerTestSuite) TestListActive() {
	rec := s.request(http.MethodGet, "/api/reservations", true)
	s.Equal(http.StatusOK, rec.Code)

	var empty struct {
		Reservations []resdto.ReservationResponse `json:"reservations"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &empty))
	s.Empty(empty.Reservations)

	s.seed(nil)
	s.seed(func(b *builder.ReservationBuilder) {
		b.RequesterID = 200
		b.TimeLabel = "15:00"
	})

	rec = s.request(http.MethodGet, "/api/reservations", true)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Reservations []resdto.ReservationResponse `json:"reservations"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Reservations, 2)
	s.Equal(int64(1), body.Reservations[0].ID)
	s.Equal("14:00", body.Reservations[0].Time)
	s.Equal("new", body.Reservations[0].Status)
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	id := s.seed(nil)

	rec := s.request(http.MethodGet, "/api/reservations/1", true)
	s.Equal(http.StatusOK, rec.Code)

	var body resdto.ReservationResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(id, body.ID)
	s.Equal("01.06.2025", body.Date)
	s.Equal("Wedding", body.ShootType)
	s.Equal("+79990000000", body.Phone)
	s.Equal("Alice", body.Name)
}

func (s *ReservationHandlerTestSuite) TestGetReservationNotFound() {
	rec := s.request(http.MethodGet, "/api/reservations/42", true)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ReservationHandlerTestSuite) TestInvalidID() {
	rec := s.request(http.MethodGet, "/api/reservations/abc", true)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/reservations/0/done", true)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ReservationHandlerTestSuite) TestMarkDone() {
	s.seed(nil)

	rec := s.request(http.MethodPost, "/api/reservations/1/done", true)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/reservations/1", true)
	var body resdto.ReservationResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("done", body.Status)

	rec = s.request(http.MethodPost, "/api/reservations/1/done", true)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ReservationHandlerTestSuite) TestMarkCancelled() {
	s.seed(nil)

	rec := s.request(http.MethodPost, "/api/reservations/1/cancel", true)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/availability/01.06.2025", true)
	s.Equal(http.StatusOK, rec.Code)

	var body resdto.AvailabilityResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("open", body.Times["14:00"])
}

func (s *ReservationHandlerTestSuite) TestTransitionNotFound() {
	rec := s.request(http.MethodPost, "/api/reservations/42/done", true)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ReservationHandlerTestSuite) TestAvailability() {
	s.seed(nil)

	rec := s.request(http.MethodGet, "/api/availability/01.06.2025", true)
	s.Equal(http.StatusOK, rec.Code)

	var body resdto.AvailabilityResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("taken", body.Times["14:00"])
	s.Equal("too_soon", body.Times["10:00"])
	s.Equal("open", body.Times["15:00"])
}

func (s *ReservationHandlerTestSuite) TestAvailabilityBadDate() {
	rec := s.request(http.MethodGet, "/api/availability/not-a-date", true)
	s.Equal(http.StatusBadRequest, rec.Code)
}
