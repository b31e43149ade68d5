package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandhotel/infras/otel/mocks"
	"grandhotel/internal/domains/booking/model"
	"grandhotel/internal/domains/booking/model/dto"
	bookingMocks "grandhotel/internal/domains/booking/service/mocks"
	"grandhotel/internal/handlers/booking"
	"grandhotel/shared/constant"
	"grandhotel/shared/failure"
)

func newRouter(svc *bookingMocks.MockBooking) http.Handler {
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_CreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
		assert.Equal(t, "Deluxe King Room", req.Room)

		return dto.BookingResponse{ID: "b-1", Name: req.Name, Status: model.StatusConfirmed}, nil
	})

	body := `{"name":"Asha","email":"asha@example.com","room":"Deluxe King Room","checkin":"2024-11-01","checkout":"2024-11-03","price":5625,"status":"Confirmed"}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)

	res := decode(t, rec)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "b-1", res["booking"].(map[string]any)["id"])
}

func TestHandler_CreateBooking_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)

	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"name":"Asha"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decode(t, rec)
	assert.Equal(t, false, res["success"])
	assert.NotEmpty(t, res["error"])
}

func TestHandler_GetBookings(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		user   string
		query  string
		filter dto.ListFilter
	}{
		{name: "admin sees everything", role: constant.RoleAdmin},
		{name: "admin narrows by email", role: constant.RoleAdmin, query: "?email=asha@example.com", filter: dto.ListFilter{Email: "asha@example.com"}},
		{name: "user only sees own name", role: constant.RoleUser, user: "Asha", query: "?name=Ravi", filter: dto.ListFilter{Name: "Asha"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := bookingMocks.NewMockBooking(ctrl)

			svc.EXPECT().List(gomock.Any(), tt.filter).Return([]dto.BookingResponse{{ID: "b-1"}}, nil)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, tt.role)
			ctx = context.WithValue(ctx, constant.ContextKeyUserName, tt.user)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings"+tt.query, nil).WithContext(ctx)
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Len(t, decode(t, rec)["bookings"], 1)
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		calls    int
		wantCode int
		wantBody string
	}{
		{name: "updated", body: `{"id":"b-1","status":"Cancelled"}`, calls: 1, wantCode: http.StatusOK, wantBody: "Status updated"},
		{name: "missing status", body: `{"id":"b-1"}`, wantCode: http.StatusBadRequest, wantBody: "Missing id or status"},
		{name: "not found", body: `{"id":"b-9","status":"Cancelled"}`, svcErr: failure.NotFound("booking not found"), calls: 1, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := bookingMocks.NewMockBooking(ctrl)

			svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(tt.svcErr).Times(tt.calls)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_DeleteBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)

	svc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings?id=b-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking deleted", decode(t, rec)["message"])

	rec = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/bookings", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing id", decode(t, rec)["error"])
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := httptest.NewRecorder()
	newRouter(bookingMocks.NewMockBooking(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/bookings", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, constant.ResponseErrorMethodNotAllowed, decode(t, rec)["error"])
}
