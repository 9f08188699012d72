package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeService/internal/service/bookings"
	"github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("GetByID", mock.Anything, "B-1").Return(&models.BookingResponse{ID: "B-1", Status: "pending"}, nil)
	svc.On("GetByID", mock.Anything, "B-404").Return(nil, bookings.ErrBookingNotFound)
	svc.On("GetByID", mock.Anything, "B-err").Return(nil, bookings.ErrInternal)

	rec := serve(svc, "/api/v1/bookings/B-1")
	require.Equal(t, http.StatusOK, rec.Code)
	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "B-1", body.Booking.ID)

	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/bookings/B-404").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(svc, "/api/v1/bookings/B-err").Code)
}
