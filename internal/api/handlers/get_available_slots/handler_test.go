package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-BikeService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

func TestHandle_OK(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{
		Date:     "2025-06-01",
		Location: "Main Service Center",
		Mechanic: "Ravi Kumar",
	}).Return(&getAvailableSlots.Response{
		BookedSlots:    []string{"09:00 AM"},
		AvailableSlots: []string{"10:00 AM", "11:00 AM"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings/availability?date=2025-06-01&location=Main+Service+Center&mechanic=Ravi%20Kumar", nil)
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"09:00 AM"}, body.BookedSlots)
	assert.Equal(t, []string{"10:00 AM", "11:00 AM"}, body.AvailableSlots)
}

func TestHandle_EmptyListsAreArrays(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/availability?date=d&location=l&mechanic=m", nil)
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)

	assert.JSONEq(t, `{"success":true,"bookedSlots":[],"availableSlots":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing params", fmt.Errorf("%w: mechanic is required", getAvailableSlots.ErrInvalidInput), http.StatusBadRequest},
		{"internal", fmt.Errorf("%w: store", getAvailableSlots.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/availability?date=2025-06-01", nil)
			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
