package get_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeService/internal/catalog"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
)

func get(t *testing.T, url string) (*httptest.ResponseRecorder, *CatalogResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler(catalog.Default(), logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if rec.Code != http.StatusOK {
		return rec, nil
	}
	var body CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, &body
}

func TestHandle_Full(t *testing.T) {
	_, body := get(t, "/api/v1/catalog")
	require.NotNil(t, body)

	assert.True(t, body.Success)
	assert.Len(t, body.Services, 12)
	assert.Len(t, body.Showrooms, 4)
	assert.Len(t, body.Mechanics, 4)
	assert.Len(t, body.TimeSlots, 8)
	assert.Equal(t, "09:00 AM", body.TimeSlots[0])
}

func TestHandle_ShowroomFilter(t *testing.T) {
	_, body := get(t, "/api/v1/catalog?showroom=1")
	require.NotNil(t, body)

	require.Len(t, body.Showrooms, 1)
	assert.Equal(t, "Main Service Center", body.Showrooms[0].Name)
	require.Len(t, body.Mechanics, 1)
	assert.Equal(t, "Ravi Kumar", body.Mechanics["1"][0].Name)

	rec, _ := get(t, "/api/v1/catalog?showroom=99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
