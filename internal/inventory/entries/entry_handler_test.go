package entries

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAcknowledgeRouter(mockEntryRepo *MockEntryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := &EntryHandler{
		EntryRepository: mockEntryRepo,
		Service:         &EntryService{er: mockEntryRepo},
	}

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func postAcknowledge(router *gin.Engine, path string, payload models.AcknowledgeRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAcknowledgeUnknownEntry(t *testing.T) {
	mockEntryRepo := new(MockEntryRepository)
	mockEntryRepo.On("GetEntryRow", 42).Return(nil, custom_error.NewNotFoundError("stock entry", "42"))

	router := setupAcknowledgeRouter(mockEntryRepo)
	recorder := postAcknowledge(router, "/api/stock-entries/42/acknowledge/", models.AcknowledgeRequest{
		AcceptedIDs: []int{1},
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAcknowledgeCompletedEntryRejected(t *testing.T) {
	mockEntryRepo := new(MockEntryRepository)
	mockEntryRepo.On("GetEntryRow", 42).Return(&models.StockEntry{
		ID:     42,
		Status: "COMPLETED",
	}, nil)

	router := setupAcknowledgeRouter(mockEntryRepo)
	recorder := postAcknowledge(router, "/api/stock-entries/42/acknowledge/", models.AcknowledgeRequest{
		AcceptedIDs: []int{1},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Only pending entries can be acknowledged")
}

func TestAcknowledgeIncompleteCoverageConflicts(t *testing.T) {
	from, to := 1, 3
	mockEntryRepo := new(MockEntryRepository)
	mockEntryRepo.On("GetEntryRow", 42).Return(&models.StockEntry{
		ID:           42,
		EntryNumber:  "ISSUE-20250101-0001",
		Status:       "PENDING_ACK",
		FromLocation: &from,
		ToLocation:   &to,
	}, nil)
	mockEntryRepo.On("GetEntryInstanceIDs", 42).Return([]int{11, 12, 13}, nil)

	router := setupAcknowledgeRouter(mockEntryRepo)
	recorder := postAcknowledge(router, "/api/stock-entries/42/acknowledge/", models.AcknowledgeRequest{
		AcceptedIDs: []int{11},
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Acknowledgment validation failed")
	mockEntryRepo.AssertExpectations(t)
}
