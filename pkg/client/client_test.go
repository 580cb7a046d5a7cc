package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestListEntriesBuildsQuery(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock-entries/", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]models.StockEntry{{ID: 1, EntryNumber: "ISSUE-20250101-0001"}})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	temporary := true
	entryRows, err := c.ListEntries(context.Background(), EntryFilter{
		Status:      "PENDING_ACK",
		EntryType:   "ISSUE",
		IsTemporary: &temporary,
		Location:    4,
	})

	assert.NoError(t, err)
	assert.Len(t, entryRows, 1)
	assert.Equal(t, "ISSUE-20250101-0001", entryRows[0].EntryNumber)
	assert.Equal(t, []string{"PENDING_ACK"}, gotQuery["status"])
	assert.Equal(t, []string{"ISSUE"}, gotQuery["entry_type"])
	assert.Equal(t, []string{"true"}, gotQuery["is_temporary"])
	assert.Equal(t, []string{"4"}, gotQuery["location"])
}

func TestCreateEntrySendsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.StockEntryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ISSUE", req.EntryType)
		assert.Equal(t, []int{11, 12}, req.Instances)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.StockEntry{ID: 9, EntryNumber: "ISSUE-20250101-0002"})
	}))
	defer server.Close()

	from, to := 1, 2
	c := NewClient(server.URL)
	entry, err := c.CreateEntry(context.Background(), models.StockEntryRequest{
		EntryType:    "ISSUE",
		FromLocation: &from,
		ToLocation:   &to,
		Item:         5,
		Quantity:     2,
		Instances:    []int{11, 12},
	})

	assert.NoError(t, err)
	assert.Equal(t, 9, entry.ID)
}

func TestAPIErrorCarriesBodyVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"instance CHAIR-00099 not found"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	_, err := c.ScanInstance(context.Background(), "CHAIR-00099")

	assert.Error(t, err)
	apiErr, ok := err.(*APIError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, `{"error":"instance CHAIR-00099 not found"}`, apiErr.Body)
}

func TestAcknowledgeEntryPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock-entries/42/acknowledge/", r.URL.Path)
		json.NewEncoder(w).Encode(models.AcknowledgeResponse{Accepted: 2, Rejected: 1})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	response, err := c.AcknowledgeEntry(context.Background(), 42, models.AcknowledgeRequest{
		AcceptedIDs: []int{1, 2},
		RejectedItems: []models.RejectedItem{
			{ID: 3, Reason: "Damaged"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, response.Accepted)
	assert.Equal(t, 1, response.Rejected)
}
