// Package client is a typed HTTP client for the stockroom service API. It is
// the programmatic counterpart of the admin dashboard: everything the UI can
// do goes through these calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"stockroom/pkg/models"
)

// APIError carries a non-2xx response verbatim so callers can surface the
// server's own error message.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Body)
}

type Client struct {
	baseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := c.do(ctx, http.MethodGet, "/api/locations/", nil, nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) CreateLocation(ctx context.Context, req models.LocationRequest) (*models.Location, error) {
	var location models.Location
	if err := c.do(ctx, http.MethodPost, "/api/locations/", nil, req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) UpdateLocation(ctx context.Context, locationID int, req models.LocationRequest) (*models.Location, error) {
	var location models.Location
	path := fmt.Sprintf("/api/locations/%d/", locationID)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/api/categories/", nil, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/api/items/", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateItem(ctx context.Context, req models.ItemRequest) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPost, "/api/items/", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// InstanceFilter narrows a candidate instance listing. Zero values mean the
// dimension is not filtered.
type InstanceFilter struct {
	Location int
	Item     int
	Status   string
}

func (c *Client) ListInstances(ctx context.Context, filter InstanceFilter) ([]models.ItemInstance, error) {
	query := url.Values{}
	if filter.Location != 0 {
		query.Set("location", strconv.Itoa(filter.Location))
	}
	if filter.Item != 0 {
		query.Set("item", strconv.Itoa(filter.Item))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	var instances []models.ItemInstance
	if err := c.do(ctx, http.MethodGet, "/api/item-instances/", query, nil, &instances); err != nil {
		return nil, err
	}
	return instances, nil
}

func (c *Client) ScanInstance(ctx context.Context, instanceCode string) (*models.ScanResponse, error) {
	var response models.ScanResponse
	req := models.ScanRequest{InstanceCode: instanceCode}
	if err := c.do(ctx, http.MethodPost, "/api/item-instances/scan/", nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// EntryFilter narrows a stock entry listing.
type EntryFilter struct {
	Status      string
	EntryType   string
	IsTemporary *bool
	Location    int
}

func (c *Client) ListEntries(ctx context.Context, filter EntryFilter) ([]models.StockEntry, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.EntryType != "" {
		query.Set("entry_type", filter.EntryType)
	}
	if filter.IsTemporary != nil {
		query.Set("is_temporary", strconv.FormatBool(*filter.IsTemporary))
	}
	if filter.Location != 0 {
		query.Set("location", strconv.Itoa(filter.Location))
	}

	var entryRows []models.StockEntry
	if err := c.do(ctx, http.MethodGet, "/api/stock-entries/", query, nil, &entryRows); err != nil {
		return nil, err
	}
	return entryRows, nil
}

func (c *Client) GetEntry(ctx context.Context, entryID int) (*models.StockEntry, error) {
	var entry models.StockEntry
	path := fmt.Sprintf("/api/stock-entries/%d/", entryID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) CreateEntry(ctx context.Context, req models.StockEntryRequest) (*models.StockEntry, error) {
	var entry models.StockEntry
	if err := c.do(ctx, http.MethodPost, "/api/stock-entries/", nil, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) AcknowledgeEntry(ctx context.Context, entryID int, req models.AcknowledgeRequest) (*models.AcknowledgeResponse, error) {
	var response models.AcknowledgeResponse
	path := fmt.Sprintf("/api/stock-entries/%d/acknowledge/", entryID)
	if err := c.do(ctx, http.MethodPost, path, nil, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) ReturnTemporaryItems(ctx context.Context, entryID int) (*models.ReturnTemporaryResponse, error) {
	var response models.ReturnTemporaryResponse
	path := fmt.Sprintf("/api/stock-entries/%d/return_temporary_items/", entryID)
	if err := c.do(ctx, http.MethodPost, path, nil, struct{}{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/stock-entries/dashboard_stats/", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetInventorySummary(ctx context.Context, locationID, itemID int) ([]models.LocationInventory, error) {
	query := url.Values{}
	if locationID != 0 {
		query.Set("location", strconv.Itoa(locationID))
	}
	if itemID != 0 {
		query.Set("item", strconv.Itoa(itemID))
	}

	var summary []models.LocationInventory
	if err := c.do(ctx, http.MethodGet, "/api/location-inventory/summary/", query, nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Client) RefreshInventory(ctx context.Context, locationID int) error {
	req := models.RefreshInventoryRequest{LocationID: locationID}
	return c.do(ctx, http.MethodPost, "/api/location-inventory/refresh/", nil, req, nil)
}

func (c *Client) ListInspectionCertificates(ctx context.Context) ([]models.InspectionCertificate, error) {
	var certificates []models.InspectionCertificate
	if err := c.do(ctx, http.MethodGet, "/api/inspection-certificates/", nil, nil, &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

func (c *Client) CreateInspectionCertificate(ctx context.Context, req models.InspectionRequest) (*models.InspectionCertificate, error) {
	var certificate models.InspectionCertificate
	if err := c.do(ctx, http.MethodPost, "/api/inspection-certificates/", nil, req, &certificate); err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (c *Client) ConfirmInspectionCertificate(ctx context.Context, certificateID int) (*models.ConfirmInspectionResponse, error) {
	var response models.ConfirmInspectionResponse
	path := fmt.Sprintf("/api/inspection-certificates/%d/confirm/", certificateID)
	if err := c.do(ctx, http.MethodPost, path, nil, struct{}{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
