// Package services talks to the remote managed data service.
// File: services/data_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketing-planner/models"
)

// table names on the remote data service
const (
	usersTable  = "marketing_users"
	eventsTable = "marketing_events"
)

// DataService is the gateway to the remote tables. Lookups that match no row
// return (nil, nil); a non-nil error always means the remote call itself
// failed (transport problem or non-2xx status).
type DataService interface {
	FindUserByEmail(email string) (*models.User, error)
	ListEvents(start, end string) ([]models.Event, error)
	CreateEvent(input models.EventInput, createdBy int64) (*models.Event, error)
	UpdateEvent(id string, input models.EventInput) (*models.Event, error)
	GetEvent(id string) (*models.Event, error)
	SetEventPosted(id string, posted bool) (*models.Event, error)
	DeleteEvent(id string) error
}

// ------------------ REST implementation ------------------

// RestDataService speaks the data service's HTTP dialect: one path segment
// per table, filters as query parameters ("column=op.value"), writes that
// return the affected rows when asked via the Prefer header.
type RestDataService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ DataService = (*RestDataService)(nil)

// NewRestDataService creates a gateway client for the given endpoint and key.
func NewRestDataService(baseURL, apiKey string) *RestDataService {
	return &RestDataService{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// request performs one call against a table and returns the raw response body.
func (s *RestDataService) request(method, table string, query url.Values, body any, returning bool) ([]byte, error) {
	endpoint := s.baseURL + "/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if returning {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, table, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: data service returned %d: %s", method, table, resp.StatusCode, truncate(data, 200))
	}
	return data, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

// decodeRows unmarshals a JSON array response into a slice of T.
func decodeRows[T any](data []byte) ([]T, error) {
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode data service response: %w", err)
	}
	return rows, nil
}

// firstRow returns a pointer to the first row, or nil when the result is empty.
func firstRow[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// ------------------ users ------------------

// FindUserByEmail fetches at most one user row matching the email exactly.
func (s *RestDataService) FindUserByEmail(email string) (*models.User, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("email", "eq."+email)
	query.Set("limit", "1")

	data, err := s.request(http.MethodGet, usersTable, query, nil, false)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[models.User](data)
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// ------------------ events ------------------

// ListEvents returns events with date in [start, end] inclusive, ordered by
// date then time ascending.
func (s *RestDataService) ListEvents(start, end string) ([]models.Event, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Add("date", "gte."+start)
	query.Add("date", "lte."+end)
	query.Set("order", "date.asc,time.asc")

	data, err := s.request(http.MethodGet, eventsTable, query, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeRows[models.Event](data)
}

// CreateEvent inserts a row and returns it as stored. The posted column is
// deliberately left out so the table default (false) applies.
func (s *RestDataService) CreateEvent(input models.EventInput, createdBy int64) (*models.Event, error) {
	row := map[string]any{
		"date":       input.Date,
		"time":       input.Time,
		"title":      input.Title,
		"channel":    input.Channel,
		"platform":   input.Platform,
		"notes":      input.Notes,
		"created_by": createdBy,
	}
	data, err := s.request(http.MethodPost, eventsTable, url.Values{}, row, true)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[models.Event](data)
	if err != nil {
		return nil, err
	}
	inserted := firstRow(rows)
	if inserted == nil {
		return nil, fmt.Errorf("insert into %s returned no row", eventsTable)
	}
	return inserted, nil
}

// UpdateEvent rewrites the editable columns of the row with the given id and
// returns the updated row, or nil when no row matched.
func (s *RestDataService) UpdateEvent(id string, input models.EventInput) (*models.Event, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)

	row := map[string]any{
		"date":     input.Date,
		"time":     input.Time,
		"title":    input.Title,
		"channel":  input.Channel,
		"platform": input.Platform,
		"notes":    input.Notes,
	}
	data, err := s.request(http.MethodPatch, eventsTable, query, row, true)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[models.Event](data)
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// GetEvent fetches the id and posted flag of a single event, or nil when the
// id does not exist.
func (s *RestDataService) GetEvent(id string) (*models.Event, error) {
	query := url.Values{}
	query.Set("select", "id,posted")
	query.Set("id", "eq."+id)
	query.Set("limit", "1")

	data, err := s.request(http.MethodGet, eventsTable, query, nil, false)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[models.Event](data)
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// SetEventPosted writes the posted flag and returns the updated row, or nil
// when no row matched.
func (s *RestDataService) SetEventPosted(id string, posted bool) (*models.Event, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)

	data, err := s.request(http.MethodPatch, eventsTable, query, map[string]any{"posted": posted}, true)
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows[models.Event](data)
	if err != nil {
		return nil, err
	}
	return firstRow(rows), nil
}

// DeleteEvent removes the row with the given id. The remote service reports
// no error for a zero-row delete, so neither do we.
func (s *RestDataService) DeleteEvent(id string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)

	_, err := s.request(http.MethodDelete, eventsTable, query, nil, false)
	return err
}
