package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"clubform/internal/domain/application"
	"clubform/internal/form"
)

// HTTPClient talks to the submission endpoint of the API server.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *HTTPClient {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{baseURL: trimmed, httpClient: httpClient}
}

type submitResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// Catalog mirrors the body of GET /api/catalog.
type Catalog struct {
	Clubs          []application.Club              `json:"clubs"`
	Domains        []application.Domain            `json:"domains"`
	SkillsByDomain map[application.Domain][]string `json:"skills_by_domain"`
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("submission api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("submission api error: status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage is the text the server wants shown to the applicant.
func (e *StatusError) ServerMessage() string {
	return e.Message
}

var ErrNoBaseURL = errors.New("gateway base url is not configured")

func (c *HTTPClient) Submit(ctx context.Context, payload application.Submission) (form.Receipt, error) {
	if c.baseURL == "" {
		return form.Receipt{}, ErrNoBaseURL
	}
	if payload.Skills == nil {
		payload.Skills = []string{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return form.Receipt{}, fmt.Errorf("encode application: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/applications", bytes.NewReader(body))
	if err != nil {
		return form.Receipt{}, fmt.Errorf("create submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return form.Receipt{}, fmt.Errorf("send application: %w", err)
	}
	defer resp.Body.Close()
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return form.Receipt{}, fmt.Errorf("read submit response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return form.Receipt{}, mapStatusError(resp.StatusCode, payloadBytes)
	}
	var parsed submitResponse
	if err := json.Unmarshal(payloadBytes, &parsed); err != nil {
		return form.Receipt{}, fmt.Errorf("decode submit response: %w", err)
	}
	return form.Receipt{Message: parsed.Message}, nil
}

func (c *HTTPClient) Catalog(ctx context.Context) (Catalog, error) {
	if c.baseURL == "" {
		return Catalog{}, ErrNoBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/catalog", nil)
	if err != nil {
		return Catalog{}, fmt.Errorf("create catalog request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Catalog{}, mapStatusError(resp.StatusCode, payloadBytes)
	}
	var catalog Catalog
	if err := json.Unmarshal(payloadBytes, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

func mapStatusError(status int, payload []byte) error {
	statusErr := &StatusError{StatusCode: status}
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return statusErr
	}
	statusErr.Code = parsed.Error
	statusErr.Message = parsed.Message
	statusErr.Fields = parsed.Fields
	return statusErr
}
