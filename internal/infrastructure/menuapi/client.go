// Package menuapi is an HTTP client for the menu generation endpoint.
package menuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ngamdu/Meditouch/internal/domain/menu"
)

// ErrBlankSubject is returned without any request when the subject is blank.
var ErrBlankSubject = errors.New("subject is blank")

// Doer sends HTTP requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-success answer from the endpoint.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// Client posts subjects to the menu endpoint.
type Client struct {
	endpoint string
	http     Doer
}

// NewClient creates a client for endpoint. A nil doer uses http.DefaultClient.
func NewClient(endpoint string, doer Doer) Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return Client{endpoint: strings.TrimSpace(endpoint), http: doer}
}

// Generate requests a menu for subject and returns the menu text.
func (c Client) Generate(ctx context.Context, subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrBlankSubject
	}

	payload, err := json.Marshal(menu.Request{Subject: subject})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("menu request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read menu response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		var ok menu.Response
		if err := json.Unmarshal(raw, &ok); err != nil {
			return "", fmt.Errorf("failed to decode menu response: %w", err)
		}
		if !ok.Success {
			return "", &APIError{Status: resp.StatusCode, Message: "menu service reported failure"}
		}
		return ok.Menu, nil
	}

	var failed menu.ErrorResponse
	if err := json.Unmarshal(raw, &failed); err != nil || failed.Error == "" {
		return "", &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return "", &APIError{Status: resp.StatusCode, Message: failed.Error, Details: failed.Details}
}
