// Package openfda implements the drug-label lookup against the openFDA
// drug/label endpoint. The failure model is deliberately coarse: transport
// errors, bad status codes, unparseable payloads, API error fields and empty
// result sets all collapse to a single not-found outcome. Distinct causes
// are logged at debug level for operators but never surfaced to callers.
package openfda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"health-companion/internal/logging"
	"health-companion/pkg"
)

// SourceLabel is the constant source tag stamped on every returned record.
const SourceLabel = "Official US FDA Database"

// DefaultBaseURL is the public drug-label endpoint.
const DefaultBaseURL = "https://api.fda.gov/drug/label.json"

// notListed substitutes for any label field missing from the result.
const notListed = "Not Listed"

// maxWarningsLen bounds the warnings text interpolated into prompts.
// The cutoff is a hard cap of 1000 characters, not sentence-aware.
const maxWarningsLen = 1000

// Client performs brand-name lookups against the drug-label source. One
// outbound GET per invocation; no caching, no retry, no rate limiting.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a lookup client. An empty baseURL selects the public
// endpoint; httpClient may be nil to use a default with a 10s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// labelResponse mirrors the top level of the openFDA payload: either a
// results array or an error object.
type labelResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Results []labelResult `json:"results"`
}

// labelResult carries the three label fields this service uses. openFDA
// returns each as an array of strings.
type labelResult struct {
	Purpose     []string `json:"purpose"`
	Indications []string `json:"indications_and_usage"`
	Warnings    []string `json:"warnings"`
}

// Lookup queries the label source for the given brand name, requesting at
// most one result, and normalizes the first match. The second return value
// is false for every failure class; Lookup never returns an error.
func (c *Client) Lookup(ctx context.Context, drugName string) (*pkg.DrugRecord, bool) {
	q := url.Values{}
	q.Set("search", fmt.Sprintf("openfda.brand_name:%q", drugName))
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		logging.Debug("drug lookup request build failed", "drug", drugName, "error", err)
		return nil, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Debug("drug lookup transport failure", "drug", drugName, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("drug lookup bad status", "drug", drugName, "status", resp.StatusCode)
		return nil, false
	}

	var payload labelResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logging.Debug("drug lookup decode failure", "drug", drugName, "error", err)
		return nil, false
	}
	if payload.Error != nil {
		logging.Debug("drug lookup API error", "drug", drugName, "code", payload.Error.Code)
		return nil, false
	}
	if len(payload.Results) == 0 {
		logging.Debug("drug lookup empty result set", "drug", drugName)
		return nil, false
	}

	result := payload.Results[0]
	record := &pkg.DrugRecord{
		Source:      SourceLabel,
		Purpose:     first(result.Purpose),
		Indications: first(result.Indications),
		Warnings:    truncate(first(result.Warnings), maxWarningsLen),
	}
	return record, true
}

// first returns the leading entry of a label field, or "Not Listed" when
// the field is absent or empty.
func first(values []string) string {
	if len(values) == 0 || values[0] == "" {
		return notListed
	}
	return values[0]
}

// truncate cuts s to at most n characters, never splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
