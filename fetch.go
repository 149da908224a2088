package llmcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultEndpoint is the public OpenRouter models listing.
const DefaultEndpoint = "https://openrouter.ai/api/v1/models"

// Fetcher retrieves the full, not yet normalized, catalog.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Model, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]Model, error)

func (f FetcherFunc) Fetch(ctx context.Context) ([]Model, error) { return f(ctx) }

// HTTPFetcher downloads the catalog from a fixed endpoint.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with a 30 second client timeout.
// An empty url selects DefaultEndpoint.
func NewHTTPFetcher(url string) *HTTPFetcher {
	if url == "" {
		url = DefaultEndpoint
	}
	return &HTTPFetcher{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Fetch issues one GET request. It does not retry.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &TransportError{Op: "creating request", URL: f.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "fetching models", URL: f.URL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &TransportError{
			Op:         "fetching models",
			URL:        f.URL,
			StatusCode: resp.StatusCode,
			Err:        errors.New(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "reading response", URL: f.URL, Err: err}
	}
	return Decode(body)
}

// FileFetcher reads a catalog snapshot from disk.
type FileFetcher struct {
	Path string
}

func (f FileFetcher) Fetch(context.Context) ([]Model, error) {
	body, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &TransportError{Op: "reading snapshot", URL: f.Path, Err: err}
	}
	return Decode(body)
}

// FallbackFetcher uses Secondary when Primary fails with a TransportError.
// Deserialization errors from Primary are returned as is.
type FallbackFetcher struct {
	Primary   Fetcher
	Secondary Fetcher
}

func (f FallbackFetcher) Fetch(ctx context.Context) ([]Model, error) {
	models, err := f.Primary.Fetch(ctx)
	if err == nil || f.Secondary == nil {
		return models, err
	}
	var te *TransportError
	if !errors.As(err, &te) {
		return nil, err
	}
	models, err2 := f.Secondary.Fetch(ctx)
	if err2 != nil {
		return nil, errors.Join(err, err2)
	}
	return models, nil
}

// requiredFields must be present on every record of a payload.
var requiredFields = []string{
	"name", "created", "canonical_slug", "pricing", "architecture", "top_provider",
}

// Decode parses a catalog payload: either a JSON array of records or an
// object carrying the array under "data". Any name_tokens in the payload are
// kept here and replaced by Normalize. Absent prices read as zero.
func Decode(data []byte) ([]Model, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DeserializationError{Err: errors.New("invalid JSON")}
	}

	list := gjson.ParseBytes(data)
	if list.IsObject() {
		list = list.Get("data")
	}
	if !list.IsArray() {
		return nil, &DeserializationError{Err: errors.New("expected an array of models")}
	}

	var schemaErr error
	for i, value := range list.Array() {
		if !value.IsObject() {
			schemaErr = fmt.Errorf("record %d: not an object", i)
			break
		}
		if missing := missingField(value); missing != "" {
			schemaErr = fmt.Errorf("record %d: missing %q", i, missing)
			break
		}
		if field := invalidLimit(value); field != "" {
			schemaErr = fmt.Errorf("record %d: %s must be a non-negative integer", i, field)
			break
		}
	}
	if schemaErr != nil {
		return nil, &DeserializationError{Err: schemaErr}
	}

	var models []Model
	if err := json.Unmarshal([]byte(list.Raw), &models); err != nil {
		return nil, &DeserializationError{Err: err}
	}
	return models, nil
}

func missingField(record gjson.Result) string {
	for _, field := range requiredFields {
		if !record.Get(field).Exists() {
			return field
		}
	}
	return ""
}

// limitFields are token limits; they must be non-negative integers when present.
var limitFields = []string{
	"top_provider.context_length", "top_provider.max_completion_tokens",
}

func invalidLimit(record gjson.Result) string {
	for _, field := range limitFields {
		v := record.Get(field)
		if !v.Exists() {
			continue
		}
		if v.Type != gjson.Number || v.Num < 0 || v.Num != math.Trunc(v.Num) {
			return field
		}
	}
	return ""
}
