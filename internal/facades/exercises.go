package facades

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mtsfitness/fitness-backend/internal/logger"
)

// ExerciseCatalogHTTPFacade implements exercise lookups against the external
// catalog REST API.
type ExerciseCatalogHTTPFacade struct {
	apiHost    string
	apiKey     string
	httpClient *http.Client
}

// NewExerciseCatalogHTTPFacade creates a new facade for the catalog API.
func NewExerciseCatalogHTTPFacade(apiHost, apiKey string, httpClient *http.Client) *ExerciseCatalogHTTPFacade {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ExerciseCatalogHTTPFacade{
		apiHost:    apiHost,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetByTarget fetches the catalog payload for one target muscle group.
// The payload is returned verbatim; this service does not interpret its
// fields beyond forwarding them.
func (f *ExerciseCatalogHTTPFacade) GetByTarget(ctx context.Context, muscle string, limit int) ([]byte, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", "0")

	reqURL := fmt.Sprintf("%s/exercises/target/%s?%s",
		f.baseURL(), url.PathEscape(strings.ToLower(muscle)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", f.apiKey)
	req.Header.Set("x-rapidapi-host", f.apiHost)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exercises from catalog", "muscle", muscle, "error", err)
		return nil, fmt.Errorf("catalog request for %s: %w", muscle, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Log.Errorw("failed to read catalog response", "muscle", muscle, "error", err)
		return nil, fmt.Errorf("read catalog response for %s: %w", muscle, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("catalog returned non-success status",
			"muscle", muscle, "status", resp.StatusCode)
		return nil, fmt.Errorf("catalog returned status %d for %s", resp.StatusCode, muscle)
	}

	return body, nil
}

// baseURL normalizes the configured API host to an https URL. Tests inject
// a full http URL of a local server.
func (f *ExerciseCatalogHTTPFacade) baseURL() string {
	if strings.HasPrefix(f.apiHost, "http://") || strings.HasPrefix(f.apiHost, "https://") {
		return strings.TrimSuffix(f.apiHost, "/")
	}
	return "https://" + f.apiHost
}
