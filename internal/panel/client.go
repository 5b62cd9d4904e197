package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

const (
	endpointApplication = "application"
	endpointAdmin       = "admin"
	endpointClient      = "client"

	maxResponseSize = 8 << 20
	maxListPages    = 50
)

// Client talks to the application and client APIs of the panel.
type Client struct {
	httpClient *http.Client
	baseURL    string

	applicationKey string
	clientKey      string

	logger *logr.Logger
}

// NewClient builds a client for host. clientKey falls back to applicationKey when empty.
func NewClient(httpClient *http.Client, host, applicationKey, clientKey string) Client {
	if clientKey == "" {
		clientKey = applicationKey
	}

	baseURL := ""
	if host != "" {
		baseURL = strings.TrimRight(host, "/") + "/api"
	}

	return Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		applicationKey: applicationKey,
		clientKey:      clientKey,
	}
}

func (c Client) WithLogger(logger logr.Logger) Client {
	c.logger = &logger

	return c
}

func (c Client) Configured() bool {
	return c.baseURL != "" && c.applicationKey != ""
}

// ListServers returns every server, from the application endpoint or the admin one.
// Pages are followed unless filters already select a page.
func (c Client) ListServers(ctx context.Context, filters url.Values) ([]entity.Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	ret, endpoint, err := firstSuccess(ctx, c, "list servers",
		attempt[[]entity.Document]{endpoint: endpointApplication, do: func(ctx context.Context) ([]entity.Document, error) {
			return c.listAll(ctx, "/application/servers", filters)
		}},
		attempt[[]entity.Document]{endpoint: endpointAdmin, do: func(ctx context.Context) ([]entity.Document, error) {
			return c.listAll(ctx, "/admin/servers", filters)
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	c.logInfo(2, "Servers listed", "endpoint", endpoint, "count", len(ret))

	return ret, nil
}

// GetServerDetails accepts the numeric id, the uuid or the short identifier.
func (c Client) GetServerDetails(ctx context.Context, id string) (entity.Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	ret, _, err := firstSuccess(ctx, c, "get server details "+id,
		attempt[entity.Document]{endpoint: endpointApplication, do: func(ctx context.Context) (entity.Document, error) {
			return c.getDocument(ctx, c.applicationKey, "/application/servers/"+url.PathEscape(id), url.Values{"include": {"user,node"}})
		}},
		attempt[entity.Document]{endpoint: endpointClient, do: func(ctx context.Context) (entity.Document, error) {
			return c.getDocument(ctx, c.clientKey, "/client/servers/"+url.PathEscape(id), nil)
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return ret, nil
}

// GetServerResources is only available on the client API.
func (c Client) GetServerResources(ctx context.Context, id string) (entity.Document, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	ret, err := c.getDocument(ctx, c.clientKey, resourcesPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: get resources %s: %w", ErrUpstream, id, err)
	}

	return ret, nil
}

// GetStatus prefers live resources over application details.
// It never fails: when both are unavailable the status is unknown.
func (c Client) GetStatus(ctx context.Context, id string) entity.StatusResult {
	unknown := entity.StatusResult{Status: entity.StatusUnknown, Source: entity.SourceNone}

	if !c.Configured() {
		c.logError(fmt.Errorf("%w %s: %w", ErrTransientFetchFailure, id, ErrNotConfigured), "Status fetch failed")

		return unknown
	}

	raw, endpoint, err := firstSuccess(ctx, c, "get status "+id,
		attempt[entity.Document]{endpoint: string(entity.SourceClientResources), do: func(ctx context.Context) (entity.Document, error) {
			return c.getDocument(ctx, c.clientKey, resourcesPath(id), nil)
		}},
		attempt[entity.Document]{endpoint: string(entity.SourceApplicationDetails), do: func(ctx context.Context) (entity.Document, error) {
			return c.getDocument(ctx, c.applicationKey, "/application/servers/"+url.PathEscape(id), nil)
		}},
	)
	if err != nil {
		c.logError(fmt.Errorf("%w %s: %w", ErrTransientFetchFailure, id, err), "Status fetch failed")

		return unknown
	}

	return entity.StatusResult{
		Status: Normalize(raw).Status,
		Source: entity.StatusSource(endpoint),
		Raw:    raw,
	}
}

// PowerAction sends a power signal. The action is validated before any request.
func (c Client) PowerAction(ctx context.Context, id string, action entity.PowerAction) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	if !c.Configured() {
		return ErrNotConfigured
	}

	body := map[string]string{"signal": string(action)}

	_, err := c.do(ctx, http.MethodPost, c.clientKey, "/client/servers/"+url.PathEscape(id)+"/power", nil, body)
	if err != nil {
		return fmt.Errorf("%w: power %s %s: %w", ErrUpstream, action, id, err)
	}

	c.logInfo(1, "Power action sent", "server", id, "action", action)

	return nil
}

func (c Client) listAll(ctx context.Context, path string, filters url.Values) ([]entity.Document, error) {
	query := url.Values{}
	for key, values := range filters {
		query[key] = values
	}

	paginate := query.Get("page") == ""

	var ret []entity.Document

	for page := 1; page <= maxListPages; page++ {
		if paginate {
			query.Set("page", strconv.Itoa(page))
		}

		payload, err := c.do(ctx, http.MethodGet, c.applicationKey, path, query, nil)
		if err != nil {
			return nil, err
		}

		items, totalPages, err := unwrapList(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		ret = append(ret, items...)

		if !paginate || page >= totalPages {
			break
		}
	}

	return ret, nil
}

func (c Client) getDocument(ctx context.Context, key, path string, query url.Values) (entity.Document, error) {
	payload, err := c.do(ctx, http.MethodGet, key, path, query, nil)
	if err != nil {
		return nil, err
	}

	obj, ok := asObject(payload)
	if !ok {
		return nil, fmt.Errorf("%s: %w: expected an object", path, ErrUnexpectedPayload)
	}

	return obj, nil
}

// do returns the decoded json body, nil when the body is empty.
func (c Client) do(ctx context.Context, method, key, path string, query url.Values, body interface{}) (interface{}, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read body: %w", method, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var ret interface{}

	err = json.Unmarshal(data, &ret)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrUnexpectedPayload, err)
	}

	return ret, nil
}

// unwrapList accepts {data:[...]}, a bare array or {servers:[...]}.
func unwrapList(payload interface{}) ([]entity.Document, int, error) {
	var items []interface{}

	totalPages := 1

	switch v := payload.(type) {
	case []interface{}:
		items = v
	case map[string]interface{}:
		switch {
		case isList(v["data"]):
			items = v["data"].([]interface{})
		case isList(v["servers"]):
			items = v["servers"].([]interface{})
		default:
			return nil, 0, fmt.Errorf("%w: no server list", ErrUnexpectedPayload)
		}

		pages, ok := fieldPath{"meta", "pagination", "total_pages"}.lookup(v)
		if ok {
			if n, ok := asNumber(pages); ok {
				totalPages = int(n)
			}
		}
	default:
		return nil, 0, fmt.Errorf("%w: no server list", ErrUnexpectedPayload)
	}

	ret := make([]entity.Document, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}

		ret = append(ret, obj)
	}

	return ret, totalPages, nil
}

func isList(value interface{}) bool {
	_, ok := value.([]interface{})

	return ok
}

func resourcesPath(id string) string {
	return "/client/servers/" + url.PathEscape(id) + "/resources"
}

// IsStatusCode reports whether err carries an upstream answer with the given status.
func IsStatusCode(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}

	return false
}

func (c Client) logInfo(level int, msg string, keysAndValues ...any) {
	if c.logger == nil {
		return
	}

	c.logger.V(level).Info(msg, keysAndValues...)
}

func (c Client) logError(err error, msg string, keysAndValues ...any) {
	if c.logger == nil {
		return
	}

	c.logger.Error(err, msg, keysAndValues...)
}
