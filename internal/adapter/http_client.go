package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-card-keeper/models"
)

// DefaultEndpoint is used when a credential carries no explicit endpoint.
const DefaultEndpoint = "https://sync.ankiweb.net"

const defaultTimeout = 30 * time.Second

type httpSyncTransport struct {
	client *resty.Client
}

// NewHTTPSyncTransport builds the production [SyncTransport]. The base URL
// and timeout are taken per call from the credential, so a single transport
// serves any endpoint.
func NewHTTPSyncTransport() SyncTransport {
	return &httpSyncTransport{client: resty.New()}
}

func (t *httpSyncTransport) request(ctx context.Context, cred models.SyncCredential) *resty.Request {
	timeout := cred.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return t.client.
		SetBaseURL(strings.TrimRight(endpointOrDefault(cred.Endpoint), "/")).
		SetTimeout(timeout).
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+cred.Key)
}

func endpointOrDefault(endpoint string) string {
	if endpoint == "" {
		return DefaultEndpoint
	}
	return endpoint
}

func (t *httpSyncTransport) Meta(ctx context.Context, cred models.SyncCredential) (models.SyncMeta, error) {
	resp, err := t.request(ctx, cred).Get("/sync/meta")
	if err != nil {
		return models.SyncMeta{}, fmt.Errorf("%w: %w", ErrSyncNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncMeta{}, err
	}

	var meta models.SyncMeta
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return models.SyncMeta{}, fmt.Errorf("%w: decode meta: %w", ErrSyncProtocol, err)
	}
	return meta, nil
}

func (t *httpSyncTransport) SyncChanges(ctx context.Context, cred models.SyncCredential, req models.ChangesRequest) (models.ChangesResponse, error) {
	resp, err := t.request(ctx, cred).
		SetBody(req).
		Post("/sync/changes")
	if err != nil {
		return models.ChangesResponse{}, fmt.Errorf("%w: %w", ErrSyncNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangesResponse{}, err
	}

	var changes models.ChangesResponse
	if err = json.Unmarshal(resp.Body(), &changes); err != nil {
		return models.ChangesResponse{}, fmt.Errorf("%w: decode changes: %w", ErrSyncProtocol, err)
	}
	return changes, nil
}

func (t *httpSyncTransport) FullUpload(ctx context.Context, cred models.SyncCredential, snap models.Snapshot) (models.SyncMeta, error) {
	resp, err := t.request(ctx, cred).
		SetBody(snap).
		Post("/sync/upload")
	if err != nil {
		return models.SyncMeta{}, fmt.Errorf("%w: %w", ErrSyncNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncMeta{}, err
	}

	var meta models.SyncMeta
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return models.SyncMeta{}, fmt.Errorf("%w: decode upload reply: %w", ErrSyncProtocol, err)
	}
	return meta, nil
}

func (t *httpSyncTransport) FullDownload(ctx context.Context, cred models.SyncCredential) (models.Snapshot, error) {
	resp, err := t.request(ctx, cred).Get("/sync/download")
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrSyncNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Snapshot{}, err
	}

	var snap models.Snapshot
	if err = json.Unmarshal(resp.Body(), &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: decode snapshot: %w", ErrSyncProtocol, err)
	}
	return snap, nil
}

func (t *httpSyncTransport) Login(ctx context.Context, endpoint, user, password string) (string, error) {
	resp, err := t.client.
		SetBaseURL(strings.TrimRight(endpointOrDefault(endpoint), "/")).
		SetTimeout(defaultTimeout).
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user": user, "password": password}).
		Post("/sync/login")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSyncNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var reply struct {
		Key string `json:"key"`
	}
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return "", fmt.Errorf("%w: decode login reply: %w", ErrSyncProtocol, err)
	}
	if reply.Key == "" {
		return "", fmt.Errorf("%w: empty key in login reply", ErrSyncProtocol)
	}
	return reply.Key, nil
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrSyncAuth, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrSyncServer, code, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrSyncServer, code, body)
	}
}
