package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"medicab-server/internal/utils"
)

const remoteTokenTTL = time.Minute

// RemoteBackend talks to the key-value HTTP service exposed by this module.
type RemoteBackend struct {
	BaseURL string
	Secret  string
	Client  *http.Client
}

func NewRemoteBackend(baseURL, secret string, client *http.Client) *RemoteBackend {
	if client == nil {
		client = &http.Client{}
	}
	return &RemoteBackend{BaseURL: baseURL, Secret: secret, Client: client}
}

func (r *RemoteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	status, err := r.do(ctx, http.MethodGet, key, nil, &envelope)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("remote get %q: response carries no data", key)
	}
	return envelope.Data, nil
}

func (r *RemoteBackend) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.do(ctx, http.MethodPut, key, value, nil)
	return err
}

func (r *RemoteBackend) Delete(ctx context.Context, key string) error {
	_, err := r.do(ctx, http.MethodDelete, key, nil, nil)
	return err
}

func (r *RemoteBackend) Close() error {
	r.Client.CloseIdleConnections()
	return nil
}

// do sends one request and decodes a successful envelope into out.
// The service's own 404 for an absent key is returned as a status, not as an
// error. Other 4xx replies wrap ErrRejected.
func (r *RemoteBackend) do(ctx context.Context, method, key string, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+"/api/v1/kv/"+url.PathEscape(key), reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Secret != "" {
		token, err := utils.GenerateServiceToken(r.Secret, "medicab-storage", remoteTokenTTL)
		if err != nil {
			return 0, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var envelope utils.ResponseData
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			envelope.Error = "response is not an envelope: " + err.Error()
		}
		if resp.StatusCode == http.StatusNotFound && method == http.MethodGet && envelope.Error == NotFoundMessage {
			return resp.StatusCode, nil
		}
		err := fmt.Errorf("remote %s %q: status %d: %s", method, key, resp.StatusCode, envelope.Error)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			err = fmt.Errorf("%w: %v", ErrRejected, err)
		}
		return resp.StatusCode, err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("remote %s %q: decode response: %w", method, key, err)
		}
	}
	return resp.StatusCode, nil
}
