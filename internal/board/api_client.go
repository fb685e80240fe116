package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/meeralouise/my-reading-world/internal/constant"
	"github.com/meeralouise/my-reading-world/internal/dto"
	"github.com/meeralouise/my-reading-world/internal/pkg/serverutils"

	"github.com/google/uuid"
)

// Client implements API over the REST surface. Each Client represents one
// page session and carries a stable session identifier for the access gate.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessionID  string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		sessionID:  uuid.NewString(),
	}
}

func (c *Client) SessionID() string {
	return c.sessionID
}

func (c *Client) GetWorld(ctx context.Context, id int) (*dto.ShowWorldResponse, error) {
	var out dto.ShowWorldResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/worlds/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) JoinWorld(ctx context.Context, code string) (*dto.WorldResponse, error) {
	var out dto.WorldResponse
	body := dto.JoinWorldRequest{AccessCode: code}
	if err := c.do(ctx, http.MethodPost, "/worlds/join", &body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListStickers(ctx context.Context, worldID int) ([]*dto.StickerResponse, error) {
	var out []*dto.StickerResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stickers?world_id=%d", worldID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSticker(ctx context.Context, req *dto.CreateStickerRequest) (*dto.StickerResponse, error) {
	var out dto.StickerResponse
	if err := c.do(ctx, http.MethodPost, "/stickers", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSticker(ctx context.Context, id int, req *dto.UpdateStickerRequest) (*dto.StickerResponse, error) {
	var out dto.StickerResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/stickers/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constant.HeaderSessionID, c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serverutils.NewPersistenceError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError maps HTTP failures back onto the error taxonomy.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Error == "" {
		body.Error = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &serverutils.NotFoundError{Resource: strings.TrimSuffix(body.Error, " not found")}
	case http.StatusBadRequest:
		return serverutils.NewValidationError(body.Error)
	default:
		return serverutils.NewPersistenceError(fmt.Errorf("%s", body.Error))
	}
}
