// Package archiveclient는 압축 아카이브 서버의 /api/v1 API를 부르는 클라이언트예요.
package archiveclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"huffman_compression_go/pkg/huffman"
)

// 응답 시 받는 데이터 구조체
type Archive struct {
	ID          string    `json:"id"`
	Strategy    string    `json:"strategy"`
	SymbolWidth int       `json:"symbol_width"`
	Symbols     int       `json:"symbols"`
	Distinct    int       `json:"distinct"`
	BitLength   int64     `json:"bit_length"`
	Payload     []byte    `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
}

type EncodeResult struct {
	Payload []byte        `json:"payload"`
	Stats   huffman.Stats `json:"stats"`
}

type textBody struct {
	Text string `json:"text"`
}

type payloadBody struct {
	Payload []byte `json:"payload"`
}

// APIError는 2xx가 아닌 응답이에요.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("archive api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func doRequest[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return out, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return out, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return out, &APIError{Status: resp.StatusCode, Message: msg}
	}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return out, nil
}

func (c *Client) CreateArchive(ctx context.Context, text string) (*Archive, error) {
	return doRequest[*Archive](ctx, c, http.MethodPost, "/archives", textBody{Text: text})
}

func (c *Client) GetArchive(ctx context.Context, id string) (*Archive, error) {
	return doRequest[*Archive](ctx, c, http.MethodGet, "/archives/"+id, nil)
}

func (c *Client) GetArchiveText(ctx context.Context, id string) (string, error) {
	body, err := doRequest[textBody](ctx, c, http.MethodGet, "/archives/"+id+"/text", nil)
	return body.Text, err
}

func (c *Client) ListArchives(ctx context.Context) ([]Archive, error) {
	return doRequest[[]Archive](ctx, c, http.MethodGet, "/archives", nil)
}

func (c *Client) DeleteArchive(ctx context.Context, id string) error {
	_, err := doRequest[struct{}](ctx, c, http.MethodDelete, "/archives/"+id, nil)
	return err
}

// Encode는 서버에 저장하지 않고 압축 결과만 받아와요.
func (c *Client) Encode(ctx context.Context, text string) (*EncodeResult, error) {
	return doRequest[*EncodeResult](ctx, c, http.MethodPost, "/codec/encode", textBody{Text: text})
}

func (c *Client) Decode(ctx context.Context, payload []byte) (string, error) {
	body, err := doRequest[textBody](ctx, c, http.MethodPost, "/codec/decode", payloadBody{Payload: payload})
	return body.Text, err
}
