// 압축 서버(/api/v1/blobs) HTTP 클라이언트
package huffapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xiaocenxiaocen/huffmantree/pkg/huffman"
)

// 서버 응답 구조체
type BlobInfo struct {
	ID        string        `json:"id"`
	Symbols   int           `json:"symbols"`
	Bits      uint64        `json:"bits"`
	Stats     huffman.Stats `json:"stats"`
	CreatedAt time.Time     `json:"createdAt"`
}

// StatusError is a non-2xx reply.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("huffapi: status %d: %s", e.Code, strings.TrimSpace(e.Body))
}

type Client struct {
	baseUrl string
	http    *http.Client
}

func New(baseUrl string) *Client {
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/") + "/api/v1/blobs",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) doRequest(method, path string, body []byte) (*http.Response, []byte, error) {
	req, err := http.NewRequest(method, c.baseUrl+path, bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return resp, data, nil
}

func (c *Client) Compress(data []byte) (*BlobInfo, error) {
	_, body, err := c.doRequest(http.MethodPost, "", data)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	var info BlobInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("compress: unmarshal: %w", err)
	}
	return &info, nil
}

func (c *Client) Get(id string) (*BlobInfo, error) {
	_, body, err := c.doRequest(http.MethodGet, "/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	var info BlobInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("get %s: unmarshal: %w", id, err)
	}
	return &info, nil
}

// Raw는 서버에서 복원한 원본
func (c *Client) Raw(id string) ([]byte, error) {
	_, body, err := c.doRequest(http.MethodGet, "/"+id+"/raw", nil)
	if err != nil {
		return nil, fmt.Errorf("raw %s: %w", id, err)
	}
	return body, nil
}

// Packed는 압축 스트림과 심볼 수
func (c *Client) Packed(id string) (huffman.Bitstream, int, error) {
	resp, body, err := c.doRequest(http.MethodGet, "/"+id+"/packed", nil)
	if err != nil {
		return huffman.Bitstream{}, 0, fmt.Errorf("packed %s: %w", id, err)
	}
	bits, err := strconv.ParseUint(resp.Header.Get("X-Huffman-Bits"), 10, 64)
	if err != nil {
		return huffman.Bitstream{}, 0, fmt.Errorf("packed %s: bits header: %w", id, err)
	}
	symbols, err := strconv.Atoi(resp.Header.Get("X-Huffman-Symbols"))
	if err != nil {
		return huffman.Bitstream{}, 0, fmt.Errorf("packed %s: symbols header: %w", id, err)
	}
	return huffman.Bitstream{Packed: body, Bits: bits}, symbols, nil
}

// Decode는 stream을 id의 트리로 복원 요청
func (c *Client) Decode(id string, stream huffman.Bitstream, symbols int) ([]byte, error) {
	path := fmt.Sprintf("/%s/decode?bits=%d&symbols=%d", id, stream.Bits, symbols)
	_, body, err := c.doRequest(http.MethodPost, path, stream.Packed)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return body, nil
}

func (c *Client) Delete(id string) error {
	if _, _, err := c.doRequest(http.MethodDelete, "/"+id, nil); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}
