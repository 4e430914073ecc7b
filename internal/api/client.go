package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/model"
)

// Backend endpoints and wire constants
const (
	ImagesPath       = "/api/images/"
	UploadPath       = "/api/images/upload/"
	DetailPathFormat = "/api/images/%d/"
	DeletePathFormat = "/api/images/%d/delete/"

	UploadFieldName    = "image"
	DefaultContentType = "application/octet-stream"

	// MaxResourceSize caps a single fetched image
	MaxResourceSize = 64 << 20
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Client talks to the ImageBoost REST backend
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a backend client. A zero timeout leaves requests bounded
// only by the context and the transport defaults.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute: %q", baseURL)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListImages returns every record known to the backend
func (c *Client) ListImages(ctx context.Context) ([]model.ImageRecord, error) {
	var images []model.ImageRecord
	if err := c.getJSON(ctx, c.endpoint(ImagesPath), &images); err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	if images == nil {
		images = []model.ImageRecord{}
	}
	return images, nil
}

// GetImage returns a single record
func (c *Client) GetImage(ctx context.Context, id int64) (*model.ImageRecord, error) {
	var image model.ImageRecord
	if err := c.getJSON(ctx, c.endpoint(fmt.Sprintf(DetailPathFormat, id)), &image); err != nil {
		return nil, fmt.Errorf("failed to get image %d: %w", id, err)
	}
	return &image, nil
}

// UploadImage sends one file as multipart form data under the "image" field.
// progress, when set, is called as the request body is written.
func (c *Client) UploadImage(ctx context.Context, file model.LocalFile, progress ProgressFunc) (*model.ImageRecord, error) {
	body, contentType, err := buildMultipartBody(file)
	if err != nil {
		return nil, err
	}

	total := int64(body.Len())
	reader := &progressReader{reader: bytes.NewReader(body.Bytes()), total: total, onProgress: progress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(UploadPath), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.ContentLength = total
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("uploading image", zap.String("file", file.Name), zap.Int64("bytes", total))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", file.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, resp.Body)
	}

	var image model.ImageRecord
	if err := json.NewDecoder(resp.Body).Decode(&image); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &image, nil
}

// DeleteImage deletes a record. Only 204 No Content counts as success.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(fmt.Sprintf(DeletePathFormat, id)), nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}

	c.log.Debug("deleting image", zap.Int64("id", id))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete image %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return newStatusError(resp.StatusCode, resp.Body)
	}
	return nil
}

// FetchResource downloads the bytes behind a resource URL. Relative URLs are
// resolved against the backend base URL.
func (c *Client) FetchResource(ctx context.Context, resourceURL string) ([]byte, error) {
	target, err := c.resolve(resourceURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp.StatusCode, resp.Body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}
	if len(data) > MaxResourceSize {
		return nil, fmt.Errorf("resource %s exceeds %d bytes", target, MaxResourceSize)
	}
	return data, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, resp.Body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.JoinPath(path).String()
}

func (c *Client) resolve(resourceURL string) (string, error) {
	ref, err := url.Parse(resourceURL)
	if err != nil {
		return "", fmt.Errorf("invalid resource URL %q: %w", resourceURL, err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

// buildMultipartBody encodes the file under UploadFieldName keeping its
// declared content type (the backend validates it).
func buildMultipartBody(file model.LocalFile) (*bytes.Buffer, string, error) {
	if file.Open == nil {
		return nil, "", fmt.Errorf("file %s cannot be opened", file.Name)
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer src.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(UploadFieldName), quoteEscaper.Replace(file.Name)))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
