package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	config "github.com/maheshrc27/latedash/configs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Request describes one call against the remote API. When Files is
// non-empty the body goes out as multipart form data and Body is
// ignored; otherwise Body (if any) is JSON-encoded.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Files  []File
}

type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

type Client struct {
	baseURL        string
	token          func() string
	http           *http.Client
	requestTimeout time.Duration
	uploadTimeout  time.Duration
}

// New builds a client against cfg.APIBaseURL. token is read on every
// call so credential changes take effect without rebuilding the client.
func New(cfg *config.Config, token func() string) *Client {
	return &Client{
		baseURL:        cfg.APIBaseURL,
		token:          token,
		http:           &http.Client{},
		requestTimeout: cfg.RequestTimeout,
		uploadTimeout:  cfg.UploadTimeout,
	}
}

// Execute performs one authenticated call and classifies the outcome.
// It never retries; callers decide whether to re-invoke.
func (c *Client) Execute(ctx context.Context, r Request) (json.RawMessage, *Error) {
	token := c.token()
	if token == "" {
		return nil, NotConfigured()
	}

	fullURL := c.baseURL + r.Path
	if len(r.Query) > 0 {
		fullURL += "?" + r.Query.Encode()
	}

	var body io.Reader
	contentType := ""
	if len(r.Files) > 0 {
		buf, ct, err := encodeMultipart(r.Files)
		if err != nil {
			return nil, Unknown(err.Error())
		}
		body = buf
		contentType = ct
	} else if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, Unknown(err.Error())
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	timeout := c.requestTimeout
	if len(r.Files) > 0 {
		timeout = c.uploadTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, r.Method, fullURL, body)
	if err != nil {
		return nil, Unknown(err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID, _ := gonanoid.New()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		cerr := classifyTransport(err)
		slog.Info("request failed", "method", r.Method, "path", r.Path, "request_id", requestID, "kind", string(cerr.Kind))
		return nil, cerr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if len(raw) > 0 && !json.Valid(raw) {
			return nil, Unknown("invalid JSON in response body")
		}
		return json.RawMessage(raw), nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, Unauthorized()
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, RateLimited()
	case resp.StatusCode == http.StatusInternalServerError:
		return nil, ServerError()
	default:
		slog.Info("api error", "method", r.Method, "path", r.Path, "request_id", requestID, "status", resp.StatusCode)
		return nil, APIError(resp.StatusCode, errorDetail(raw))
	}
}

// errorDetail prefers the JSON "message" field of an error body and
// falls back to the raw body text.
func errorDetail(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(raw)
}

func classifyTransport(err error) *Error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return Timeout()
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ConnectionFailed()
	}
	return Unknown(err.Error())
}

func encodeMultipart(files []File) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
