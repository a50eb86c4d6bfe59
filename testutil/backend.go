package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/blogkit/component"
	"github.com/kbukum/blogkit/httpclient/envelope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// APIPrefix is the path prefix the backend serves under.
const APIPrefix = "/api"

// maxMemory bounds in-memory multipart parsing.
const maxMemory = 32 << 20

// RecordedFile is one file part of a multipart request.
type RecordedFile struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// RecordedRequest is a request as the backend saw it. Path is relative to
// APIPrefix.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	Form   url.Values
	Files  []RecordedFile
}

// ContentType returns the request media type without parameters.
func (r RecordedRequest) ContentType() string {
	ct := r.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// Decode unmarshals the JSON body into v.
func (r RecordedRequest) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Backend is a fake blog backend.
type Backend struct {
	mu       sync.RWMutex
	engine   *gin.Engine
	api      *gin.RouterGroup
	ts       *httptest.Server
	requests []RecordedRequest
}

var _ TestComponent = (*Backend)(nil)
var _ component.Describable = (*Backend)(nil)

// NewBackend creates an unstarted backend with no routes. Unknown routes
// answer 404.
func NewBackend() *Backend {
	b := &Backend{}
	b.newEngine()
	return b
}

func (b *Backend) newEngine() {
	b.engine = gin.New()
	b.engine.Use(b.record)
	b.api = b.engine.Group(APIPrefix)
}

// Handle registers a handler for method and path (relative to APIPrefix).
func (b *Backend) Handle(method, path string, handler gin.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.api.Handle(method, path, handler)
}

// Reply answers method and path with a success envelope carrying data.
func (b *Backend) Reply(method, path string, data any) {
	b.Handle(method, path, func(c *gin.Context) { OK(c, data) })
}

// Fail answers method and path with a business failure envelope.
func (b *Backend) Fail(method, path string, code int, message string) {
	b.Handle(method, path, func(c *gin.Context) { Envelope(c, code, message, nil) })
}

// Status answers method and path with a bare HTTP status and body.
func (b *Backend) Status(method, path string, status int, body string) {
	b.Handle(method, path, func(c *gin.Context) { c.String(status, body) })
}

// OK writes a success envelope.
func OK(c *gin.Context, data any) {
	Envelope(c, envelope.SuccessCode, "success", data)
}

// Envelope writes an envelope with HTTP status 200.
func Envelope(c *gin.Context, code int, message string, data any) {
	c.JSON(http.StatusOK, envelope.Envelope[any]{Code: code, Message: message, Data: data})
}

func (b *Backend) serveHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.RLock()
	engine := b.engine
	b.mu.RUnlock()
	engine.ServeHTTP(w, r)
}

func (b *Backend) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	rec := RecordedRequest{
		Method: c.Request.Method,
		Path:   strings.TrimPrefix(c.Request.URL.Path, APIPrefix),
		Query:  c.Request.URL.Query(),
		Header: c.Request.Header.Clone(),
		Body:   body,
	}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		rec.Form, rec.Files = readMultipart(c)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	b.mu.Lock()
	b.requests = append(b.requests, rec)
	b.mu.Unlock()
	c.Next()
}

func readMultipart(c *gin.Context) (url.Values, []RecordedFile) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	fields := url.Values{}
	for k, vs := range form.Value {
		fields[k] = append(fields[k], vs...)
	}
	var files []RecordedFile
	for field, headers := range form.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				continue
			}
			data, _ := io.ReadAll(f)
			f.Close()
			files = append(files, RecordedFile{
				Field:       field,
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}
	return fields, files
}

// Requests returns every recorded request in arrival order.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// LastRequest returns the most recent request. ok is false when none arrived.
func (b *Backend) LastRequest() (req RecordedRequest, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.requests) == 0 {
		return RecordedRequest{}, false
	}
	return b.requests[len(b.requests)-1], true
}

// RequestsTo returns the recorded requests for method and path.
func (b *Backend) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// URL returns the API base URL, or "" before Start.
func (b *Backend) URL() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.ts == nil {
		return ""
	}
	return b.ts.URL + APIPrefix
}

// Name implements component.Component.
func (b *Backend) Name() string { return "blog-backend" }

// Start implements component.Component.
func (b *Backend) Start(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ts != nil {
		return fmt.Errorf("backend already started")
	}
	b.ts = httptest.NewServer(http.HandlerFunc(b.serveHTTP))
	return nil
}

// Stop implements component.Component.
func (b *Backend) Stop(_ context.Context) error {
	b.mu.Lock()
	ts := b.ts
	b.ts = nil
	b.mu.Unlock()
	if ts != nil {
		ts.Close()
	}
	return nil
}

// Health implements component.Component.
func (b *Backend) Health(_ context.Context) component.Health {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.ts == nil {
		return component.Health{Name: b.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: b.Name(), Status: component.StatusHealthy}
}

// Describe implements component.Describable.
func (b *Backend) Describe() component.Description {
	return component.Description{Name: b.Name(), Type: "fake-backend", Details: b.URL()}
}

// Reset drops every route and recorded request. The server keeps its URL.
func (b *Backend) Reset(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.newEngine()
	b.requests = nil
	return nil
}

// Snapshot captures the recorded requests.
func (b *Backend) Snapshot(_ context.Context) (any, error) {
	return b.Requests(), nil
}

// Restore replaces the recorded requests with a Snapshot result.
func (b *Backend) Restore(_ context.Context, snapshot any) error {
	reqs, ok := snapshot.([]RecordedRequest)
	if !ok {
		return fmt.Errorf("backend: unexpected snapshot type %T", snapshot)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append([]RecordedRequest(nil), reqs...)
	return nil
}
