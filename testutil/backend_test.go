package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/kbukum/blogkit/component"
)

func get(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	body, _ := io.ReadAll(resp.Body)
	json.Unmarshal(body, &out)
	return resp.StatusCode, out
}

func TestBackend_Lifecycle(t *testing.T) {
	b := NewBackend()
	ctx := context.Background()

	if b.URL() != "" {
		t.Error("URL should be empty before Start")
	}
	if h := b.Health(ctx); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}
	if err := b.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := b.Start(ctx); err == nil {
		t.Error("second Start should fail")
	}
	if !strings.HasSuffix(b.URL(), APIPrefix) {
		t.Errorf("unexpected URL %q", b.URL())
	}
	if h := b.Health(ctx); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy, got %s", h.Status)
	}
	if d := b.Describe(); d.Details != b.URL() {
		t.Errorf("unexpected description %+v", d)
	}
	if err := b.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if b.URL() != "" {
		t.Error("URL should be empty after Stop")
	}
}

func TestBackend_ReplyAndFail(t *testing.T) {
	b := NewBackend()
	b.Reply(http.MethodGet, "/tag/1", map[string]any{"id": 1, "name": "go"})
	b.Fail(http.MethodGet, "/tag/2", 400, "not found")
	b.Status(http.MethodGet, "/statis", http.StatusBadGateway, "bad gateway")
	T(t).Setup(b)

	status, body := get(t, b.URL()+"/tag/1?x=1")
	if status != http.StatusOK || body["code"].(float64) != 200 {
		t.Errorf("unexpected reply %d %v", status, body)
	}
	data := body["data"].(map[string]any)
	if data["name"] != "go" {
		t.Errorf("unexpected data %v", data)
	}

	status, body = get(t, b.URL()+"/tag/2")
	if status != http.StatusOK || body["code"].(float64) != 400 || body["message"] != "not found" {
		t.Errorf("unexpected failure envelope %d %v", status, body)
	}

	if status, _ := get(t, b.URL()+"/statis"); status != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", status)
	}
	if status, _ := get(t, b.URL()+"/missing"); status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown route, got %d", status)
	}

	reqs := b.RequestsTo(http.MethodGet, "/tag/1")
	if len(reqs) != 1 || reqs[0].Query.Get("x") != "1" {
		t.Errorf("unexpected recorded requests %+v", reqs)
	}
	if got := len(b.Requests()); got != 4 {
		t.Errorf("expected 4 recorded requests, got %d", got)
	}
}

func TestBackend_RecordsJSONBody(t *testing.T) {
	b := NewBackend()
	b.Reply(http.MethodPost, "/article", "ok")
	T(t).Setup(b)

	resp, err := http.Post(b.URL()+"/article", "application/json", strings.NewReader(`{"title":"hello"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	last, ok := b.LastRequest()
	if !ok {
		t.Fatal("no request recorded")
	}
	if last.ContentType() != "application/json" {
		t.Errorf("content type = %q", last.ContentType())
	}
	var payload struct{ Title string }
	if err := last.Decode(&payload); err != nil || payload.Title != "hello" {
		t.Errorf("unexpected body %q: %v", last.Body, err)
	}
}

func TestBackend_RecordsMultipart(t *testing.T) {
	b := NewBackend()
	b.Reply(http.MethodPost, "/file", []string{"/covers/a.png"})
	T(t).Setup(b)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, _ := w.CreateFormFile("files", "a.png")
	part.Write([]byte("A"))
	w.WriteField("dir", "covers")
	w.Close()

	resp, err := http.Post(b.URL()+"/file", w.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	last, _ := b.LastRequest()
	if last.Form.Get("dir") != "covers" {
		t.Errorf("unexpected form %v", last.Form)
	}
	if len(last.Files) != 1 || last.Files[0].Field != "files" || string(last.Files[0].Data) != "A" {
		t.Errorf("unexpected files %+v", last.Files)
	}
}

func TestBackend_ResetSnapshotRestore(t *testing.T) {
	b := NewBackend()
	b.Reply(http.MethodGet, "/tag/list", []string{})
	h := T(t)
	h.Setup(b)

	get(t, b.URL()+"/tag/list")
	snap := h.Snapshot(b)
	url := b.URL()

	h.Reset(b)
	if len(b.Requests()) != 0 {
		t.Error("Reset should clear recorded requests")
	}
	if b.URL() != url {
		t.Error("Reset should keep the server URL")
	}
	if status, _ := get(t, b.URL()+"/tag/list"); status != http.StatusNotFound {
		t.Errorf("Reset should drop routes, got %d", status)
	}

	h.Restore(b, snap)
	if got := len(b.Requests()); got != 1 {
		t.Errorf("expected restored request, got %d", got)
	}
	if err := b.Restore(context.Background(), "bogus"); err == nil {
		t.Error("expected error for foreign snapshot")
	}
}

func TestBackend_InRegistry(t *testing.T) {
	r := component.NewRegistry(nil)
	b := NewBackend()
	if err := r.Register(b); err != nil {
		t.Fatalf("Register: %v", err)
	}
	ctx := context.Background()
	if err := r.StartAll(ctx); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	defer r.StopAll(ctx)

	if h := r.HealthAll(ctx); len(h) != 1 || h[0].Status != component.StatusHealthy {
		t.Errorf("unexpected health %+v", h)
	}
}
