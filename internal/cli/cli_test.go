package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/logger"
	"github.com/kbukum/blogkit/testutil"
)

const testHome = "/home/writer"

type harness struct {
	t       *testing.T
	backend *testutil.Backend
	fs      afero.Fs
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	backend := testutil.NewBackend()
	testutil.T(t).Setup(backend)
	return &harness{t: t, backend: backend, fs: afero.NewMemMapFs()}
}

// run executes blogctl against the fake backend and returns stdout.
func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(Options{
		Fs:      h.fs,
		HomeDir: testHome,
		Out:     &out,
		Err:     &errOut,
		Logger:  logger.Nop(),
	})
	root.SetArgs(append([]string{"--base-url", h.backend.URL()}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err)
	return out
}

func (h *harness) credentialPath() string {
	return filepath.Join(testHome, credential.DefaultDir, credential.DefaultFile)
}

func (h *harness) storeToken(token string) {
	h.t.Helper()
	require.NoError(h.t, credential.NewFileStore(h.fs, h.credentialPath()).Set(credential.KeyToken, token))
}

func (h *harness) last() testutil.RecordedRequest {
	h.t.Helper()
	req, ok := h.backend.LastRequest()
	require.True(h.t, ok, "no request reached the backend")
	return req
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLogin_PersistsTokenForLaterCommands(t *testing.T) {
	h := newHarness(t)
	token := signedToken(t, time.Now().Add(time.Hour))
	h.backend.Reply(http.MethodPost, "/user/login", blog.LoginResult{
		Token: token,
		User:  blog.User{ID: 1, Name: "Writer", Username: "admin"},
	})
	h.backend.Reply(http.MethodGet, "/user/author", blog.User{ID: 1, Name: "Writer", Username: "admin", Email: "w@example.com"})

	out := h.mustRun("login", "-u", "admin", "-p", "secret")
	assert.Contains(t, out, "Logged in as admin")

	exists, err := afero.Exists(h.fs, h.credentialPath())
	require.NoError(t, err)
	assert.True(t, exists, "credential file should be written")

	out = h.mustRun("whoami")
	assert.Contains(t, out, "Writer")
	assert.Contains(t, out, "w@example.com")
	assert.Contains(t, out, "Expires:")
	assert.Equal(t, "Bearer "+token, h.last().Header.Get("Authorization"))
	assert.Contains(t, h.last().Header.Get("User-Agent"), "blogctl/")
}

func TestLogin_RequiresFlags(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("login", "-u", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
	assert.Empty(t, h.backend.Requests())
}

func TestLogin_BusinessFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.Fail(http.MethodPost, "/user/login", 400, "wrong username or password")

	_, err := h.run("login", "-u", "admin", "-p", "nope")
	require.Error(t, err)
	assert.Equal(t, "wrong username or password", err.Error())

	exists, _ := afero.Exists(h.fs, h.credentialPath())
	assert.False(t, exists)
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Empty(t, h.backend.Requests())
}

func TestLogout_RemovesToken(t *testing.T) {
	h := newHarness(t)
	h.storeToken("abc")

	out := h.mustRun("logout")
	assert.Contains(t, out, "Logged out")
	exists, _ := afero.Exists(h.fs, h.credentialPath())
	assert.False(t, exists)
	assert.Empty(t, h.backend.Requests(), "logout is local")
}

func TestArticlesList_Table(t *testing.T) {
	h := newHarness(t)
	h.storeToken("abc")
	h.backend.Reply(http.MethodPost, "/article/paging", blog.Paginate[blog.Article]{
		Page: 2, Size: 5, Pages: 3, Total: 11,
		Result: []blog.Article{{ID: 7, Title: "Hello Go", View: 42, CateList: []blog.Category{{Name: "dev"}}}},
	})

	out := h.mustRun("articles", "list", "--page", "2", "--size", "5", "--draft")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Hello Go")
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, "page 2/3, 11 total")

	req := h.last()
	assert.Equal(t, "2", req.Query.Get("page"))
	assert.Equal(t, "5", req.Query.Get("size"))
	assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
	var sent map[string]any
	require.NoError(t, req.Decode(&sent))
	assert.Equal(t, map[string]any{"isDraft": float64(1)}, sent)
}

func TestArticlesList_JSON(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodPost, "/article/paging", blog.Paginate[blog.Article]{
		Page: 1, Size: 10, Pages: 1, Total: 1, Result: []blog.Article{{ID: 1, Title: "A"}},
	})

	out := h.mustRun("articles", "list", "-o", "json")
	var got blog.Paginate[blog.Article]
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Result, 1)
	assert.Equal(t, "A", got.Result[0].Title)

	var sent map[string]any
	require.NoError(t, h.last().Decode(&sent))
	assert.Empty(t, sent, "unset filters are left out")
}

func TestArticlesDelete(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodDelete, "/article/:id/:isDel", "ok")

	out := h.mustRun("articles", "delete", "5")
	assert.Contains(t, out, "recycle bin")
	assert.Equal(t, "/article/5/0", h.last().Path)

	h.mustRun("articles", "delete", "5", "--permanent")
	assert.Equal(t, "/article/5/1", h.last().Path)
}

func TestArticlesDelete_BusinessFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.Fail(http.MethodDelete, "/article/:id/:isDel", 500, "not found")

	_, err := h.run("articles", "delete", "5")
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())
}

func TestArticlesDelete_InvalidID(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("articles", "delete", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
	assert.Empty(t, h.backend.Requests())
}

func TestArticlesBatchDelete(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodDelete, "/article/batch", "ok")

	out := h.mustRun("articles", "batch-delete", "1", "2", "3")
	assert.Contains(t, out, "Deleted 3 articles")
	var ids []int
	require.NoError(t, h.last().Decode(&ids))
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestArticlesHot(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodGet, "/article/hot", []blog.Article{{ID: 3, Title: "Popular", View: 900}})

	out := h.mustRun("articles", "hot", "-n", "3")
	assert.Contains(t, out, "Popular")
	assert.Equal(t, "3", h.last().Query.Get("count"))
}

func TestTagsList_YAML(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodPost, "/tag/list", []blog.Tag{{ID: 1, Name: "go"}, {ID: 2, Name: "http"}})

	out := h.mustRun("tags", "list", "-o", "yaml")
	var got []blog.Tag
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []blog.Tag{{ID: 1, Name: "go"}, {ID: 2, Name: "http"}}, got)
}

func TestCategoriesList_Tree(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodPost, "/cate/list", []blog.Category{
		{ID: 1, Name: "dev", Children: []blog.Category{{ID: 2, Name: "golang"}}},
	})

	out := h.mustRun("categories", "list")
	assert.Contains(t, out, "dev")
	assert.Contains(t, out, "  golang")
	assert.Equal(t, blog.PatternRecursion, h.last().Query.Get("pattern"))
}

func TestCommentsList_StatusFilter(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodPost, "/comment/paging", blog.Paginate[blog.Comment]{
		Page: 1, Pages: 1, Total: 1,
		Result: []blog.Comment{{ID: 9, Name: "reader", Content: "nice post"}},
	})

	out := h.mustRun("comments", "list", "--status", "0")
	assert.Contains(t, out, "reader")
	assert.Contains(t, out, "no")

	var sent map[string]any
	require.NoError(t, h.last().Decode(&sent))
	assert.Equal(t, float64(0), sent["status"], "an explicit zero status is sent")
}

func TestModerationActions(t *testing.T) {
	tests := []struct {
		args   []string
		method string
		path   string
		want   string
	}{
		{[]string{"comments", "audit", "4"}, http.MethodPatch, "/comment/audit/4", "Approved comment 4"},
		{[]string{"walls", "audit", "5"}, http.MethodPatch, "/wall/audit/5", "Approved wall message 5"},
		{[]string{"walls", "choice", "6"}, http.MethodPatch, "/wall/choice/6", "featured flag of wall message 6"},
		{[]string{"links", "audit", "7"}, http.MethodPatch, "/link/audit/7", "Approved link 7"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h := newHarness(t)
			h.backend.Reply(tt.method, tt.path, "ok")

			out := h.mustRun(tt.args...)
			assert.Contains(t, out, tt.want)
			req := h.last()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
		})
	}
}

func TestFilesUpload(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/work/cover.png", []byte("PNG"), 0o644))
	require.NoError(t, afero.WriteFile(h.fs, "/work/notes.txt", []byte("hi"), 0o644))
	h.backend.Reply(http.MethodPost, "/file", []string{"/covers/cover.png", "/covers/notes.txt"})

	out := h.mustRun("files", "upload", "/work/cover.png", "/work/notes.txt", "--dir", "covers")
	assert.Contains(t, out, "/covers/cover.png")

	req := h.last()
	assert.Equal(t, "multipart/form-data", req.ContentType())
	assert.Equal(t, "covers", req.Form.Get("dir"))
	require.Len(t, req.Files, 2)
	assert.Equal(t, "files", req.Files[0].Field)
	assert.Equal(t, "cover.png", req.Files[0].Name)
	assert.Equal(t, "image/png", req.Files[0].ContentType)
	assert.Equal(t, []byte("hi"), req.Files[1].Data)
}

func TestFilesUpload_MissingFile(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("files", "upload", "/work/missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")
	assert.Empty(t, h.backend.Requests())
}

func TestFilesRemove(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodDelete, "/file", "ok")
	h.backend.Reply(http.MethodDelete, "/file/batch", "ok")

	h.mustRun("files", "rm", "covers/a.png")
	assert.Equal(t, "covers/a.png", h.last().Query.Get("filePath"))

	out := h.mustRun("files", "rm", "a", "b")
	assert.Contains(t, out, "Deleted 2 files")
	var paths []string
	require.NoError(t, h.last().Decode(&paths))
	assert.Equal(t, []string{"a", "b"}, paths)
}

func TestConfigGet(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodGet, "/web_config/name/:name", map[string]any{
		"id": 1, "name": "web", "value": map[string]any{"title": "My Blog", "url": "https://example.com"},
	})

	out := h.mustRun("config", "get", "web")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "My Blog")
	assert.Equal(t, "/web_config/name/web", h.last().Path)

	out = h.mustRun("config", "get", "web", "-o", "json")
	var got configView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "web", got.Name)
	assert.Equal(t, "My Blog", got.Value.(map[string]any)["title"])
}

func TestStats_ParsesDates(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodGet, "/statis", map[string]any{"pv": 120, "uv": 30})

	out := h.mustRun("stats", "--type", "overview", "--from", "Jan 2, 2026", "--to", "2026/01/31")
	assert.Contains(t, out, "pv")
	assert.Contains(t, out, "120")

	q := h.last().Query
	assert.Equal(t, "overview", q.Get("type"))
	assert.Equal(t, "2026-01-02", q.Get("startDate"))
	assert.Equal(t, "2026-01-31", q.Get("endDate"))
}

func TestStats_InvalidDate(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("stats", "--from", "not a date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
	assert.Empty(t, h.backend.Requests())
}

func TestRssList(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodGet, "/rss/list", []blog.Rss{{Author: "friend", Title: "Weekly notes", URL: "https://friend.dev/1"}})

	out := h.mustRun("rss", "list")
	assert.Contains(t, out, "friend")
	assert.Contains(t, out, "Weekly notes")
}

func TestOverview(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodPost, "/article/paging", blog.Paginate[blog.Article]{Total: 42})
	h.backend.Reply(http.MethodPost, "/cate/list", []blog.Category{{ID: 1}, {ID: 2}})
	h.backend.Reply(http.MethodPost, "/tag/list", []blog.Tag{{ID: 1}, {ID: 2}, {ID: 3}})
	h.backend.Reply(http.MethodPost, "/comment/paging", blog.Paginate[blog.Comment]{Total: 17})
	h.backend.Reply(http.MethodPost, "/wall/paging", blog.Paginate[blog.Wall]{Total: 5})
	h.backend.Reply(http.MethodPost, "/link/paging", blog.Paginate[blog.Link]{Total: 8})

	out := h.mustRun("overview", "-o", "json")
	var got Overview
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 42, got.Articles)
	assert.Equal(t, 2, got.Categories)
	assert.Equal(t, 3, got.Tags)
	assert.Equal(t, 17, got.Comments)
	assert.Equal(t, 5, got.WallMessages)
	assert.Equal(t, 8, got.Links)
	assert.Len(t, h.backend.Requests(), 6)
}

func TestOverview_FailsOnFirstError(t *testing.T) {
	h := newHarness(t)
	h.backend.Fail(http.MethodPost, "/article/paging", 401, "token expired")

	_, err := h.run("overview")
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("status")
	assert.Contains(t, out, "telemetry")
	assert.Contains(t, out, "export disabled")
	assert.Contains(t, out, "blog-api")
	assert.Contains(t, out, h.backend.URL())
	assert.Contains(t, out, "Not logged in")

	out = h.mustRun("status", "-o", "json")
	var got statusReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.LoggedIn)
	require.Len(t, got.Components, 2)
	assert.Equal(t, "http-client", got.Components[1].Type)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("version")
	assert.Contains(t, out, "blogctl")
}

func TestInvalidOutputFormat(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("tags", "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
	assert.Empty(t, h.backend.Requests())
}

func TestTransportFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.Status(http.MethodPost, "/tag/list", http.StatusBadGateway, "bad gateway")

	_, err := h.run("tags", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestExecute_ExitCode(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodPost, "/tag/list", []blog.Tag{})
	var out, errOut bytes.Buffer
	opts := Options{Fs: h.fs, HomeDir: testHome, Out: &out, Err: &errOut, Logger: logger.Nop()}

	assert.Equal(t, 0, Execute(context.Background(), []string{"--base-url", h.backend.URL(), "tags", "list"}, opts))
	assert.Equal(t, 1, Execute(context.Background(), []string{"--base-url", h.backend.URL(), "whoami"}, opts))
	assert.Contains(t, errOut.String(), "not logged in")
}
