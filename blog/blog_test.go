package blog

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/logger"
	"github.com/kbukum/blogkit/testutil"
)

func setup(t *testing.T) (*testutil.Backend, *Client, credential.Store) {
	t.Helper()
	backend := testutil.NewBackend()
	testutil.T(t).Setup(backend)

	store := credential.NewMemoryStore()
	c, err := New(httpclient.Config{BaseURL: backend.URL()}, credential.NewProvider(store, logger.Nop()), logger.Nop())
	require.NoError(t, err)
	return backend, c, store
}

func lastRequest(t *testing.T, b *testutil.Backend) testutil.RecordedRequest {
	t.Helper()
	req, ok := b.LastRequest()
	require.True(t, ok, "no request reached the backend")
	return req
}

func TestLogin_StoresTokenForLaterRequests(t *testing.T) {
	backend, c, store := setup(t)
	backend.Reply(http.MethodPost, "/user/login", LoginResult{Token: "abc", User: User{ID: 1, Name: "admin"}})
	backend.Reply(http.MethodGet, "/user/author", User{ID: 1, Name: "admin"})

	env, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", env.Data.Token)

	token, _ := store.Get(credential.KeyToken)
	assert.Equal(t, "abc", token)

	login := backend.RequestsTo(http.MethodPost, "/user/login")
	require.Len(t, login, 1)
	var sent credentials
	require.NoError(t, login[0].Decode(&sent))
	assert.Equal(t, credentials{Username: "admin", Password: "secret"}, sent)

	author, err := c.AuthorInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", author.Data.Name)
	assert.Equal(t, "Bearer abc", lastRequest(t, backend).Header.Get("Authorization"))
}

func TestNoToken_NoAuthorizationHeader(t *testing.T) {
	backend, c, _ := setup(t)
	backend.Reply(http.MethodGet, "/user/author", User{Name: "admin"})

	_, err := c.AuthorInfo(context.Background())
	require.NoError(t, err)

	req := lastRequest(t, backend)
	assert.Empty(t, req.Header.Values("Authorization"))
	assert.NotEmpty(t, req.Header.Get(httpclient.HeaderRequestID))
}

func TestLogout_ClearsToken(t *testing.T) {
	backend, c, store := setup(t)
	backend.Reply(http.MethodGet, "/user/author", User{})
	require.NoError(t, store.Set(credential.KeyToken, "abc"))

	require.NoError(t, c.Logout())
	_, err := c.AuthorInfo(context.Background())
	require.NoError(t, err)

	assert.Empty(t, lastRequest(t, backend).Header.Get("Authorization"))
}

func TestLogin_FailureKeepsNoToken(t *testing.T) {
	backend, c, store := setup(t)
	backend.Fail(http.MethodPost, "/user/login", 400, "wrong password")

	env, err := c.Login(context.Background(), "admin", "nope")
	assert.Nil(t, env)
	assert.True(t, envelope.IsBusiness(err))
	assert.EqualError(t, err, "wrong password")

	token, _ := store.Get(credential.KeyToken)
	assert.Empty(t, token)
}

func TestDeleteArticle_BusinessFailure(t *testing.T) {
	backend, c, _ := setup(t)
	backend.Fail(http.MethodDelete, "/article/5/0", 500, "not found")

	env, err := c.DeleteArticle(context.Background(), 5, 0)
	assert.Nil(t, env)
	require.Error(t, err)
	assert.Equal(t, "not found", err.Error())

	berr, ok := envelope.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, 500, berr.Code)
	assert.False(t, httpclient.IsTransport(err))
}

func TestUploadFiles_Multipart(t *testing.T) {
	backend, c, _ := setup(t)
	backend.Reply(http.MethodPost, "/file", []string{"/covers/a.png", "/covers/b.png"})

	files := []httpclient.FileField{
		{FileName: "a.png", ContentType: "image/png", Data: []byte("A")},
		{FieldName: "ignored", FileName: "b.png", Data: []byte("B")},
	}
	env, err := c.UploadFiles(context.Background(), files, "covers")
	require.NoError(t, err)
	assert.Len(t, env.Data, 2)

	req := lastRequest(t, backend)
	assert.Equal(t, "multipart/form-data", req.ContentType())
	require.Len(t, req.Files, 2)
	for _, f := range req.Files {
		assert.Equal(t, FieldFiles, f.Field)
	}
	assert.ElementsMatch(t, []string{"a.png", "b.png"}, []string{req.Files[0].Name, req.Files[1].Name})
	assert.Equal(t, []string{"covers"}, req.Form[FieldDir])
}

func TestUploadFiles_NoDir(t *testing.T) {
	backend, c, _ := setup(t)
	backend.Reply(http.MethodPost, "/file", []string{"/a.png"})

	_, err := c.UploadFiles(context.Background(), []httpclient.FileField{{FileName: "a.png", Data: []byte("A")}}, "")
	require.NoError(t, err)
	_, hasDir := lastRequest(t, backend).Form[FieldDir]
	assert.False(t, hasDir)
}

func TestTransportFailure(t *testing.T) {
	backend, c, _ := setup(t)
	backend.Status(http.MethodGet, "/statis", http.StatusServiceUnavailable, "maintenance")

	_, err := c.Statistics(context.Background(), StatisticsQuery{})
	require.Error(t, err)
	assert.True(t, httpclient.IsServerError(err))
	assert.False(t, envelope.IsBusiness(err))
}
