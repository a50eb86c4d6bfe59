package blog

import (
	"context"

	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/httpclient/envelope"
	"github.com/kbukum/blogkit/httpclient/rest"
)

// Multipart field names of the upload endpoint.
const (
	FieldFiles = "files"
	FieldDir   = "dir"
)

// UploadFiles uploads files in one multipart request, one "files" part per
// file. dir, when set, selects the target directory. The response lists
// the URLs of the stored files.
func (c *Client) UploadFiles(ctx context.Context, files []httpclient.FileField, dir string) (*envelope.Envelope[[]string], error) {
	body := &httpclient.MultipartBody{}
	for _, f := range files {
		f.FieldName = FieldFiles
		body.AddFile(f)
	}
	if dir != "" {
		body.AddField(FieldDir, dir)
	}
	return rest.Upload[[]string](ctx, c.api, "/file", body)
}

// ListFiles pages through the files of dir (default page size 20).
func (c *Client) ListFiles(ctx context.Context, dir string, page Page) (*envelope.Envelope[Paginate[File]], error) {
	params := page.params(DefaultFileSize)
	params["dir"] = dir
	return rest.Get[Paginate[File]](ctx, c.api, "/file/list", params)
}

func (c *Client) FileInfo(ctx context.Context, path string) (*envelope.Envelope[File], error) {
	return rest.Get[File](ctx, c.api, "/file/info", map[string]any{"filePath": path})
}

// DeleteFile deletes one file. The path travels in the query string.
func (c *Client) DeleteFile(ctx context.Context, path string) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, "/file", nil, rest.WithParams(map[string]any{"filePath": path}))
}

func (c *Client) BatchDeleteFiles(ctx context.Context, paths []string) (*envelope.Envelope[string], error) {
	return rest.Delete[string](ctx, c.api, "/file/batch", paths)
}

// ListDirs lists the upload directories.
func (c *Client) ListDirs(ctx context.Context) (*envelope.Envelope[[]Dir], error) {
	return rest.Get[[]Dir](ctx, c.api, "/file/dir", nil)
}
