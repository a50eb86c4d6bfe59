package cli

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/httpclient"
)

func (c *cli) newFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file"},
		Short:   "Manage uploaded files",
	}
	cmd.AddCommand(
		c.newFilesUploadCommand(),
		c.newFilesListCommand(),
		c.newFilesRemoveCommand(),
		c.newFilesDirsCommand(),
	)
	return cmd
}

func readUpload(fs afero.Fs, path string) (httpclient.FileField, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return httpclient.FileField{}, fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return httpclient.FileField{FileName: name, ContentType: ct, Data: data}, nil
}

func (c *cli) newFilesUploadCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload files in one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			files := make([]httpclient.FileField, 0, len(args))
			for _, path := range args {
				f, err := readUpload(s.fs, path)
				if err != nil {
					return err
				}
				files = append(files, f)
			}
			env, err := s.blog.UploadFiles(ctx, files, dir)
			if err != nil {
				return err
			}
			return s.out.Print(env.Data, func(t *Table) {
				t.Header("url")
				for _, u := range env.Data {
					t.Row(u)
				}
			})
		}),
	}
	cmd.Flags().StringVar(&dir, "dir", "", "target directory")
	return cmd
}

func (c *cli) newFilesListCommand() *cobra.Command {
	var (
		dir  string
		page blog.Page
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the files of a directory",
		Args:    cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.ListFiles(ctx, dir, page)
			if err != nil {
				return err
			}
			p := env.Data
			return s.out.Print(p, func(t *Table) {
				t.Header("name", "size", "url", "created")
				for _, f := range p.Result {
					t.Row(f.Name, humanSize(f.Size), f.URL, f.CreateTime)
				}
				pageFooter(t, p.Page, p.Pages, p.Total)
			})
		}),
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to list (required)")
	cmd.MarkFlagRequired("dir")
	pageFlags(cmd, &page)
	return cmd
}

func (c *cli) newFilesRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Delete files by path",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.runE(func(ctx context.Context, s *session, args []string) error {
			if len(args) == 1 {
				env, err := s.blog.DeleteFile(ctx, args[0])
				if err != nil {
					return err
				}
				return s.out.Done(env, "Deleted %s", args[0])
			}
			env, err := s.blog.BatchDeleteFiles(ctx, args)
			if err != nil {
				return err
			}
			return s.out.Done(env, "Deleted %d files", len(args))
		}),
	}
}

func (c *cli) newFilesDirsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "List upload directories",
		Args:  cobra.NoArgs,
		RunE: c.runE(func(ctx context.Context, s *session, _ []string) error {
			env, err := s.blog.ListDirs(ctx)
			if err != nil {
				return err
			}
			return s.out.Print(env.Data, func(t *Table) {
				t.Header("name", "path")
				for _, d := range env.Data {
					t.Row(d.Name, d.Path)
				}
			})
		}),
	}
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
