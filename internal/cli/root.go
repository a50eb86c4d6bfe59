package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kbukum/blogkit/blog"
	"github.com/kbukum/blogkit/bootstrap"
	"github.com/kbukum/blogkit/component"
	"github.com/kbukum/blogkit/config"
	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/logger"
	"github.com/kbukum/blogkit/observability"
	"github.com/kbukum/blogkit/version"
)

// Options configures the root command. Zero values use the process
// environment: the OS filesystem, the user's home directory and
// stdout/stderr.
type Options struct {
	Fs      afero.Fs
	HomeDir string
	Out     io.Writer
	Err     io.Writer
	// Logger replaces the logger built from the Logging config section.
	Logger *logger.Logger
}

type rootFlags struct {
	configFile string
	output     string
	baseURL    string
	debug      bool
}

type cli struct {
	opts  Options
	flags rootFlags
}

// session is what an API command runs with.
type session struct {
	cfg    *Config
	app    *bootstrap.App[*Config]
	blog   *blog.Client
	tokens *credential.Provider
	out    *Printer
	fs     afero.Fs
}

// Execute runs blogctl with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	root := NewRootCommand(opts)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		errOut := opts.Err
		if errOut == nil {
			errOut = os.Stderr
		}
		NewPrinter(errOut, OutputTable).Errorf("Error: %s", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the blogctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	c := &cli{opts: opts}

	root := &cobra.Command{
		Use:           version.Product,
		Short:         "Command line client for the blog API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configFile, "config", "", "config file (default: blogctl's config.yml search path)")
	pf.StringVarP(&c.flags.output, "output", "o", "", "output format: table, json or yaml")
	pf.StringVar(&c.flags.baseURL, "base-url", "", "API base URL, e.g. http://localhost:8080/api")
	pf.BoolVar(&c.flags.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		c.newLoginCommand(),
		c.newLogoutCommand(),
		c.newWhoamiCommand(),
		c.newArticlesCommand(),
		c.newTagsCommand(),
		c.newCategoriesCommand(),
		c.newCommentsCommand(),
		c.newWallsCommand(),
		c.newLinksCommand(),
		c.newFilesCommand(),
		c.newConfigCommand(),
		c.newStatsCommand(),
		c.newRssCommand(),
		c.newOverviewCommand(),
		c.newStatusCommand(),
		c.newVersionCommand(),
	)
	return root
}

func (c *cli) loadConfig() (*Config, error) {
	cfg := &Config{homeDir: c.opts.HomeDir}
	opts := []config.LoaderOption{config.WithFs(c.opts.Fs)}
	if c.opts.HomeDir != "" {
		opts = append(opts, config.WithHomeDir(c.opts.HomeDir))
	}
	if c.flags.configFile != "" {
		opts = append(opts, config.WithConfigFile(c.flags.configFile))
	}
	if err := config.LoadConfig(version.Product, cfg, opts...); err != nil {
		return nil, err
	}

	if c.flags.baseURL != "" {
		cfg.API.BaseURL = c.flags.baseURL
	}
	if c.flags.output != "" {
		cfg.Output = c.flags.output
	}
	if c.flags.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func (c *cli) logger(cfg *Config) *logger.Logger {
	if c.opts.Logger != nil {
		return c.opts.Logger
	}
	if cfg.Logging.Writer == nil {
		cfg.Logging.Writer = c.opts.Err
	}
	return logger.New(&cfg.Logging, cfg.Name)
}

// run loads the config, starts the app's components and runs fn as the
// app's task.
func (c *cli) run(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyDefaults()
	log := c.logger(cfg)
	app, err := bootstrap.NewApp(cfg, bootstrap.WithLogger(log))
	if err != nil {
		return err
	}

	store, err := credential.New(cfg.Credentials, c.opts.Fs, log)
	if err != nil {
		return err
	}
	tokens := credential.NewProvider(store, log)

	metrics, err := observability.NewClientMetrics(observability.Meter(version.Product))
	if err != nil {
		return fmt.Errorf("client metrics: %w", err)
	}
	api := httpclient.NewComponent(cfg.API, append(blog.Options(tokens, log), httpclient.WithMetrics(metrics))...)

	for _, comp := range []component.Component{observability.NewComponent(cfg.Telemetry), api} {
		if err := app.RegisterComponent(comp); err != nil {
			return err
		}
	}

	return app.RunTask(cmd.Context(), func(ctx context.Context) error {
		return fn(ctx, &session{
			cfg:    cfg,
			app:    app,
			blog:   blog.NewWithDoer(api.Client(), tokens, log),
			tokens: tokens,
			out:    NewPrinter(c.opts.Out, cfg.Output),
			fs:     c.opts.Fs,
		})
	})
}

// runE adapts an API command body to cobra.
func (c *cli) runE(fn func(ctx context.Context, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return c.run(cmd, func(ctx context.Context, s *session) error {
			return fn(ctx, s, args)
		})
	}
}

// printer returns a printer for commands that run without a session.
func (c *cli) printer() *Printer {
	return NewPrinter(c.opts.Out, c.flags.output)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := parseID(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// pageFlags registers --page and --size on cmd.
func pageFlags(cmd *cobra.Command, page *blog.Page) {
	cmd.Flags().IntVar(&page.Page, "page", blog.DefaultPage, "page number, starting at 1")
	cmd.Flags().IntVar(&page.Size, "size", 0, "page size (endpoint default when 0)")
}

func pageFooter(t *Table, page, pages, total int) {
	t.Row()
	t.Row(fmt.Sprintf("page %d/%d, %d total", page, pages, total))
}
