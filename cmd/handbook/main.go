package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/goquery"
	"github.com/fwojciec/handbook/guide"
	"github.com/fwojciec/handbook/htmltomarkdown"
	"github.com/fwojciec/handbook/lru"
	"github.com/fwojciec/handbook/render"
	hbslog "github.com/fwojciec/handbook/slog"
	"github.com/fwojciec/handbook/viper"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Directory searched for config.toml when --config is not given.
	ConfigDir string

	// Content source for section pages. Defaults to the embedded guide.
	Source handbook.ContentSource

	logFile *os.File
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigDir: viper.DefaultDir(),
	}
}

// Close releases the log file, if one was opened.
func (m *Main) Close() error {
	if m.logFile == nil {
		return nil
	}
	f := m.logFile
	m.logFile = nil
	return f.Close()
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("handbook"),
		kong.Description("바이오코어 사업단 수입·지출 업무 튜토리얼"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'handbook --help' to see available commands")
		return handbook.Errorf(handbook.EINVALID, "no command specified")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	defer m.Close()

	if err := m.wire(cli, kongCtx.Command(), deps); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", handbook.ErrorMessage(err))
		if handbook.ErrorCode(err) == handbook.EINVALID {
			fmt.Fprintf(stderr, "Hint: check %s or set HANDBOOK_CONFIG\n", configHint(cli.Config, m.ConfigDir))
		}
		return err
	}

	return kongCtx.Run(deps)
}

// wire loads configuration and builds the services shared by all commands.
func (m *Main) wire(cli *CLI, command string, deps *Dependencies) error {
	cfg, err := viper.Load(viper.Options{Path: cli.Config, Dir: m.ConfigDir})
	if err != nil {
		return err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}
	landing, err := cfg.Landing(catalog)
	if err != nil {
		return err
	}

	logger, err := m.logger(cli, cfg, command, deps.Stderr)
	if err != nil {
		return err
	}

	source := m.Source
	if source == nil {
		source = guide.Embedded()
	}
	rendered := &render.PageService{
		Catalog:   catalog,
		Source:    source,
		Parser:    goquery.NewParser(),
		Converter: htmltomarkdown.NewConverter(),
	}
	cached, err := lru.NewPageService(hbslog.NewLoggingPageService(rendered, logger), lru.DefaultSize)
	if err != nil {
		return err
	}

	deps.Config = cfg
	deps.Catalog = catalog
	deps.Landing = landing
	deps.Logger = logger
	deps.Navigator = hbslog.NewLoggingNavigator(handbook.NewController(catalog), logger)
	deps.Pages = cached
	return nil
}

// logger builds the session logger. Flags override the config file. The
// browser draws on the terminal, so it logs nowhere unless a file is named.
func (m *Main) logger(cli *CLI, cfg *viper.Config, command string, stderr io.Writer) (*slog.Logger, error) {
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	var w io.Writer = stderr
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		m.logFile = f
		w = f
	case command == "browse":
		w = io.Discard
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString()), nil
}

func configHint(path, dir string) string {
	if path != "" {
		return path
	}
	return dir + "/config.toml"
}
