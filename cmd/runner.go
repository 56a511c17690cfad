package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodify/internal/catalog"
	"github.com/desertthunder/moodify/internal/services"
	"github.com/desertthunder/moodify/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	enricher services.Enricher
	logger   *log.Logger
	output   io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Enricher services.Enricher
	Logger   *log.Logger
	Output   io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:   opts.Config,
		enricher: opts.Enricher,
		logger:   opts.Logger,
		output:   opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, seedCommand, moodsCommand, songsCommand, playlistsCommand, usersCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the runner's logger, e.g. to redirect logs to a file while
// the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadConfig reads the config file named by the --config flag, falling back
// to the runner's current config when the file is absent or unreadable.
func (r *Runner) loadConfig(cmd *cli.Command) *shared.Config {
	configPath := cmd.String("config")
	if configPath == "" {
		return r.config
	}

	if _, err := os.Stat(configPath); err != nil {
		return r.config
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		r.logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		return r.config
	}

	r.config = config
	return config
}

// openDatabase opens the configured sqlite file and applies pool settings.
// The caller owns the returned handle.
func (r *Runner) openDatabase(config *shared.Config) (*sql.DB, error) {
	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
	return db, nil
}

// openEngine builds a catalog engine over the configured database,
// authenticating the enricher when one is available. Enricher failures are
// degraded, not fatal.
func (r *Runner) openEngine(ctx context.Context, cmd *cli.Command) (*catalog.Engine, *sql.DB, error) {
	config := r.loadConfig(cmd)

	db, err := r.openDatabase(config)
	if err != nil {
		return nil, nil, err
	}

	enricher := r.enricher
	if enricher != nil {
		if err := enricher.Authenticate(ctx, nil); err != nil {
			r.logger.Warn("enricher authentication failed, continuing without enrichment",
				"provider", enricher.Name(), "error", err)
			enricher = nil
		}
	}

	engine := catalog.NewEngine(catalog.EngineOpts{
		DB:            db,
		Enricher:      enricher,
		LookupTimeout: time.Duration(config.Enrichment.TimeoutSeconds) * time.Second,
		Logger:        r.logger,
	})

	return engine, db, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
