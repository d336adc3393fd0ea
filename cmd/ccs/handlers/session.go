// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/ccs/internal/config"
	"github.com/imamik/ccs/internal/platform/cloudsigma"
	"github.com/imamik/ccs/internal/provisioning"
	"github.com/imamik/ccs/internal/resource"
	"github.com/imamik/ccs/internal/ui"
)

// GlobalOptions holds the flags shared by every command.
type GlobalOptions struct {
	Region          string
	Username        string
	ConfigPath      string
	Verbose         bool
	MetricsTextfile string

	Out io.Writer
	Err io.Writer
}

func (o *GlobalOptions) stdout() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *GlobalOptions) stderr() io.Writer {
	if o.Err == nil {
		return os.Stderr
	}
	return o.Err
}

// Backend is the cloud API the handlers operate on.
type Backend interface {
	Services() resource.Services
	provisioning.Uploader
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig resolves the account configuration.
	loadConfig = config.Load

	// newBackend creates the API client.
	newBackend = func(cfg *config.Config, log logr.Logger, reg prometheus.Registerer) Backend {
		return cloudsigma.NewClient(cfg,
			cloudsigma.WithLogger(log),
			cloudsigma.WithRegisterer(reg),
		)
	}

	// stdinIsTerminal reports whether interactive prompts are possible.
	stdinIsTerminal = func() bool { return ui.IsTerminal(os.Stdin) }

	// stdoutIsTerminal reports whether output may be styled.
	stdoutIsTerminal = func() bool { return ui.IsTerminal(os.Stdout) }

	// promptPassword asks for a password interactively.
	promptPassword = ui.PromptPassword
)

// session bundles what a command needs to talk to the API.
type session struct {
	opts        *GlobalOptions
	region      string
	log         logr.Logger
	backend     Backend
	registry    *resource.Registry
	formatter   *resource.Formatter
	provisioner *provisioning.Provisioner
	metrics     *prometheus.Registry
}

func openSession(opts *GlobalOptions) (*session, error) {
	log := newLogger(opts)

	cfg, err := loadConfig(opts.ConfigPath, config.Overrides{Region: opts.Region, Username: opts.Username})
	if err != nil {
		return nil, err
	}
	log.V(1).Info("using account", "region", cfg.Region, "username", cfg.Username)

	metrics := prometheus.NewRegistry()
	backend := newBackend(cfg, log.WithName("api"), metrics)
	registry := resource.NewRegistry(backend.Services())

	return &session{
		opts:      opts,
		region:    cfg.Region,
		log:       log,
		backend:   backend,
		registry:  registry,
		formatter: resource.NewFormatter(registry),
		provisioner: provisioning.NewProvisioner(registry,
			provisioning.WithObserver(provisioning.NewLogObserver(log.WithName("provisioning"))),
			provisioning.WithUploader(backend),
		),
		metrics: metrics,
	}, nil
}

// close adds a hint to API errors and writes the metrics textfile, if
// requested. A write failure is reported only when the command itself
// succeeded.
func (s *session) close(errp *error) {
	*errp = withHint(*errp, s.region)
	if s.opts.MetricsTextfile == "" {
		return
	}
	if err := prometheus.WriteToTextfile(s.opts.MetricsTextfile, s.metrics); err != nil && *errp == nil {
		*errp = fmt.Errorf("failed to write metrics: %w", err)
	}
}

// newLogger logs to stderr when verbose, and discards otherwise.
func newLogger(opts *GlobalOptions) logr.Logger {
	if !opts.Verbose {
		return logr.Discard()
	}
	w := opts.stderr()
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: 1})
}

// printLine writes a formatted resource line, styled on terminals.
func (s *session) printLine(line string) {
	if s.opts.stdout() == io.Writer(os.Stdout) && stdoutIsTerminal() {
		line = ui.StyleLine(line)
	}
	_, _ = fmt.Fprintln(s.opts.stdout(), line)
}

// printRecord writes the formatted line of rec.
func (s *session) printRecord(ctx context.Context, rec resource.Record) error {
	line, err := s.formatter.Format(ctx, rec)
	if err != nil {
		return err
	}
	s.printLine(line)
	return nil
}
