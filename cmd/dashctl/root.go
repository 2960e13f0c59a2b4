package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/gateway"
	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
)

// cli holds what every subcommand shares once the root has loaded config.
type cli struct {
	configPath string

	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "dashctl",
		Short:         "Terminal dashboard for the store operations gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return c.init()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dashctl/config.yaml)")

	root.AddCommand(
		newLoginCmd(c),
		newUseStoreCmd(c),
		newLogoutCmd(c),
		newStatusCmd(c),
		newWatchCmd(c),
	)
	return root
}

func (c *cli) init() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	c.cfg = cfg

	// The TUI owns the terminal, so logs only go to a file.
	if cfg.Log.File == "" {
		c.logger = logging.Discard()
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	c.logFile = f
	c.logger = logging.New(cfg.Log.Level, "json", f)
	return nil
}

func (c *cli) close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

func (c *cli) gateway() *gateway.Client {
	return gateway.New(c.cfg.Gateway.URL, c.cfg.Gateway.Timeout, c.logger)
}

// openSession opens the session file for writing.
func (c *cli) openSession() (*session.Store, error) {
	return session.Open(c.cfg.Session.Path)
}

// readSession opens the session file for reading. Without a session file
// the returned source has no credentials, so adapters fail fast with
// NOT_AUTHENTICATED.
func (c *cli) readSession() (session.Source, func(), error) {
	s, err := session.OpenReadOnly(c.cfg.Session.Path)
	if errors.Is(err, os.ErrNotExist) {
		return session.Static{}, func() {}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return s, func() { _ = s.Close() }, nil
}
