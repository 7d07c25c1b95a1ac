// Package cli implements the librarian command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/libris/internal/catalog"
	"github.com/mesh-intelligence/libris/internal/paths"
	"github.com/mesh-intelligence/libris/pkg/store"
	"github.com/mesh-intelligence/libris/pkg/types"
)

// Version is the librarian release.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

var (
	// errLoadFailed blocks commands that would overwrite stores that failed to load.
	errLoadFailed = errors.New("saved data could not be loaded; refusing to overwrite it")

	// errUsage marks malformed command input.
	errUsage = errors.New("invalid usage")
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app is the state shared by one invocation of the command tree.
type app struct {
	flags  rootFlags
	stdin  io.Reader
	stderr io.Writer

	configDir string
	cfg       types.Config
	logger    *slog.Logger
	catalog   *catalog.Catalog
	closer    io.Closer
	loadErr   error
}

// NewRootCmd creates the top-level "librarian" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "librarian",
		Short:   "Keep a small library's books, members, and loans",
		Long:    "Librarian tracks a library catalog, its members, and who has borrowed what.\nState is saved between runs in the data directory.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newBookCmd(a))
	root.AddCommand(newMemberCmd(a))
	root.AddCommand(newBorrowCmd(a))
	root.AddCommand(newReturnCmd(a))
	root.AddCommand(newTransactionsCmd(a))
	root.AddCommand(newShellCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps lookup and validation failures to a user error and
// everything else to a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, errUsage):
		return exitUserError
	default:
		return exitSysError
	}
}

// withCatalog wraps a RunE so the catalog is open while it runs and the store
// is released on every exit path.
func (a *app) withCatalog(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a.stdin = cmd.InOrStdin()
		a.stderr = cmd.ErrOrStderr()
		if err := a.openCatalog(); err != nil {
			return err
		}
		defer a.release()
		return run(cmd, args)
	}
}

// openCatalog loads config.yaml, opens the configured store, and loads the
// collections. A load failure is reported and remembered rather than
// returned, so read commands still work with whatever loaded.
func (a *app) openCatalog() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir
	v, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := configFromViper(v)

	cfg.DataDir, err = paths.ResolveDataDir(a.flags.dataDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", configDir, err)
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg)

	s, closer, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	a.closer = closer
	a.catalog = catalog.New(s, catalog.WithLogger(a.logger))

	if err := a.catalog.LoadAll(); err != nil {
		a.loadErr = err
		fmt.Fprintln(a.stderr, "Warning:", err)
	}
	a.logger.Debug("catalog opened", "backend", cfg.Backend, "data_dir", cfg.DataDir)
	return nil
}

// save persists the catalog after a mutating command.
func (a *app) save() error {
	if a.loadErr != nil {
		return errLoadFailed
	}
	return a.catalog.SaveAll()
}

// release closes the store, logging a failure since the command's own
// result has already been decided.
func (a *app) release() {
	if err := a.close(); err != nil {
		a.logger.Error("closing store", "backend", a.cfg.Backend, "error", err)
	}
}

func (a *app) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func newLogger(w io.Writer, cfg types.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
}
