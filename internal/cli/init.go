package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/libris/internal/paths"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level"`
}

func newInitCmd(a *app) *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and empty data stores",
		Long: `Init writes config.yaml if it does not exist yet, then creates the data
directory and an empty store for every collection that has none. Existing
data is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			if err := ensureConfigDir(configDir); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := writeConfigIfMissing(configPath(configDir), backend); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			return a.withCatalog(func(cmd *cobra.Command, args []string) error {
				if err := a.save(); err != nil {
					return fmt.Errorf("initialize storage: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Library initialized (%s backend, data in %s)\n", a.cfg.Backend, a.cfg.DataDir)
				return nil
			})(cmd, args)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", defaultBackend, "storage backend for a new config.yaml (file or sqlite)")
	return cmd
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path, backend string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Backend:  backend,
		LogLevel: defaultLogLevel,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
