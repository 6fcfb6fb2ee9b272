// Root command for the barcodec CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glyphworks/barcodec/internal/paths"
	"github.com/glyphworks/barcodec/internal/sqlite"
	"github.com/glyphworks/barcodec/pkg/barcode"
	"github.com/glyphworks/barcodec/pkg/types"
)

// errUsage marks bad command-line input that is not a codec validation
// error (malformed --field arguments and the like).
var errUsage = errors.New("invalid usage")

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// registry is the template registry, built once before any command runs.
var registry *barcode.Registry

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// store is the attached history store, opened lazily by openStore.
var store types.Store

var rootCmd = &cobra.Command{
	Use:   "barcodec",
	Short: "Barcodec generates and classifies barcode payloads",
	Long: `Barcodec renders structured templates (Wi-Fi credentials, contact
cards, calendar events, URLs, ...) into barcode payload text, classifies
raw text decoded from scanned barcodes, and keeps a local history of
both.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no registry or config.
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		registry, err = barcode.NewRegistry()
		if err != nil {
			// A registry template without a formatter rule is a build
			// defect; nothing downstream can run.
			return fmt.Errorf("template registry self-check: %w", err)
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(historyCmd)
}

// openStore attaches the SQLite history store on first use.
func openStore() (types.Store, error) {
	if store != nil {
		return store, nil
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	store = backend
	return store, nil
}

// closeStore detaches the history store if a command opened it.
func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Detach()
	store = nil
	return err
}
