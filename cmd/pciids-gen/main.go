// Command pciids-gen compiles the PCI ID Repository text database into the
// static lookup tables of package pciids.
//
// Usage:
//
//	pciids-gen <command> [flags]
//
// Commands:
//
//	generate  Parse pci.ids and write the generated Go table
//	check     Parse and validate pci.ids without writing anything
//	inspect   Print the contents of a CBOR snapshot as YAML
//
// Examples:
//
//	# Regenerate the bundled table (run from the repository root)
//	pciids-gen generate
//
//	# Generate from a custom database and keep a snapshot for diffing
//	pciids-gen generate --input /usr/share/hwdata/pci.ids --snapshot pci.cbor
//
//	# Settings from a config file, flags still override
//	pciids-gen generate --config pciids-gen.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pci-ids/pciids-go/internal/pcidb"
)

// globalOptions holds options common to all commands.
type globalOptions struct {
	ConfigPath string
	Verbose    bool
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "pciids-gen",
		Short: "Compile pci.ids into static Go lookup tables",
		Long: `pciids-gen reads the PCI ID Repository text database and emits Go source
holding perfect-hash indexed tables of vendors, devices, subsystems, classes,
subclasses and programming interfaces.

Generation is all or nothing: any parse, nesting or duplicate-key error aborts
the run before output is written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "",
		"YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"verbose logging")

	cmd.AddCommand(
		newGenerateCommand(opts),
		newCheckCommand(opts),
		newInspectCommand(opts),
	)

	return cmd
}

func newGenerateCommand(globalOpts *globalOptions) *cobra.Command {
	var flags Config

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Parse pci.ids and write the generated Go table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(globalOpts, flags)
			if err != nil {
				return err
			}
			return runGenerate(newLogger(cmd.ErrOrStderr(), globalOpts.Verbose), cfg)
		},
	}

	addInputFlag(cmd, &flags)
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "",
		"generated Go file (default "+defaultOutput+")")
	cmd.Flags().StringVar(&flags.Package, "package", "",
		"package name of the generated file (default "+defaultPackage+")")
	cmd.Flags().StringVar(&flags.Snapshot, "snapshot", "",
		"also write a CBOR snapshot of the parsed database to this path")

	return cmd
}

func newCheckCommand(globalOpts *globalOptions) *cobra.Command {
	var flags Config

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse and validate pci.ids without writing anything",
		Long: `Parse and validate pci.ids without writing anything.

Prints entity counts as YAML on success. Exits non-zero on the same errors
generate would report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(globalOpts, flags)
			if err != nil {
				return err
			}
			return runCheck(newLogger(cmd.ErrOrStderr(), globalOpts.Verbose), cfg, cmd.OutOrStdout())
		},
	}

	addInputFlag(cmd, &flags)

	return cmd
}

func newInspectCommand(globalOpts *globalOptions) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print the contents of a CBOR snapshot as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0], full, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&full, "full", false,
		"print every entity instead of a summary")

	return cmd
}

func addInputFlag(cmd *cobra.Command, flags *Config) {
	cmd.Flags().StringVarP(&flags.Input, "input", "i", "",
		"pci.ids database (default "+defaultInput+")")
}

// resolveConfig layers defaults, the config file and explicit flags.
func resolveConfig(globalOpts *globalOptions, flags Config) (*Config, error) {
	cfg := &Config{}
	if globalOpts.ConfigPath != "" {
		fileCfg, err := LoadConfig(globalOpts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = fileCfg
	}
	cfg.merge(flags)
	cfg.applyDefaults()
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadDatabase parses, assembles and validates the database at path.
func loadDatabase(logger *slog.Logger, path string) (*pcidb.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer f.Close()

	db, err := pcidb.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := CheckKeys(db); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	stats := db.Stats()
	logger.Debug("database loaded",
		slog.String("path", path),
		slog.String("version", db.Version),
		slog.Int("vendors", stats.Vendors),
		slog.Int("devices", stats.Devices),
		slog.Int("subsystems", stats.Subsystems),
		slog.Int("classes", stats.Classes),
		slog.Int("subclasses", stats.Subclasses),
		slog.Int("prog_ifs", stats.ProgIfs),
	)
	return db, nil
}

func runGenerate(logger *slog.Logger, cfg *Config) error {
	db, err := loadDatabase(logger, cfg.Input)
	if err != nil {
		return err
	}

	code, err := Generate(db, Options{Package: cfg.Package})
	if err != nil {
		return fmt.Errorf("generating table: %w", err)
	}

	if cfg.Snapshot != "" {
		data, err := pcidb.EncodeSnapshot(db)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Snapshot, data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		logger.Info("generated", slog.String("path", cfg.Snapshot))
	}

	if err := writeFormatted(cfg.Output, code); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	logger.Info("generated", slog.String("path", cfg.Output), slog.String("version", db.Version))
	return nil
}

// checkReport is the YAML document printed by check.
type checkReport struct {
	Input   string      `yaml:"input"`
	Version string      `yaml:"version,omitempty"`
	Date    string      `yaml:"date,omitempty"`
	Stats   pcidb.Stats `yaml:"stats"`
}

func runCheck(logger *slog.Logger, cfg *Config, out io.Writer) error {
	db, err := loadDatabase(logger, cfg.Input)
	if err != nil {
		return err
	}
	return writeYAML(out, checkReport{
		Input:   cfg.Input,
		Version: db.Version,
		Date:    db.Date,
		Stats:   db.Stats(),
	})
}

// inspectReport is the summary printed by inspect.
type inspectReport struct {
	Version string      `yaml:"version,omitempty"`
	Date    string      `yaml:"date,omitempty"`
	Stats   pcidb.Stats `yaml:"stats"`
}

func runInspect(path string, full bool, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	db, err := pcidb.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if full {
		return writeYAML(out, db)
	}
	return writeYAML(out, inspectReport{Version: db.Version, Date: db.Date, Stats: db.Stats()})
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
