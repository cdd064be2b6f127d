package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"partial-generator/internal/analyze"
	"partial-generator/internal/config"
	"partial-generator/internal/gen"
	"partial-generator/internal/plan"
)

var (
	genConfigPath string
	genPackages   []string
	genDryRun     bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate projection code for annotated structs",
	Long: `Scan the configured packages for structs carrying //partial: directives
and write one generated file per directive next to the annotated source.

A failing record produces a single diagnostic and no output at all; the run
aborts on the first failing record so nothing half-generated is written.

Examples:
  partialgen gen                         # packages from partialgen.yaml or ./...
  partialgen gen -p ./examples/...       # explicit package pattern
  partialgen gen --dry-run               # print generated code to stdout`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genConfigPath, "config", "c", "", "config file (default: partialgen.yaml if present)")
	genCmd.Flags().StringSliceVarP(&genPackages, "packages", "p", nil, "package patterns to scan (overrides config)")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print generated files to stdout instead of writing them")
}

func runGen(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(genPackages) > 0 {
		cfg.Packages = genPackages
	}

	records, err := analyze.NewLoader(log).Load(cfg.Packages...)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		log.Warn("no annotated structs found", zap.Strings("packages", cfg.Packages))
		return nil
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Suffix:         cfg.Suffix,
		OptionalImport: cfg.OptionalImport,
	}, log)

	var files []gen.GeneratedFile

	for _, rec := range records {
		resolved, diag := plan.Resolve(rec.Record, rec.Directives)
		if diag != nil {
			return diag
		}

		generated, err := generator.Generate(rec, resolved)
		if err != nil {
			return err
		}

		files = append(files, generated...)
	}

	if genDryRun {
		for _, file := range files {
			fmt.Printf("// --- %s ---\n%s\n", file.Filename, file.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	log.Info("generation complete",
		zap.Int("records", len(records)),
		zap.Int("files", len(files)))

	return nil
}

// loadConfig resolves the effective configuration: an explicit --config path
// must exist; otherwise partialgen.yaml is used when present, defaults when not.
func loadConfig() (config.Config, error) {
	if genConfigPath != "" {
		return config.LoadFile(genConfigPath)
	}

	cfg, err := config.LoadFile(config.DefaultFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}

		return config.Config{}, err
	}

	return cfg, nil
}
