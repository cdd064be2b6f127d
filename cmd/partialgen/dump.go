package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"partial-generator/internal/analyze"
	"partial-generator/internal/plan"
)

var dumpPackages []string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the resolved projection plan for debugging",
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().StringSliceVarP(&dumpPackages, "packages", "p", nil, "package patterns to scan (overrides config)")
}

func runDump(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(dumpPackages) > 0 {
		cfg.Packages = dumpPackages
	}

	records, err := analyze.NewLoader(log).Load(cfg.Packages...)
	if err != nil {
		return err
	}

	for _, rec := range records {
		resolved, diag := plan.Resolve(rec.Record, rec.Directives)
		if diag != nil {
			return diag
		}

		spew.Dump(resolved)
	}

	return nil
}
