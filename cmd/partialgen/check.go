package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"partial-generator/internal/analyze"
	"partial-generator/internal/plan"
)

var checkPackages []string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate //partial: directives without generating code",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVarP(&checkPackages, "packages", "p", nil, "package patterns to scan (overrides config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(checkPackages) > 0 {
		cfg.Packages = checkPackages
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

		fmt.Printf("%s: ok (%d projection(s))\n", rec.Record.Name, len(resolved))
	}

	return nil
}
