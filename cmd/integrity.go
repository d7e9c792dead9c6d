package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"fixture-server/core/config"
	"fixture-server/core/logger"
	"fixture-server/core/mimetypes"
	"fixture-server/feature/integrity"

	"github.com/spf13/cobra"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that every fixture has a supported type",
	Long:  `Lists the fixtures of the configured source and prints a JSON report of the ones the server would reject.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		registry, err := mimetypes.New(cfg.Mime)
		if err != nil {
			return err
		}
		src, err := newSource(cfg)
		if err != nil {
			return err
		}

		report, err := integrity.NewService(src, registry, logg).CheckFixtures(cmd.Context())
		if err != nil {
			return fmt.Errorf("fixture check failed: %w", err)
		}

		return writeReport(cmd.OutOrStdout(), report)
	},
}

// writeReport prints report as indented JSON and fails if any fixture is unsupported.
func writeReport(w io.Writer, report *integrity.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if len(report.Unsupported) > 0 {
		return fmt.Errorf("%d unsupported fixtures", len(report.Unsupported))
	}
	return nil
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}
