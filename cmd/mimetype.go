package cmd

import (
	"fmt"

	"fixture-server/core/config"
	"fixture-server/core/mimetypes"

	"github.com/spf13/cobra"
)

// mimetypeCmd represents the mimetype command
var mimetypeCmd = &cobra.Command{
	Use:   "mimetype <file>...",
	Short: "Print the MIME type the server would send for each file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		registry, err := mimetypes.New(cfg.Mime)
		if err != nil {
			return err
		}
		return printTypes(cmd, registry, args)
	},
}

func printTypes(cmd *cobra.Command, registry *mimetypes.Registry, files []string) error {
	unsupported := 0
	for _, file := range files {
		typ := registry.TypeByFilename(file)
		if typ == "" {
			typ = "unsupported"
			unsupported++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", file, typ)
	}
	if unsupported > 0 {
		return fmt.Errorf("%d of %d files have an unsupported type", unsupported, len(files))
	}
	return nil
}

func init() {
	RootCmd.AddCommand(mimetypeCmd)
}
