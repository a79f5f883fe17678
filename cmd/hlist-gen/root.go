package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hlist-gen",
	Short: "Derive heterogeneous-list conversions for struct types",
	Long: `hlist-gen generates FromHList, ToHList and IntoHList implementations
for struct types, mapping each struct positionally onto the heterogeneous
list whose element sequence equals its field sequence in declaration order.

Generated files are written into the struct's own package, so unexported
fields take part in the conversion as well.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(genCmd, inspectCmd)
}
