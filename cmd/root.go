package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pdfcombiner/pkg/logging"
	"pdfcombiner/pkg/version"
)

// logger is shared by all commands. Execute installs the caller's logger and
// --debug replaces it with a development logger.
var logger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   version.AppName,
	Short: "Combine PDF and image files into a single PDF",
	Long: `pdfcombiner merges PDF documents and images (JPEG, PNG, BMP, TIFF, GIF)
into one PDF. Pages appear in the order the inputs are given; every image
becomes one US-Letter page, scaled to fit and centered.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if !debug {
			return nil
		}
		l, err := logging.Setup(true, version.AppName, version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = l
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable development logging")
}

// Execute runs the root command with l as the logger. A nil l uses the logger
// installed by logging.Setup.
func Execute(l *zap.Logger) error {
	if l == nil {
		l = logging.Logger
	}
	logger = l
	return RootCmd.Execute()
}
