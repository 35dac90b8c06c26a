// File: cmd/combine.go
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pdfcombiner/pkg/assemble"
	"pdfcombiner/pkg/collect"
	"pdfcombiner/pkg/config"
	"pdfcombiner/pkg/ignore"
	"pdfcombiner/pkg/source"
)

var combineCmd = &cobra.Command{
	Use:   "combine [flags] <file|dir>...",
	Short: "Combine files into a single PDF",
	Long: `Combine PDF and image files into one PDF, in the order given.

Directories are expanded to the PDF and image files they contain, in lexical
order, skipping paths matched by a .pdfcignore file in the directory, the
global ignore file (--ignore-file or $PDFC_IGNORE_FILE) and --ignore patterns.
Inputs that cannot be read are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCombine(cmd, args); err != nil {
			renderError(cmd.ErrOrStderr(), err)
			return err
		}
		return nil
	},
}

func init() {
	flags := combineCmd.Flags()
	flags.StringP("output", "o", config.DefaultFilename, "Output file name")
	flags.StringP("dir", "d", "", "Output folder (default: $PDFC_OUTPUT_DIR or the working directory)")
	flags.BoolP("force", "f", false, "Overwrite an existing output file without asking")
	flags.StringSlice("ignore", nil, "Additional ignore patterns")
	flags.String("ignore-file", "", "Global ignore file (default: $PDFC_IGNORE_FILE)")
	flags.BoolP("verbose", "v", false, "Log every skipped path")
	RootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, inputs []string) error {
	args, err := combineArguments(cmd, inputs)
	if err != nil {
		return err
	}
	logger.Debug("Resolved arguments",
		zap.Strings("inputs", args.Inputs),
		zap.String("filename", args.Filename),
		zap.String("outputDir", args.OutputDir),
		zap.Bool("force", args.Force))

	matcher := ignore.New(logger)
	if args.IgnoreFile != "" {
		if err := matcher.AddFile(args.IgnoreFile); err != nil {
			return fmt.Errorf("failed to load ignore file: %w", err)
		}
	}
	matcher.AddLines("flag", args.IgnorePatterns...)
	logger.Debug("Loaded ignore patterns", zap.Int("patterns", matcher.Len()))

	paths, err := collect.Paths(args.Inputs, collect.Options{Matcher: matcher, Logger: logger, Verbose: args.Verbose})
	if err != nil {
		return err
	}
	items, err := source.NewItems(paths)
	if err != nil {
		return err
	}

	destination, err := args.Destination()
	if err != nil {
		return err
	}

	overwrite, proceed, err := confirmOverwrite(cmd, destination, args.Force)
	if err != nil {
		return err
	}
	if !proceed {
		fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Cancelled; existing file left unchanged."))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("Combining %d file(s)...", len(items))))
	report, err := assemble.New(logger, assemble.WithOverwrite(overwrite)).Combine(items, destination)
	if err != nil {
		return err
	}
	renderReport(cmd.OutOrStdout(), report)
	return nil
}

// combineArguments merges environment defaults with the flags the user set.
func combineArguments(cmd *cobra.Command, inputs []string) (config.Arguments, error) {
	args := config.FromEnv()
	args.Inputs = inputs
	flags := cmd.Flags()

	var err error
	if args.Filename, err = flags.GetString("output"); err != nil {
		return args, fmt.Errorf("error reading flags: %w", err)
	}
	if flags.Changed("dir") {
		if args.OutputDir, err = flags.GetString("dir"); err != nil {
			return args, fmt.Errorf("error reading flags: %w", err)
		}
	}
	if flags.Changed("ignore-file") {
		if args.IgnoreFile, err = flags.GetString("ignore-file"); err != nil {
			return args, fmt.Errorf("error reading flags: %w", err)
		}
	}
	if args.Force, err = flags.GetBool("force"); err != nil {
		return args, fmt.Errorf("error reading flags: %w", err)
	}
	if args.Verbose, err = flags.GetBool("verbose"); err != nil {
		return args, fmt.Errorf("error reading flags: %w", err)
	}
	if args.IgnorePatterns, err = flags.GetStringSlice("ignore"); err != nil {
		return args, fmt.Errorf("error reading flags: %w", err)
	}
	return args, nil
}

// confirmOverwrite decides whether combining may replace destination. It
// returns proceed=false when the user declines.
func confirmOverwrite(cmd *cobra.Command, destination string, force bool) (overwrite, proceed bool, err error) {
	if _, err := os.Stat(destination); errors.Is(err, fs.ErrNotExist) {
		return false, true, nil
	} else if err != nil {
		return false, false, fmt.Errorf("failed to check destination: %w", err)
	}
	if force {
		logger.Info("Overwriting existing file", zap.String("destination", destination))
		return true, true, nil
	}
	if !interactive() {
		return false, false, fmt.Errorf("%s already exists; use --force to overwrite", destination)
	}

	ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
		fmt.Sprintf("The file '%s' already exists. Overwrite? (y/n): ", destination))
	if err != nil {
		return false, false, fmt.Errorf("failed to read user input: %w", err)
	}
	return ok, ok, nil
}
