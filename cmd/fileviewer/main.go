package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/uforgetmenot/fileviewer/internal/config"
	"github.com/uforgetmenot/fileviewer/internal/logger"
	"github.com/uforgetmenot/fileviewer/internal/reporter"
	"github.com/uforgetmenot/fileviewer/internal/scanner"
	"github.com/uforgetmenot/fileviewer/pkg/utils"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	log := logger.NewConsoleLogger(stderr, "info")

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout, log)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		log.LogError("%s", userMessage(err))
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer, log *logger.ConsoleLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "fileviewer [DIR]",
		Short: "Index media and document files for the file viewer",
		Long: `fileviewer scans DIR (default: the current directory) recursively, groups
images, video, audio, markdown, mind maps, diagrams and office documents by
directory, and writes the result to DIR/index.json.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args)
			if err != nil {
				return err
			}

			if err := scanner.ValidateRoot(target); err != nil {
				return err
			}

			log.LogInfo("Scanning %s", target)

			result, err := scanner.New(config.GetDefault()).Collect(target)
			if err != nil {
				return err
			}

			idx := reporter.Build(result)
			outputPath, err := reporter.WriteIndex(target, idx)
			if err != nil {
				return err
			}

			return reporter.New(stdout).Report(idx, outputPath)
		},
	}
}

// resolveTarget returns the directory to scan, defaulting to the working directory
func resolveTarget(args []string) (string, error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Without a home directory "~" stays literal
		return args[0], nil
	}
	return utils.ExpandHome(args[0], home), nil
}

// userMessage turns an error into the line shown to the user
func userMessage(err error) string {
	var targetErr *scanner.TargetError
	if errors.As(err, &targetErr) {
		return targetErr.UserMessage()
	}
	return err.Error()
}
