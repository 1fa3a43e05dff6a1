// Command translator-gen generates typed literal accessor functions from a
// JSON specification of translatable literals.
//
// Usage:
//
//	translator-gen generate <spec-file> [--package name]
//
// Generated source is written to stdout; diagnostics go to stderr.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ccapndave/go-translator/pkg/generator"
)

func main() {
	log := newLogger()

	root := &cobra.Command{
		Use:           "translator-gen",
		Short:         "Code generator for runtime-loadable translations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(log))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newLogger writes human-readable output when stderr is a terminal and JSON
// otherwise, keeping stdout free for the generated source.
func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func newGenerateCmd(log zerolog.Logger) *cobra.Command {
	var pkg string

	cmd := &cobra.Command{
		Use:   "generate <spec-file>",
		Short: "Generate typed literal accessors from a JSON specification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specPath := args[0]

			data, err := os.ReadFile(specPath)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("specification file %q does not exist", specPath)
				}
				return fmt.Errorf("reading specification: %w", err)
			}

			spec, err := generator.ParseSpec(data)
			if err != nil {
				return err
			}

			src, err := generator.Generate(spec, pkg)
			if errors.Is(err, generator.ErrFormat) {
				// Formatting failure is non-fatal: the raw source and the
				// failure detail both go to stderr for diagnosis, and
				// nothing is written to stdout.
				log.Error().Err(err).Msg("formatting failed, raw output follows")
				fmt.Fprintln(cmd.ErrOrStderr(), string(src))
				return nil
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(src)
			return err
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", generator.DefaultPackage, "package name for the generated source")

	return cmd
}
