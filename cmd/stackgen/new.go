package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eduardo/stackgen/internal/application"
	"github.com/eduardo/stackgen/internal/collector"
	"github.com/eduardo/stackgen/internal/domain"
	"github.com/eduardo/stackgen/internal/infrastructure"
	"github.com/eduardo/stackgen/internal/parser"
	"github.com/eduardo/stackgen/internal/validate"
)

var newFlags struct {
	preset string
	output string
	schema string
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new project",
	Long:  "Collect the stack configuration (interactively or from a preset file), validate it, and generate the project tree.",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := newFlags.output
		if outputDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine output directory: %w", err)
			}
			outputDir = wd
		}

		var config *domain.Config
		if newFlags.preset != "" {
			parsed, err := parser.NewPresetParser(infrastructure.NewOSFileSystem()).Parse(newFlags.preset)
			if err != nil {
				return err
			}
			config = parsed
		} else {
			schema, err := schemaFromFlag(newFlags.schema)
			if err != nil {
				return err
			}
			collected, err := collector.New(schema).Run()
			if err != nil {
				return err
			}
			config = collected
		}

		if err := newScaffoldService().Generate(cmd.Context(), config, outputDir); err != nil {
			return reportGenerateError(cmd, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Created %s.", config.ProjectName)))
		for _, rec := range validate.Recommendations(config) {
			fmt.Fprintln(cmd.OutOrStdout(), adviceStyle.Render(rec))
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newFlags.preset, "preset", "", "preset file to generate from instead of prompting")
	newCmd.Flags().StringVarP(&newFlags.output, "output", "o", "", "directory to generate into (default: current directory)")
	newCmd.Flags().StringVar(&newFlags.schema, "schema", string(domain.SchemaSlim), "configuration schema for interactive mode: classic or slim")
	rootCmd.AddCommand(newCmd)
}

func schemaFromFlag(value string) (domain.Schema, error) {
	switch domain.Schema(value) {
	case domain.SchemaClassic:
		return domain.SchemaClassic, nil
	case domain.SchemaSlim:
		return domain.SchemaSlim, nil
	default:
		return "", fmt.Errorf("unknown schema %q (expected %q or %q)", value, domain.SchemaClassic, domain.SchemaSlim)
	}
}

// reportGenerateError prints validation failures one message per line and
// turns them into a short error for the exit path. The two result shapes are
// deliberately handled separately.
func reportGenerateError(cmd *cobra.Command, err error) error {
	var nameErr *application.NameError
	if errors.As(err, &nameErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(nameErr.Result.Error))
		return errors.New("project name is not valid")
	}

	var valErr *application.ValidationError
	if errors.As(err, &valErr) {
		for _, msg := range valErr.Result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(msg))
		}
		return errors.New("configuration is not valid")
	}

	return err
}
