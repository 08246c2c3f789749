package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduardo/stackgen/internal/infrastructure"
	"github.com/eduardo/stackgen/internal/parser"
	"github.com/eduardo/stackgen/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <preset-file>",
	Short: "Check a preset file without generating anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := parser.NewPresetParser(infrastructure.NewOSFileSystem()).Parse(args[0])
		if err != nil {
			return err
		}

		nameResult := validate.ProjectName(config.ProjectName)
		optionsResult := validate.Options(config)

		if nameResult.Valid && optionsResult.Valid {
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Configuration is valid."))
			for _, rec := range validate.Recommendations(config) {
				fmt.Fprintln(cmd.OutOrStdout(), adviceStyle.Render(rec))
			}
			return nil
		}

		if !nameResult.Valid {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(nameResult.Error))
		}
		for _, msg := range optionsResult.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(msg))
		}
		return fmt.Errorf("preset %s is not valid", args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
