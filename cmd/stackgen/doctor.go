package main

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eduardo/stackgen/internal/validate"
)

// nodeVersion is a variable so tests can substitute the lookup.
var nodeVersion = func() (string, error) {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("could not run node: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the host has the tooling generated projects need",
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := nodeVersion()
		if err != nil {
			return err
		}

		result := validate.CheckEnvironment(version)
		if result.Valid {
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Node.js %s looks good.", version)))
			return nil
		}

		for _, requirement := range result.Requirements {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(requirement))
		}
		return errors.New("environment check failed")
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
