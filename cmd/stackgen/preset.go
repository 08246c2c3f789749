package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eduardo/stackgen/internal/domain"
	"github.com/eduardo/stackgen/internal/infrastructure"
	"github.com/eduardo/stackgen/internal/parser"
	"github.com/eduardo/stackgen/internal/registry"
	"github.com/eduardo/stackgen/internal/validate"
)

var presetFlags struct {
	project     string
	credentials string
	collection  string
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Share stack presets through the team registry",
}

var presetPushCmd = &cobra.Command{
	Use:   "push <name> <preset-file>",
	Short: "Validate a preset file and store it in the registry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, file := args[0], args[1]

		config, err := parser.NewPresetParser(infrastructure.NewOSFileSystem()).Parse(file)
		if err != nil {
			return err
		}
		if result := validate.ProjectName(config.ProjectName); !result.Valid {
			return fmt.Errorf("refusing to push invalid preset: %s", result.Error)
		}
		if result := validate.Options(config); !result.Valid {
			return fmt.Errorf("refusing to push invalid preset: %s", result.FirstError)
		}

		store, err := openPresetStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Push(cmd.Context(), name, config); err != nil {
			return err
		}
		log.Info("preset stored", "name", name, "schema", config.Schema)
		return nil
	},
}

var presetPullCmd = &cobra.Command{
	Use:   "pull <name> [output-file]",
	Short: "Fetch a preset from the registry into a local file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		outputFile := name + ".json"
		if len(args) == 2 {
			outputFile = args[1]
		}

		store, err := openPresetStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		config, err := store.Pull(cmd.Context(), name)
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode preset: %w", err)
		}
		if err := os.WriteFile(outputFile, append(encoded, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		log.Info("preset written", "name", name, "file", outputFile)
		return nil
	},
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the presets stored in the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openPresetStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		presets, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(presets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No presets stored.")
			return nil
		}
		for _, preset := range presets {
			updated := time.Unix(preset.UpdatedAt, 0).UTC().Format(time.DateOnly)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", preset.Name, preset.Schema, updated)
		}
		return nil
	},
}

func openPresetStore(ctx context.Context) (domain.PresetStorePort, error) {
	return registry.New(ctx, registry.Options{
		ProjectID:       presetFlags.project,
		CredentialsFile: presetFlags.credentials,
		Collection:      presetFlags.collection,
	})
}

func init() {
	presetCmd.PersistentFlags().StringVar(&presetFlags.project, "project", "", "Firestore project ID (default: STACKGEN_FIRESTORE_PROJECT)")
	presetCmd.PersistentFlags().StringVar(&presetFlags.credentials, "credentials", "", "service account key file (default: application default credentials)")
	presetCmd.PersistentFlags().StringVar(&presetFlags.collection, "collection", "", "Firestore collection holding the presets")
	presetCmd.AddCommand(presetPushCmd, presetPullCmd, presetListCmd)
	rootCmd.AddCommand(presetCmd)
}
