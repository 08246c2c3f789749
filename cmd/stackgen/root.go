package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eduardo/stackgen/internal/application"
	"github.com/eduardo/stackgen/internal/generator"
	"github.com/eduardo/stackgen/internal/infrastructure"
	"github.com/eduardo/stackgen/internal/parser"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	adviceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

var rootCmd = &cobra.Command{
	Use:           "stackgen",
	Short:         "Scaffold a full-stack web project from a few choices",
	Long:          "stackgen validates a small set of stack choices and materializes a complete project tree from them.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// newScaffoldService wires the adapters the same way for every command.
func newScaffoldService() *application.ScaffoldService {
	fs := infrastructure.NewOSFileSystem()
	engine := infrastructure.NewGoTemplateEngine()
	presetParser := parser.NewPresetParser(fs)
	return application.NewScaffoldService(fs, engine, presetParser, generator.Generate)
}
