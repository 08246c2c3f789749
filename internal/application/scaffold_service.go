package application

import (
	"context"

	"github.com/eduardo/stackgen/internal/domain"
	"github.com/eduardo/stackgen/internal/validate"
)

// ValidationError is returned when a configuration fails the option checks.
// It carries the full result so callers can print every message, not just
// the first.
type ValidationError struct {
	Result domain.ValidationResult
}

func (e *ValidationError) Error() string {
	return e.Result.FirstError
}

// NameError is returned when the project name is unusable. Kept separate from
// ValidationError because the two result shapes are different and callers
// handle them differently.
type NameError struct {
	Result domain.NameValidationResult
}

func (e *NameError) Error() string {
	return e.Result.Error
}

// ScaffoldService wires parsing, validation and generation together.
type ScaffoldService struct {
	fs           domain.FileSystemPort
	template     domain.TemplatePort
	parser       domain.ParserPort
	generateFunc func(config *domain.Config, outputDir string, fs domain.FileSystemPort, template domain.TemplatePort) error
}

func NewScaffoldService(fs domain.FileSystemPort, template domain.TemplatePort, parser domain.ParserPort, generateFunc func(*domain.Config, string, domain.FileSystemPort, domain.TemplatePort) error) *ScaffoldService {
	return &ScaffoldService{
		fs:           fs,
		template:     template,
		parser:       parser,
		generateFunc: generateFunc,
	}
}

// GenerateFromPreset parses a preset file and generates from it.
func (s *ScaffoldService) GenerateFromPreset(ctx context.Context, presetPath, outputDir string) error {
	config, err := s.parser.Parse(presetPath)
	if err != nil {
		return err
	}
	return s.Generate(ctx, config, outputDir)
}

// Generate validates the configuration and renders the project tree. The
// configuration is not mutated after validation passes.
func (s *ScaffoldService) Generate(ctx context.Context, config *domain.Config, outputDir string) error {
	s.enrichConfig(config)

	if result := validate.ProjectName(config.ProjectName); !result.Valid {
		return &NameError{Result: result}
	}
	if result := validate.Options(config); !result.Valid {
		return &ValidationError{Result: result}
	}

	return s.generateFunc(config, outputDir, s.fs, s.template)
}

// enrichConfig fills in what can be derived before validation runs. Only the
// schema is derivable; every other field must come from the user and gets
// reported by the validator when missing.
func (s *ScaffoldService) enrichConfig(config *domain.Config) {
	if config.Schema == "" {
		if config.Database != "" || config.ORM != "" {
			config.Schema = domain.SchemaClassic
		} else {
			config.Schema = domain.SchemaSlim
		}
	}
}
