package domain

import "context"

// FileSystemPort defines the interface for file and directory operations
type FileSystemPort interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	RemoveAll(path string) error
}

// TemplatePort defines the interface for rendering templates
type TemplatePort interface {
	Render(name, tmpl string, data interface{}) ([]byte, error)
}

// ParserPort defines the interface for reading a preset file into a Config
type ParserPort interface {
	Parse(filename string) (*Config, error)
}

// ScaffoldServicePort defines the interface for the core generation logic
type ScaffoldServicePort interface {
	Generate(ctx context.Context, config *Config, outputDir string) error
}

// PresetStorePort defines the interface for the shared preset registry
type PresetStorePort interface {
	Push(ctx context.Context, name string, config *Config) error
	Pull(ctx context.Context, name string) (*Config, error)
	List(ctx context.Context) ([]PresetInfo, error)
	Close() error
}

// PresetInfo describes a stored preset without its full configuration
type PresetInfo struct {
	Name      string
	Schema    Schema
	UpdatedAt int64 // unix seconds
}
