package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/eduardo/stackgen/internal/domain"
)

// Regex to find the JSON block between ```json and ```
var jsonBlockRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// PresetParser reads preset files into a raw Config. A preset is either a
// bare .json file or a markdown file carrying the JSON in a fenced block,
// the same convention used for shared presets in the registry docs.
type PresetParser struct {
	fs domain.FileSystemPort
}

func NewPresetParser(fs domain.FileSystemPort) *PresetParser {
	return &PresetParser{fs: fs}
}

// Parse reads the preset file and returns the raw configuration it holds.
// No validation happens here beyond "it is JSON of the right shape"; the
// validate package owns everything else. The schema field is inferred from
// the presence of database/orm when the file does not name one.
func (p *PresetParser) Parse(filename string) (*domain.Config, error) {
	content, err := p.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	jsonContent := content
	if strings.HasSuffix(filename, ".md") {
		matches := jsonBlockRe.FindSubmatch(content)
		if len(matches) < 2 {
			return nil, fmt.Errorf("no JSON block found in %s", filename)
		}
		jsonContent = matches[1]
	}

	var config domain.Config
	if err := json.Unmarshal(jsonContent, &config); err != nil {
		return nil, fmt.Errorf("failed to parse preset JSON: %w", err)
	}

	if config.Schema == "" {
		config.Schema = InferSchema(&config)
	}
	switch config.Schema {
	case domain.SchemaClassic, domain.SchemaSlim:
	default:
		return nil, fmt.Errorf("unknown schema %q (expected %q or %q)",
			config.Schema, domain.SchemaClassic, domain.SchemaSlim)
	}

	return &config, nil
}

// InferSchema picks the configuration generation for records that predate the
// explicit schema field: anything carrying a database or ORM choice is
// classic, everything else is slim.
func InferSchema(config *domain.Config) domain.Schema {
	if config.Database != "" || config.ORM != "" {
		return domain.SchemaClassic
	}
	return domain.SchemaSlim
}
