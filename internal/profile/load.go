package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/darkforge/internal/schemas"
	"github.com/jonathan/darkforge/internal/types"
)

// Format is a profile document encoding.
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from the file extension.
// Anything that is not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a profile file, checks it against the profile schema and validates it.
func Load(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return Parse(content, FormatFromPath(path))
}

// Parse decodes a profile document. Unknown keys are ignored.
func Parse(content []byte, format Format) (*types.Profile, error) {
	doc, err := toJSON(content, format)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateProfile(doc); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			return nil, invalidFromSchema(ve)
		}
		return nil, &LoadError{Message: "failed to check profile schema", Cause: err}
	}

	var p types.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal profile", Cause: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// toJSON normalizes a document to JSON so both formats share one schema check.
func toJSON(content []byte, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
		if doc == nil {
			doc = map[string]any{}
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, &LoadError{Message: "failed to convert YAML to JSON", Cause: err}
		}
		return out, nil
	case FormatJSON:
		var doc map[string]any
		if err := json.Unmarshal(content, &doc); err != nil {
			return nil, &LoadError{Message: "failed to parse JSON", Cause: err}
		}
		return content, nil
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

func invalidFromSchema(ve *schemas.ValidationError) *types.InvalidProfileError {
	fields := make([]types.ProfileFieldError, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, types.ProfileFieldError{
			Field:   types.Field(strings.SplitN(fe.Field, ".", 2)[0]),
			Message: fe.Message,
		})
	}
	return &types.InvalidProfileError{
		Message: "profile does not match schema",
		Fields:  fields,
		Cause:   ve,
	}
}

// Save writes the profile as indented JSON, creating parent directories.
func Save(path string, p *types.Profile) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, append(content, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}
	return nil
}
