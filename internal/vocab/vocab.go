// Package vocab provides loaders for the versioned vocabulary data the scoring
// and analysis engines run on: skill synonym families, bias category tables, and
// language pattern word lists. Defaults are embedded at compile time and every
// document is validated against its JSON Schema before use, so vocabularies can
// be extended without code changes.
package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.json
var vocabFiles embed.FS

// SkillFamilies maps a canonical skill to its related/alias terms. Membership
// encodes ecosystem adjacency, not strict equivalence.
type SkillFamilies struct {
	Version  int                 `json:"version"`
	Families map[string][]string `json:"families"`
}

// BiasCategory is one category of biased/exclusionary language.
type BiasCategory struct {
	Terms       []string `json:"terms"`
	Weight      int      `json:"weight"`
	Suggestions []string `json:"suggestions"`
}

// BiasCategories is the full bias category table keyed by category name.
type BiasCategories struct {
	Version    int                     `json:"version"`
	Categories map[string]BiasCategory `json:"categories"`
}

// Language holds the word lists used by the language pattern analysis, the tone
// classifier, the diversity-score bonus, and the diversity-ratio name heuristic.
type Language struct {
	Version                 int      `json:"version"`
	Inclusive               []string `json:"inclusive"`
	Outdated                []string `json:"outdated"`
	Positive                []string `json:"positive"`
	Negative                []string `json:"negative"`
	DiversityTerms          []string `json:"diversity_terms"`
	DiversityNameIndicators []string `json:"diversity_name_indicators"`
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)
)

// SchemaError indicates a vocabulary document failed schema validation.
type SchemaError struct {
	File       string
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("vocabulary file %s failed schema validation: %s", e.File, strings.Join(e.Violations, "; "))
}

// DefaultSkillFamilies returns the embedded skill family vocabulary.
func DefaultSkillFamilies() (*SkillFamilies, error) {
	v, err := load("skill_families.json", func(data []byte) (any, error) {
		var sf SkillFamilies
		if err := json.Unmarshal(data, &sf); err != nil {
			return nil, err
		}
		return &sf, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*SkillFamilies), nil
}

// DefaultBiasCategories returns the embedded bias category table.
func DefaultBiasCategories() (*BiasCategories, error) {
	v, err := load("bias_categories.json", func(data []byte) (any, error) {
		var bc BiasCategories
		if err := json.Unmarshal(data, &bc); err != nil {
			return nil, err
		}
		return &bc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*BiasCategories), nil
}

// DefaultLanguage returns the embedded language pattern vocabulary.
func DefaultLanguage() (*Language, error) {
	v, err := load("language.json", func(data []byte) (any, error) {
		var l Language
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, err
		}
		return &l, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Language), nil
}

// MustDefaults loads all embedded vocabularies, panicking on failure. The
// embedded files ship with the binary; a failure here is a packaging bug.
func MustDefaults() (*SkillFamilies, *BiasCategories, *Language) {
	sf, err := DefaultSkillFamilies()
	if err != nil {
		panic(fmt.Sprintf("failed to load skill families: %v", err))
	}
	bc, err := DefaultBiasCategories()
	if err != nil {
		panic(fmt.Sprintf("failed to load bias categories: %v", err))
	}
	lang, err := DefaultLanguage()
	if err != nil {
		panic(fmt.Sprintf("failed to load language vocabulary: %v", err))
	}
	return sf, bc, lang
}

// LoadSkillFamilies reads and validates a skill family vocabulary from disk,
// for deployments that override the embedded defaults.
func LoadSkillFamilies(path string) (*SkillFamilies, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	if err := validate(path, "skill_families.schema.json", data); err != nil {
		return nil, err
	}
	var sf SkillFamilies
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return &sf, nil
}

// LoadBiasCategories reads and validates a bias category table from disk.
func LoadBiasCategories(path string) (*BiasCategories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	if err := validate(path, "bias_categories.schema.json", data); err != nil {
		return nil, err
	}
	var bc BiasCategories
	if err := json.Unmarshal(data, &bc); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return &bc, nil
}

// load reads, validates, parses, and caches an embedded vocabulary file.
func load(filename string, parse func([]byte) (any, error)) (any, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if v, ok := cache[filename]; ok {
		return v, nil
	}

	data, err := vocabFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded vocabulary %s: %w", filename, err)
	}

	schemaName := strings.TrimSuffix(filename, ".json") + ".schema.json"
	if err := validate(filename, schemaName, data); err != nil {
		return nil, err
	}

	v, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", filename, err)
	}

	cache[filename] = v
	return v, nil
}

// validate checks a vocabulary document against its embedded JSON Schema.
func validate(name, schemaName string, data []byte) error {
	schemaBytes, err := vocabFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation of %s failed: %w", name, err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &SchemaError{File: name, Violations: violations}
	}

	return nil
}
