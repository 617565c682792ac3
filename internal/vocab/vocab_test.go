package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSkillFamilies(t *testing.T) {
	families, err := DefaultSkillFamilies()
	require.NoError(t, err)

	assert.Equal(t, 1, families.Version)
	assert.Contains(t, families.Families, "javascript")
	assert.Contains(t, families.Families["javascript"], "js")
	// frameworks are separate families, not language aliases
	assert.NotContains(t, families.Families["javascript"], "react")
}

func TestDefaultBiasCategories(t *testing.T) {
	categories, err := DefaultBiasCategories()
	require.NoError(t, err)

	require.Contains(t, categories.Categories, "gender")
	require.Contains(t, categories.Categories, "cultural")

	gender := categories.Categories["gender"]
	assert.Equal(t, 3, gender.Weight)
	assert.NotEmpty(t, gender.Terms)
	assert.NotEmpty(t, gender.Suggestions)

	// cultural bias carries the heaviest weight
	assert.Equal(t, 5, categories.Categories["cultural"].Weight)
}

func TestDefaultLanguage(t *testing.T) {
	language, err := DefaultLanguage()
	require.NoError(t, err)

	assert.NotEmpty(t, language.Inclusive)
	assert.NotEmpty(t, language.Outdated)
	assert.NotEmpty(t, language.Positive)
	assert.NotEmpty(t, language.Negative)
	assert.NotEmpty(t, language.DiversityNameIndicators)
}

func TestMustDefaults(t *testing.T) {
	assert.NotPanics(t, func() {
		sf, bc, lang := MustDefaults()
		assert.NotNil(t, sf)
		assert.NotNil(t, bc)
		assert.NotNil(t, lang)
	})
}

func TestLoadSkillFamilies_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "families.json")
	content := `{"version": 2, "families": {"go": ["golang"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	families, err := LoadSkillFamilies(path)
	require.NoError(t, err)
	assert.Equal(t, 2, families.Version)
	assert.Equal(t, []string{"golang"}, families.Families["go"])
}

func TestLoadSkillFamilies_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "families.json")
	// families values must be string arrays
	content := `{"version": 1, "families": {"go": "golang"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadSkillFamilies(path)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.NotEmpty(t, schemaErr.Violations)
}

func TestLoadSkillFamilies_MissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "families.json")
	content := `{"families": {"go": ["golang"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadSkillFamilies(path)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
}

func TestLoadBiasCategories_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	// weight must be an integer
	content := `{"version": 1, "categories": {"gender": {"terms": ["he"], "weight": "heavy", "suggestions": []}}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadBiasCategories(path)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
}

func TestLoadSkillFamilies_FileNotFound(t *testing.T) {
	_, err := LoadSkillFamilies(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
