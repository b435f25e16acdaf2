package garment

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBareRecord(t *testing.T) {
	m, err := Parse([]byte(`{"chest": 50, "shoulder": 40, "sleeve": 60, "length": 70, "neck": 38}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, sample, m)
}

func TestParseJSONSubmittedStrings(t *testing.T) {
	body := `{"measurements": {"chest": "50", "shoulder": "40", "sleeve": "60.0", "length": " 70 ", "neck": "38"}}`
	m, err := Parse([]byte(body), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, sample, m)
}

func TestParseJSONLatestEntryWins(t *testing.T) {
	body := `[
		{"id": 1, "measurements": {"chest": 10, "shoulder": 10, "sleeve": 10, "length": 10, "neck": 10}, "timestamp": "2024-01-01T00:00:00Z"},
		{"id": 2, "measurements": {"chest": 50, "shoulder": 40, "sleeve": 60, "length": 70, "neck": 38}, "timestamp": "2024-01-02T00:00:00Z"}
	]`
	m, err := Parse([]byte(body), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, sample, m)
}

func TestParseJSONEmptyList(t *testing.T) {
	_, err := Parse([]byte(`[]`), FormatJSON)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestParseJSONInvalidValue(t *testing.T) {
	_, err := Parse([]byte(`{"chest": "wide"}`), FormatJSON)
	assert.Error(t, err)
}

func TestParseJSONEmptyStringIsMissing(t *testing.T) {
	m, err := Parse([]byte(`{"chest": "", "shoulder": 40, "sleeve": 60, "length": 70, "neck": 38}`), FormatJSON)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Validate(), ErrIncomplete)
}

func TestParseYAML(t *testing.T) {
	m, err := Parse([]byte("chest: 50\nshoulder: 40\nsleeve: 60\nlength: 70\nneck: 38\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, sample, m)

	nested, err := Parse([]byte("measurements:\n  chest: 50\n  shoulder: 40\n  sleeve: 60\n  length: 70\n  neck: 38\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, sample, nested)
}

func TestParseTOML(t *testing.T) {
	m, err := Parse([]byte("chest = 50\nshoulder = 40\nsleeve = 60\nlength = 70\nneck = 38\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, sample, m)

	nested, err := Parse([]byte("[measurements]\nchest = 50.0\nshoulder = 40.0\nsleeve = 60.0\nlength = 70.0\nneck = 38.0\n"), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, sample, nested)
}

func TestFormatFromPath(t *testing.T) {
	for path, expected := range map[string]Format{
		"m.json": FormatJSON,
		"m.YAML": FormatYAML,
		"m.yml":  FormatYAML,
		"m.toml": FormatTOML,
	} {
		format, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, expected, format, path)
	}

	_, err := FormatFromPath("m.stl")
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("chest: 50\nshoulder: 40\nsleeve: 60\nlength: 70\nneck: 38\n"), 0o644))
	m, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, sample, m)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"chest": -1, "shoulder": 40, "sleeve": 60, "length": 70, "neck": 38}`), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sample.Validate())

	missing := sample
	missing.Neck = 0
	assert.ErrorIs(t, missing.Validate(), ErrIncomplete)

	negative := sample
	negative.Sleeve = -5
	assert.ErrorIs(t, negative.Validate(), ErrNotPositive)

	notANumber := sample
	notANumber.Chest = math.NaN()
	assert.ErrorIs(t, notANumber.Validate(), ErrNotPositive)
}

func TestMeasurementsEqualAndFields(t *testing.T) {
	assert.True(t, sample.Equal(Measurements{Chest: 50, Shoulder: 40, Sleeve: 60, Length: 70, Neck: 38}))
	assert.False(t, sample.Equal(sample.Scaled(2)))

	fields := sample.Fields()
	require.Len(t, fields, 5)
	assert.Equal(t, "Chest Width", fields[0].Label)
	assert.Equal(t, "Neck Size", fields[4].Label)
	assert.Equal(t, 38.0, fields[4].Value)
}

func TestFromForm(t *testing.T) {
	m, err := FromForm(map[string]string{
		"chest": "50", "shoulder": " 40 ", "sleeve": "60", "length": "70", "neck": "38",
	})
	require.NoError(t, err)
	assert.Equal(t, sample, m)

	partial, err := FromForm(map[string]string{"chest": "50", "neck": ""})
	require.NoError(t, err)
	assert.ErrorIs(t, partial.Validate(), ErrIncomplete)

	_, err = FromForm(map[string]string{"chest": "wide"})
	assert.Error(t, err)
}
