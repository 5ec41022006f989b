package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifest_Validate(t *testing.T) {
	m := &Manifest{Name: "x", Version: "1.0.0", fields: map[string]any{}}
	assert.NoError(t, m.Validate())

	m = &Manifest{Version: "1.0.0", fields: map[string]any{}}
	assert.ErrorIs(t, m.Validate(), ErrMissingName)

	m = &Manifest{Name: "x", fields: map[string]any{}}
	assert.ErrorIs(t, m.Validate(), ErrMissingVersion)
}

func TestManifest_SetVersion(t *testing.T) {
	loader := NewLoader()
	m, err := loader.LoadFromBytes([]byte(`{"name": "x", "version": "1.0.0"}`), ".json")
	require.NoError(t, err)

	m.SetVersion("2.0.0")

	assert.Equal(t, "2.0.0", m.Version)
	assert.Equal(t, "2.0.0", m.Fields()["version"])
}

func TestManifest_FieldsIsACopy(t *testing.T) {
	loader := NewLoader()
	m, err := loader.LoadFromBytes([]byte(`{"name": "x", "version": "1.0.0"}`), ".json")
	require.NoError(t, err)

	fields := m.Fields()
	fields["version"] = "9.9.9"

	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, "1.0.0", m.Fields()["version"])
}
