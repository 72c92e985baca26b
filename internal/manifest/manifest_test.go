package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mxcodec.dev/mx/internal/class"
)

const sampleYAML = `
fields:
  - name: temperature
    class: float64
    shape: [1, 1]
    data: [21.5]
  - name: label
    class: char8
    text: sensor-1
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndBuildValue(t *testing.T) {
	path := writeTemp(t, sampleYAML)
	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Fields, 2)

	v, err := m.BuildValue()
	require.NoError(t, err)
	require.Equal(t, class.Struct, v.Class)
	assert.Equal(t, []float64{21.5}, v.Fields[0][0].F64)
	assert.Equal(t, "sensor-1", string(v.Fields[1][0].U8))
}

func TestBuildTemplateProducesZeroValues(t *testing.T) {
	path := writeTemp(t, sampleYAML)
	m, err := Load(path)
	require.NoError(t, err)

	tmpl, err := m.BuildTemplate()
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, tmpl.Fields[0][0].F64)
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	path := writeTemp(t, "fields: []\n")
	_, err := Load(path)
	assert.Error(t, err)
}
