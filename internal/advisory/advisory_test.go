package advisory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/advisory"
)

func TestDefault_AllMessagesPresent(t *testing.T) {
	catalog := advisory.Default()

	assert.NotEmpty(t, catalog.MissingInput)
	assert.NotEmpty(t, catalog.ExtractionFailed)
	assert.NotEmpty(t, catalog.ExportMissingData)
	assert.NotEmpty(t, catalog.ExportIncomplete)
}

func TestLoad_OverridesOnlyProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisories.yaml")
	content := "extraction_failed: \"Có lỗi rồi, thử lại nhé.\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	catalog, err := advisory.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Có lỗi rồi, thử lại nhé.", catalog.ExtractionFailed)
	assert.Equal(t, advisory.Default().MissingInput, catalog.MissingInput)
	assert.Equal(t, advisory.Default().ExportIncomplete, catalog.ExportIncomplete)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	catalog, err := advisory.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
	assert.Equal(t, advisory.Default(), catalog)
}

func TestLoad_InvalidYAMLFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), 0600))

	catalog, err := advisory.Load(path)

	assert.Error(t, err)
	assert.Equal(t, advisory.Default(), catalog)
}
