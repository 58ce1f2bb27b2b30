package pipeline

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "OFLC_Wages.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	w := zip.NewWriter(f)
	for name, content := range files {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestExtractInputs_RunsFromArchive(t *testing.T) {
	archive := writeArchive(t, map[string]string{
		"OFLC_Wages_2025-26/Geography.csv":  testGeography,
		"OFLC_Wages_2025-26/ALC_Export.csv": testWages,
	})

	opts, err := ExtractInputs(archive, "Geography.csv", "ALC_Export.csv", t.TempDir(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, opts.ChunkSize)

	result, err := New(opts, &recordingRenderer{}).Run(context.Background(), testTargets())
	require.NoError(t, err)
	assert.Len(t, result.Reports, 2)
}

func TestExtractInputs_MissingEntry(t *testing.T) {
	archive := writeArchive(t, map[string]string{
		"Geography.csv": testGeography,
	})

	_, err := ExtractInputs(archive, "Geography.csv", "ALC_Export.csv", t.TempDir(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract wages from archive")
}
