package extraction

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFSourceExtractMissingFile(t *testing.T) {
	src := &PDFSource{Path: "/nonexistent/report.pdf", Filename: "report.pdf"}
	_, err := src.Extract(context.Background())
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
}

func TestPDFSourceExtractCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	src := &PDFSource{Path: path, Filename: "broken.pdf"}
	_, err := src.Extract(context.Background())
	require.Error(t, err)

	var extractionErr *ExtractionError
	assert.True(t, errors.As(err, &extractionErr))
	assert.Contains(t, err.Error(), "broken.pdf")
}
