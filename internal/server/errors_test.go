package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/brd-generator/internal/engine"
	"github.com/jonathan/brd-generator/internal/extraction"
	"github.com/jonathan/brd-generator/internal/store"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "empty input",
			err:  &engine.InvalidInputError{Message: "no content provided"},
			want: http.StatusBadRequest,
		},
		{
			name: "unsupported format",
			err:  &extraction.UnsupportedFormatError{Format: "xls", Message: "export as .csv"},
			want: http.StatusBadRequest,
		},
		{
			name: "unreadable local file",
			err:  &extraction.ExtractionError{Message: "corrupt PDF"},
			want: http.StatusBadRequest,
		},
		{
			name: "missing record",
			err:  &store.NotFoundError{ID: "abc"},
			want: http.StatusNotFound,
		},
		{
			name: "remote fetch failure",
			err:  &extraction.RemoteAccessError{Message: "document fetch failed"},
			want: http.StatusBadGateway,
		},
		{
			name: "analysis service failure",
			err:  &engine.AnalysisServiceError{Message: "analysis request failed"},
			want: http.StatusBadGateway,
		},
		{
			name: "generation service failure",
			err:  &engine.GenerationServiceError{Message: "generation request failed"},
			want: http.StatusBadGateway,
		},
		{
			name: "unparseable model output",
			err:  &engine.ParseError{Message: "response is not a JSON object"},
			want: http.StatusBadGateway,
		},
		{
			name: "wrapped pipeline error keeps its status",
			err:  fmt.Errorf("failed to persist BRD: %w", &store.NotFoundError{ID: "abc"}),
			want: http.StatusNotFound,
		},
		{
			name: "unknown error",
			err:  errors.New("disk full"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
