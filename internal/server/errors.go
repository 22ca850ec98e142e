package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/brd-generator/internal/engine"
	"github.com/jonathan/brd-generator/internal/extraction"
	"github.com/jonathan/brd-generator/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
// Input problems are the client's fault, missing records are 404, and
// upstream service failures surface as bad-gateway.
func HTTPStatus(err error) int {
	var (
		invalidInput  *engine.InvalidInputError
		unsupported   *extraction.UnsupportedFormatError
		extractionErr *extraction.ExtractionError
		notFound      *store.NotFoundError
		remoteErr     *extraction.RemoteAccessError
		analysisErr   *engine.AnalysisServiceError
		generationErr *engine.GenerationServiceError
		parseErr      *engine.ParseError
	)

	switch {
	case errors.As(err, &invalidInput),
		errors.As(err, &unsupported),
		errors.As(err, &extractionErr):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &remoteErr),
		errors.As(err, &analysisErr),
		errors.As(err, &generationErr),
		errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
