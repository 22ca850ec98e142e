package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/brd-generator/internal/llm"
)

// fakeClient records the last request and returns a canned response.
type fakeClient struct {
	response string
	err      error
	lastReq  llm.Request
	calls    int
}

func (f *fakeClient) GenerateJSON(_ context.Context, req llm.Request) (string, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func TestAnalyzeRejectsEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Empty string", text: ""},
		{name: "Whitespace only", text: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			analyzer := NewAnalyzer(client, 64000, 2048)

			_, err := analyzer.Analyze(context.Background(), tt.text)
			require.Error(t, err)

			var invalidErr *InvalidInputError
			assert.True(t, errors.As(err, &invalidErr))
			assert.Zero(t, client.calls, "no service call should be made for empty input")
		})
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	client := &fakeClient{response: `{
		"business_objectives": "Automate invoicing",
		"pain_points": ["Manual entry", "Slow approvals"]
	}`}
	analyzer := NewAnalyzer(client, 64000, 2048)

	record, err := analyzer.Analyze(context.Background(), "Q1 review... automate invoicing...")
	require.NoError(t, err)

	assert.Equal(t, "Automate invoicing", record["business_objectives"])
	assert.NotEmpty(t, record["pain_points"])
	assert.Equal(t, llm.TierStandard, client.lastReq.Tier)
	assert.Equal(t, int32(2048), client.lastReq.MaxOutputTokens)
	assert.Contains(t, client.lastReq.System, "business_objectives")
	assert.Contains(t, client.lastReq.User, "automate invoicing")
}

func TestAnalyzeTruncatesLongInput(t *testing.T) {
	budget := 100
	client := &fakeClient{response: `{"business_objectives": "x"}`}
	analyzer := NewAnalyzer(client, budget, 2048)

	text := strings.Repeat("a", 250)
	_, err := analyzer.Analyze(context.Background(), text)
	require.NoError(t, err)

	want := strings.Repeat("a", budget) + TruncationMarker
	assert.Equal(t, want, client.lastReq.User,
		"submitted text must be exactly the first %d characters plus the marker", budget)
}

func TestAnalyzeShortInputNotTruncated(t *testing.T) {
	client := &fakeClient{response: `{"business_objectives": "x"}`}
	analyzer := NewAnalyzer(client, 64000, 2048)

	_, err := analyzer.Analyze(context.Background(), "short document")
	require.NoError(t, err)
	assert.Equal(t, "short document", client.lastReq.User)
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "Not JSON at all", response: "I could not analyze this document."},
		{name: "JSON array", response: `["business_objectives"]`},
		{name: "JSON scalar", response: `"done"`},
		{name: "Empty object", response: `{}`},
		{name: "Truncated JSON", response: `{"business_objectives": "Auto`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response}
			analyzer := NewAnalyzer(client, 64000, 2048)

			record, err := analyzer.Analyze(context.Background(), "some document text")
			require.Error(t, err)
			assert.Nil(t, record, "a malformed completion must never yield a partial record")

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestAnalyzeServiceFailure(t *testing.T) {
	cause := errors.New("deadline exceeded")
	client := &fakeClient{err: cause}
	analyzer := NewAnalyzer(client, 64000, 2048)

	_, err := analyzer.Analyze(context.Background(), "some document text")
	require.Error(t, err)

	var serviceErr *AnalysisServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.ErrorIs(t, err, cause, "the underlying cause must be preserved")
}
