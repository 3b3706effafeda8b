package pipeline_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/pipeline"
)

// readMockReports loads the decoded-report fixtures regenerated by
// cmd/genmock.
func readMockReports(t *testing.T) []json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "data", "mock", "decoded_reports.json"))
	require.NoError(t, err)

	var reports []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &reports))
	require.NotEmpty(t, reports)
	return reports
}

func TestBriefingTransformer_WithMockData(t *testing.T) {
	transformer := pipeline.NewTransformer(slog.Default())

	for _, payload := range readMockReports(t) {
		var meta struct {
			Station string `json:"station"`
		}
		require.NoError(t, json.Unmarshal(payload, &meta))

		t.Run(meta.Station, func(t *testing.T) {
			briefing, err := transformer.Transform(context.Background(), domain.RawEvent{Value: payload})
			require.NoError(t, err)

			assert.Equal(t, meta.Station, briefing.Station)
			assert.NotEmpty(t, briefing.Speech)
			assert.NotContains(t, briefing.Speech, ",", "spoken briefings must never contain commas")
			assert.False(t, strings.Contains(briefing.Speech, ". ."), "no empty segment artifacts")
			assert.False(t, briefing.GeneratedAt.IsZero())
		})
	}
}

func TestBriefingTransformer_MockDataSpotChecks(t *testing.T) {
	transformer := pipeline.NewTransformer(slog.Default())
	byStation := map[string]domain.Briefing{}
	for _, payload := range readMockReports(t) {
		briefing, err := transformer.Transform(context.Background(), domain.RawEvent{Value: payload})
		require.NoError(t, err)
		byStation[briefing.Station] = briefing
	}

	assert.Contains(t, byStation["KJFK"].Speech, "Winds zero nine zero at one zero knots")
	assert.Contains(t, byStation["KORD"].Speech, "Winds Calm")
	assert.Contains(t, byStation["KORD"].Speech, "Visibility one half mile")
	assert.Contains(t, byStation["EGLL"].Speech, "gusting to two seven knots")
	assert.Contains(t, byStation["KDEN"].Speech, "Winds Variable at four knots")
	assert.Contains(t, byStation["KDEN"].Speech, "Showers in the Vicinity")
	assert.Contains(t, byStation["PHNL"].Speech, "Visibility greater than six miles")
	assert.Contains(t, byStation["CYYZ"].Speech, "Visibility unknown")
	assert.Contains(t, byStation["CYYZ"].Speech, "Dew point unknown")
	assert.Contains(t, byStation["ZBAA"].Speech, "meters per second")
}
