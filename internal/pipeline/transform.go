package pipeline

import (
	"context"
	"log/slog"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/speech"
)

// BriefingTransformer implements Transformer by rendering decoded reports
// through the speech package.
type BriefingTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a BriefingTransformer.
func NewTransformer(logger *slog.Logger) *BriefingTransformer {
	return &BriefingTransformer{logger: logger}
}

// Transform parses a raw event and renders its spoken briefing. Only a
// malformed payload is an error; an observation with missing fields still
// yields a briefing, possibly with empty speech.
func (t *BriefingTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.Briefing, error) {
	rep, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.Briefing{}, err
	}

	spoken := speech.Render(rep.Data, rep.Units)
	if spoken == "" {
		t.logger.Debug("observation rendered empty briefing", "station", rep.Station)
	}

	return domain.NewBriefing(rep, spoken), nil
}
