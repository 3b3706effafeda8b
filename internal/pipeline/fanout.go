package pipeline

import (
	"context"
	"fmt"

	"github.com/skybrief/metar-speech/internal/domain"
)

// FanoutLoader delivers each batch to every wrapped loader in order. The
// first failure aborts the batch so the pipeline's retry path re-delivers;
// downstream loaders are expected to be idempotent per briefing.
type FanoutLoader struct {
	loaders []BatchLoader
}

// NewFanoutLoader creates a FanoutLoader. Nil loaders are skipped so callers
// can pass optional destinations unconditionally.
func NewFanoutLoader(loaders ...BatchLoader) *FanoutLoader {
	kept := make([]BatchLoader, 0, len(loaders))
	for _, l := range loaders {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return &FanoutLoader{loaders: kept}
}

func (f *FanoutLoader) LoadBatch(ctx context.Context, briefings []domain.Briefing) error {
	for _, l := range f.loaders {
		if err := l.LoadBatch(ctx, briefings); err != nil {
			return fmt.Errorf("fanout load: %w", err)
		}
	}
	return nil
}
