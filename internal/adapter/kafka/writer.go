package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/skybrief/metar-speech/internal/config"
	"github.com/skybrief/metar-speech/internal/domain"
)

// Writer produces spoken briefings to the sink topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes multiple briefings to the sink Kafka
// topic in a single WriteMessages call for efficiency.
func (w *Writer) LoadBatch(ctx context.Context, briefings []domain.Briefing) error {
	if len(briefings) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(briefings))
	for i := range briefings {
		msg, err := serializeToMessage(briefings[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Briefing into a Kafka message keyed by
// station, so one partition carries a station's briefings in order.
func serializeToMessage(briefing domain.Briefing) (kafkago.Message, error) {
	data, err := json.Marshal(briefing)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize briefing: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(briefing.Station),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "station", Value: []byte(briefing.Station)},
			{Key: "generated_at", Value: []byte(briefing.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
