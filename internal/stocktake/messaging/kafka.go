package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/dto"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	EventSessionStarted = "stocktake.session.started"
	EventReportCreated  = "stocktake.report.created"
)

// KafkaPublisher announces stocktake milestones on the platform topic.
// Publishing is fire-and-forget: a broker outage must never block a
// counting session, so failures are logged and dropped.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, logger: log}
}

func (p *KafkaPublisher) SessionStarted(ctx context.Context, operatorID string, itemCount int) {
	p.publish(ctx, operatorID, EventSessionStarted, map[string]interface{}{
		"operator_id": operatorID,
		"item_count":  itemCount,
	})
}

func (p *KafkaPublisher) ReportCreated(ctx context.Context, report *model.ReconciliationReport) {
	p.publish(ctx, report.ID, EventReportCreated, map[string]interface{}{
		"report_id":     report.ID,
		"created_by":    report.CreatedBy,
		"total_matched": report.TotalMatched,
		"total_missing": report.TotalMissing,
		"total_excess":  report.TotalExcess,
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, key, eventType string, payload interface{}) {
	event := dto.SessionEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal stocktake event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.Timestamp,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish stocktake event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is wired when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) SessionStarted(context.Context, string, int) {}

func (NopPublisher) ReportCreated(context.Context, *model.ReconciliationReport) {}
