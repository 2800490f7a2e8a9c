package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"shoplist-backend/application/ports"
	"shoplist-backend/domain/events"
	"shoplist-backend/pkg/observability"
)

// EventBridgePublisher implements the EventPublisher port using AWS
// EventBridge. Downstream consumers (notifications, projections) subscribe
// via EventBridge rules, managed outside this service.
type EventBridgePublisher struct {
	client       *eventbridge.Client
	eventBusName string
	source       string
	tracer       *observability.Tracer
	logger       *zap.Logger
}

// NewEventBridgePublisher creates a new EventBridge publisher
func NewEventBridgePublisher(
	client *eventbridge.Client,
	eventBusName string,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.EventPublisher {
	return &EventBridgePublisher{
		client:       client,
		eventBusName: eventBusName,
		source:       events.SourceBackend,
		tracer:       tracer,
		logger:       logger,
	}
}

// Publish sends a single event to EventBridge
func (p *EventBridgePublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch sends multiple events to EventBridge
func (p *EventBridgePublisher) PublishBatch(ctx context.Context, domainEvents []events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	// EventBridge limits to 10 events per PutEvents call
	const batchSize = 10

	for i := 0; i < len(domainEvents); i += batchSize {
		end := i + batchSize
		if end > len(domainEvents) {
			end = len(domainEvents)
		}

		if err := p.putEvents(ctx, domainEvents[i:end]); err != nil {
			return err
		}
	}

	return nil
}

// buildEntries converts domain events into PutEvents entries. Events that
// fail to marshal are skipped, so the returned event slice stays aligned
// with the entries for result reporting.
func (p *EventBridgePublisher) buildEntries(domainEvents []events.DomainEvent) ([]types.PutEventsRequestEntry, []events.DomainEvent) {
	entries := make([]types.PutEventsRequestEntry, 0, len(domainEvents))
	kept := make([]events.DomainEvent, 0, len(domainEvents))

	for _, event := range domainEvents {
		eventData, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal event",
				zap.Error(err),
				zap.String("eventType", event.GetEventType()),
			)
			continue
		}

		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.eventBusName),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(eventData)),
			Time:         aws.Time(event.GetTimestamp()),
			Resources: []string{
				fmt.Sprintf("arn:aws:shoplist::%s", event.GetAggregateID()),
			},
		})
		kept = append(kept, event)
	}

	return entries, kept
}

func (p *EventBridgePublisher) putEvents(ctx context.Context, domainEvents []events.DomainEvent) error {
	entries, kept := p.buildEntries(domainEvents)
	if len(entries) == 0 {
		return nil
	}

	var result *eventbridge.PutEventsOutput
	err := p.tracer.Capture(ctx, "eventbridge.put_events", func(ctx context.Context) error {
		var err error
		result, err = p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
			Entries: entries,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to publish events to EventBridge: %w", err)
	}

	if result.FailedEntryCount > 0 {
		for i, entry := range result.Entries {
			if entry.ErrorCode != nil {
				p.logger.Error("Failed to publish event",
					zap.String("eventType", kept[i].GetEventType()),
					zap.String("errorCode", *entry.ErrorCode),
					zap.String("errorMessage", aws.ToString(entry.ErrorMessage)),
				)
			}
		}
		return fmt.Errorf("%d events failed to publish", result.FailedEntryCount)
	}

	p.logger.Debug("Events published to EventBridge",
		zap.Int("count", len(entries)),
		zap.String("eventBus", p.eventBusName),
	)

	return nil
}
