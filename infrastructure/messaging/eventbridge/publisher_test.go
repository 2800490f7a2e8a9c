package eventbridge

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoplist-backend/domain/events"
)

// unmarshalableEvent cannot be serialized; json.Marshal rejects func values
type unmarshalableEvent struct {
	events.BaseEvent
	Broken func() `json:"broken"`
}

func newTestPublisher() *EventBridgePublisher {
	return &EventBridgePublisher{
		eventBusName: "shoplist-events",
		source:       events.SourceBackend,
		logger:       zap.NewNop(),
	}
}

func TestBuildEntries_SkipsUnmarshalableAndStaysAligned(t *testing.T) {
	p := newTestPublisher()

	first := events.NewListCreated("list-1", "user123", "Groceries", time.Now())
	bad := unmarshalableEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: "list-2",
			EventType:   "list.created",
			Timestamp:   time.Now(),
		},
	}
	third := events.NewListRenamed("list-3", "Groceries", "Chores", time.Now())

	entries, kept := p.buildEntries([]events.DomainEvent{first, bad, third})

	require.Len(t, entries, 2)
	require.Len(t, kept, 2)

	// The kept slice mirrors the entries; index i of either refers to the
	// same event even after a skip
	assert.Equal(t, "list.created", kept[0].GetEventType())
	assert.Equal(t, "list.renamed", kept[1].GetEventType())
	assert.Equal(t, kept[0].GetEventType(), aws.ToString(entries[0].DetailType))
	assert.Equal(t, kept[1].GetEventType(), aws.ToString(entries[1].DetailType))
	assert.Contains(t, entries[1].Resources[0], "list-3")
}

func TestBuildEntries_AllUnmarshalable(t *testing.T) {
	p := newTestPublisher()

	entries, kept := p.buildEntries([]events.DomainEvent{unmarshalableEvent{}})

	assert.Empty(t, entries)
	assert.Empty(t, kept)
}
