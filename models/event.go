package models

import "time"

// EventName identifies a contract notification.
type EventName string

const (
	EventReadingSubmitted         EventName = "ReadingSubmitted"
	EventTwinUpdateRequested      EventName = "TwinUpdateRequested"
	EventTwinDecrypted            EventName = "TwinDecrypted"
	EventRecommendationRequested  EventName = "RecommendationRequested"
	EventRecommendationDecrypted  EventName = "RecommendationDecrypted"
	EventAggregateUpdated         EventName = "AggregateUpdated"
	EventAggregateRevealRequested EventName = "AggregateRevealRequested"
	EventPlainAggregateResult     EventName = "PlainAggregateResult"
)

// Event is an entry of the append-only contract event log.
//
// Value is only set on [EventPlainAggregateResult]: plaintext aggregate totals
// are broadcast through the log and never persisted in entity state.
type Event struct {
	Seq       int64     `json:"seq"`
	Name      EventName `json:"name"`
	EntityID  int64     `json:"entity_id"`
	RequestID int64     `json:"request_id,omitempty"`
	Key       string    `json:"key,omitempty"`
	Value     uint64    `json:"value,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Event.
func (e Event) TableName() string {
	return "events"
}
