package kafka

import "time"

// DatasetSeededEvent is published after a seed run finishes.
type DatasetSeededEvent struct {
	EventID     string         `json:"event_id"`
	EventType   string         `json:"event_type"`
	TriggeredBy uint           `json:"triggered_by"`
	Counts      map[string]int `json:"counts"`
	DurationMS  int64          `json:"duration_ms"`
	Timestamp   time.Time      `json:"timestamp"`
}

// DatasetClearedEvent is published after a clear run finishes.
type DatasetClearedEvent struct {
	EventID     string         `json:"event_id"`
	EventType   string         `json:"event_type"`
	TriggeredBy uint           `json:"triggered_by"`
	Deleted     map[string]int `json:"deleted"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Event types
const (
	EventTypeDatasetSeeded  = "dataset.seeded"
	EventTypeDatasetCleared = "dataset.cleared"
)

// Kafka topics
const (
	TopicDatasetAudit = "dataset-audit"
)
