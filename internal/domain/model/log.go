// Package model provides the domain models shared by the feeding service layers.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action types recorded in LogEntry.ActionType.
const (
	ActionCalculate         = "calculate"
	ActionSaveFeedingTarget = "save_feeding_target"
)

// LogEntry is a request log or audit entry.
// Context-specific data such as the dog id goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	UserID     string                 `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserEmail  string                 `bson:"user_email,omitempty" json:"user_email,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithFields copies fields into Fields, so later changes to the caller's map
// do not leak into a queued entry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions provides options for querying logs.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	Method     string
	Path       string
	ActionType string
	DogID      string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
