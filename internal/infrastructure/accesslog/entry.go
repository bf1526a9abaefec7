// Package accesslog records one structured entry per completed HTTP request.
package accesslog

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Entry describes a finished request.
type Entry struct {
	Timestamp time.Time     `json:"timestamp"`
	Level     string        `json:"level"`
	Message   string        `json:"message"`
	Request   RequestInfo   `json:"req"`
	Response  ResponseInfo  `json:"res"`
	Duration  time.Duration `json:"duration"`
}

type RequestInfo struct {
	ID        string          `json:"requestId,omitempty"`
	Method    string          `json:"method"`
	URL       string          `json:"url"`
	IP        string          `json:"ip,omitempty"`
	UserAgent string          `json:"userAgent,omitempty"`
	Body      json.RawMessage `json:"body,omitempty"`
}

type ResponseInfo struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// NewEntry fills in level and message from the request outcome.
func NewEntry(at time.Time, req RequestInfo, res ResponseInfo, took time.Duration) Entry {
	level := LevelInfo
	if res.StatusCode >= 400 {
		level = LevelError
	}
	return Entry{
		Timestamp: at,
		Level:     level,
		Message:   fmt.Sprintf("Petición a %s", req.URL),
		Request:   req,
		Response:  res,
		Duration:  took,
	}
}

// Sink receives access log entries.
type Sink interface {
	Record(entry Entry) error
}
