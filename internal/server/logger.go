// file: internal/server/logger.go
// version: 2.0.0
// guid: 1d2e3f4a-5b6c-7d8e-9f0a-1b2c3d4e5f6a

package server

import (
	"time"

	"github.com/jdfalk/book-lookup/internal/logger"
	"github.com/rs/zerolog"
)

// OperationLogger tracks the lifecycle of a handler operation
type OperationLogger struct {
	handler    string
	method     string
	path       string
	startTime  time.Time
	requestID  string
	resourceID string
	details    map[string]any
}

// NewOperationLogger creates a new operation logger
func NewOperationLogger(handler, method, path, requestID string) *OperationLogger {
	return &OperationLogger{
		handler:   handler,
		method:    method,
		path:      path,
		startTime: time.Now(),
		requestID: requestID,
		details:   make(map[string]any),
	}
}

// SetResourceID sets the resource ID being operated on
func (ol *OperationLogger) SetResourceID(id string) {
	ol.resourceID = id
}

// AddDetail adds a contextual detail to the operation log
func (ol *OperationLogger) AddDetail(key string, value any) {
	ol.details[key] = value
}

func (ol *OperationLogger) decorate(e *zerolog.Event) *zerolog.Event {
	e = e.Str("handler", ol.handler).
		Str("method", ol.method).
		Str("path", ol.path).
		Str("request_id", ol.requestID)
	if ol.resourceID != "" {
		e = e.Str("resource", ol.resourceID)
	}
	if len(ol.details) > 0 {
		e = e.Fields(ol.details)
	}
	return e
}

// LogStart logs the start of the operation
func (ol *OperationLogger) LogStart() {
	log := logger.Get()
	ol.decorate(log.Debug()).Msg("operation started")
}

// LogSuccess logs the successful completion of the operation
func (ol *OperationLogger) LogSuccess(statusCode int) {
	log := logger.Get()
	ol.decorate(log.Info()).
		Int("status", statusCode).
		Dur("duration", time.Since(ol.startTime)).
		Msg("operation succeeded")
}

// LogError logs an error that occurred during the operation
func (ol *OperationLogger) LogError(statusCode int, err error) {
	log := logger.Get()
	event := log.Warn()
	if statusCode >= 500 {
		event = log.Error()
	}
	ol.decorate(event).
		Err(err).
		Int("status", statusCode).
		Dur("duration", time.Since(ol.startTime)).
		Msg("operation failed")
}
