// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides structured operation logging for every
// pipeline component plus the optional progress sink exposed to callers.
// A nil Observer is valid everywhere: the pipeline behaves identically
// with observation absent.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// Level controls how much the observer emits.
type Level int

const (
	LevelOff Level = iota
	LevelMetrics
	LevelDebug
)

// ProgressSink receives purely observational progress/status notifications.
// Implementations must not influence pipeline behavior.
type ProgressSink interface {
	Notify(event string, data map[string]any)
}

// Observer records component operations as JSON lines and forwards progress
// events to an attached sink.
type Observer struct {
	level    Level
	writer   io.Writer
	progress ProgressSink
}

// NewObserver creates an observer writing to w at the given level.
func NewObserver(level Level, w io.Writer) *Observer {
	return &Observer{level: level, writer: w}
}

// WithProgressSink attaches a progress sink and returns the observer.
func (o *Observer) WithProgressSink(sink ProgressSink) *Observer {
	if o != nil {
		o.progress = sink
	}
	return o
}

// OperationData is one logged operation record.
type OperationData struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	Subject    string         `json:"subject,omitempty"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StartTiming returns a completion function that logs the operation with
// its duration once called.
func (o *Observer) StartTiming(component, operation, subject string) func(success bool, metadata map[string]any) {
	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			Subject:    subject,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation emits one operation record. Records are only written in
// debug mode; metrics mode keeps timing overhead without output.
func (o *Observer) LogOperation(data OperationData) {
	if o == nil || o.level != LevelDebug || o.writer == nil {
		return
	}
	_ = json.NewEncoder(o.writer).Encode(data)
}

// LogError logs a failed operation with its error text.
func (o *Observer) LogError(component, operation, subject string, err error) {
	if err == nil {
		return
	}
	o.LogOperation(OperationData{
		Component: component,
		Operation: operation,
		Subject:   subject,
		Success:   false,
		Error:     err.Error(),
	})
}

// Progress forwards a "progress" event to the attached sink, if any.
func (o *Observer) Progress(data map[string]any) {
	o.notify("progress", data)
}

// Status forwards a "status" event to the attached sink, if any.
func (o *Observer) Status(data map[string]any) {
	o.notify("status", data)
}

func (o *Observer) notify(event string, data map[string]any) {
	if o == nil || o.progress == nil {
		return
	}
	o.progress.Notify(event, data)
}
