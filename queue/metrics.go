package queue

import (
	"log/slog"

	"github.com/hashicorp/go-metrics"
)

var (
	MetricQueueTaskSubmitted = []string{"patchbay", "queue", "task", "submitted", "count"}
	MetricQueueTaskExecuted  = []string{"patchbay", "queue", "task", "executed", "count"}
	MetricQueueTaskDropped   = []string{"patchbay", "queue", "task", "dropped", "count"}
	MetricQueueTaskPanicked  = []string{"patchbay", "queue", "task", "panicked", "count"}
	MetricQueueDepth         = []string{"patchbay", "queue", "depth"}
)

type TelemetryLabel string

var (
	LabelQueue TelemetryLabel = "queue"
	LabelPanic TelemetryLabel = "panic"
)

func (lab TelemetryLabel) M(val string) metrics.Label {
	return metrics.Label{Name: string(lab), Value: val}
}

func (lab TelemetryLabel) L(val any) slog.Attr {
	return slog.Attr{
		Key:   string(lab),
		Value: slog.AnyValue(val),
	}
}
