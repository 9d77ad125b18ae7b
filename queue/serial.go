package queue

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-metrics"
	"github.com/petermattis/goid"
	"gopkg.in/tomb.v2"
)

// Serial runs submitted tasks one at a time, in submission order, on a
// single worker goroutine. Submitting never blocks.
//
// Serial satisfies wire.Executor.
type Serial struct {
	name   string
	log    *slog.Logger
	msink  metrics.MetricSink
	labels []metrics.Label

	mu     sync.Mutex
	tasks  []func()
	closed bool
	wake   chan struct{}

	gid atomic.Int64
	t   tomb.Tomb
}

// New starts a serial queue.
func New(opts ...Option) (*Serial, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	logger := slog.Default()
	if cfg.logHandler != nil {
		logger = slog.New(cfg.logHandler)
	}
	msink := cfg.msink
	if msink == nil {
		msink = metrics.Default()
	}

	s := &Serial{
		name:   cfg.name,
		log:    logger.With(LabelQueue.L(cfg.name)),
		msink:  msink,
		labels: append(append([]metrics.Label{}, cfg.metricLabels...), LabelQueue.M(cfg.name)),
		wake:   make(chan struct{}, 1),
	}
	s.t.Go(s.loop)
	return s, nil
}

func (s *Serial) Name() string {
	return s.name
}

// Len returns the number of tasks waiting to run.
func (s *Serial) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// IsCurrent reports whether the caller is running on the queue's worker.
func (s *Serial) IsCurrent() bool {
	return goid.Get() == s.gid.Load()
}

// Execute schedules task. After Close the task is dropped and logged.
func (s *Serial) Execute(task func()) {
	if err := s.Submit(task); err != nil {
		s.log.Warn("dropping task", "error", err)
	}
}

// Submit schedules task, or returns ErrClosed.
func (s *Serial) Submit(task func()) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.msink.IncrCounterWithLabels(MetricQueueTaskDropped, 1, s.labels)
		return ErrClosed
	}
	s.tasks = append(s.tasks, task)
	depth := len(s.tasks)
	s.mu.Unlock()

	s.msink.IncrCounterWithLabels(MetricQueueTaskSubmitted, 1, s.labels)
	s.msink.SetGaugeWithLabels(MetricQueueDepth, float32(depth), s.labels)

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return nil
}

// Flush blocks until every task submitted before the call has run.
func (s *Serial) Flush(ctx context.Context) error {
	if s.IsCurrent() {
		return ErrFlushOnQueue
	}
	done := make(chan struct{})
	if err := s.Submit(func() { close(done) }); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.t.Dead():
		// the flush task may have run during the shutdown drain
		select {
		case <-done:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Close stops accepting tasks, runs the ones already queued and waits for
// the worker to exit. Calling it again returns the same result.
//
// Called from a task on the queue, Close does not wait: the backlog runs
// after the calling task returns.
func (s *Serial) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.t.Kill(nil)
	if s.IsCurrent() {
		return nil
	}
	return s.t.Wait()
}

func (s *Serial) pop() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return nil, false
	}
	task := s.tasks[0]
	s.tasks[0] = nil
	s.tasks = s.tasks[1:]
	return task, true
}

func (s *Serial) loop() error {
	s.gid.Store(goid.Get())
	s.log.Debug("worker started")
	defer s.log.Debug("worker stopped")

	for {
		if task, ok := s.pop(); ok {
			s.run(task)
			continue
		}
		select {
		case <-s.wake:
		case <-s.t.Dying():
			// closed is already set, so the backlog can only shrink
			for {
				task, ok := s.pop()
				if !ok {
					return nil
				}
				s.run(task)
			}
		}
	}
}

func (s *Serial) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			s.msink.IncrCounterWithLabels(MetricQueueTaskPanicked, 1, s.labels)
			s.log.Error("task panicked", LabelPanic.L(r))
		}
	}()
	task()
	s.msink.IncrCounterWithLabels(MetricQueueTaskExecuted, 1, s.labels)
}
