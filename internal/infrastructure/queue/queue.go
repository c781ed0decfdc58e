package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"runtime/debug"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrQueueFull   = errors.New("background queue is full")
	ErrQueueClosed = errors.New("background queue is closed")
)

var (
	tasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "background_tasks_total",
			Help: "Background tasks by name and result",
		},
		[]string{"task", "result"},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "background_queue_depth",
			Help: "Tasks waiting for a worker",
		},
	)
)

// Task is a unit of deferred work, typically a persistence write.
type Task func(ctx context.Context) error

type Config struct {
	// Workers is the number of goroutines draining the queue. Zero runs
	// every task inline inside Submit.
	Workers int
	// Size is the total capacity, split evenly across workers.
	Size        int
	TaskTimeout time.Duration
}

type job struct {
	name string
	task Task
}

// Queue is a fire-and-forget task queue. Failed tasks are logged and counted,
// not retried. Each worker owns a channel and tasks are routed by key, so
// tasks sharing a key run one at a time in submission order.
type Queue struct {
	cfg    Config
	logger *zap.Logger
	shards []chan job

	mu     sync.RWMutex
	closed bool
}

func New(logger *zap.Logger, cfg Config) *Queue {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Size <= 0 {
		cfg.Size = 256
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = 10 * time.Second
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}

	shards := make([]chan job, cfg.Workers)
	if cfg.Workers > 0 {
		perShard := max(cfg.Size/cfg.Workers, 1)
		for i := range shards {
			shards[i] = make(chan job, perShard)
		}
	}

	return &Queue{
		cfg:    cfg,
		logger: logger,
		shards: shards,
	}
}

// Submit schedules task on the worker that owns key. In inline mode the task
// runs before Submit returns and its error is returned.
func (q *Queue) Submit(key, name string, task Task) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	if q.cfg.Workers == 0 {
		return q.execute(context.Background(), job{name: name, task: task})
	}

	select {
	case q.shardFor(key) <- job{name: name, task: task}:
		queueDepth.Inc()
		return nil
	default:
		tasksTotal.WithLabelValues(name, "dropped").Inc()
		return fmt.Errorf("%w: %s", ErrQueueFull, name)
	}
}

// Run starts the workers and blocks until Close is called and every queued
// task has finished. Task contexts outlive ctx cancellation so that queued
// writes still complete during shutdown.
func (q *Queue) Run(ctx context.Context) error {
	base := context.WithoutCancel(ctx)

	g := new(errgroup.Group)
	for _, jobs := range q.shards {
		jobs := jobs
		g.Go(func() error {
			for j := range jobs {
				queueDepth.Dec()
				_ = q.execute(base, j)
			}
			return nil
		})
	}
	return g.Wait()
}

// Close stops accepting tasks. Workers drain what is already queued.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for _, jobs := range q.shards {
		close(jobs)
	}
}

func (q *Queue) shardFor(key string) chan job {
	h := fnv.New32a()
	h.Write([]byte(key))
	return q.shards[h.Sum32()%uint32(len(q.shards))]
}

func (q *Queue) execute(ctx context.Context, j job) (err error) {
	ctx, cancel := context.WithTimeout(ctx, q.cfg.TaskTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("background task panicked",
				zap.String("task", j.name),
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("task %s panicked: %v", j.name, r)
		}

		if err != nil {
			tasksTotal.WithLabelValues(j.name, "failed").Inc()
			q.logger.Error("background task failed",
				zap.String("task", j.name),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return
		}
		tasksTotal.WithLabelValues(j.name, "succeeded").Inc()
	}()

	return j.task(ctx)
}
