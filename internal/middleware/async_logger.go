package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/logger"
	"github.com/guttosm/feeding-service/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the log entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing entries.
	NumWorkers int
	// WriteTimeout bounds a single CreateLog call.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the defaults used by the server.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger writes request and audit entries through a fixed worker pool.
// Entries are dropped, not queued, once the buffer is full.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	stopCh         chan struct{}
	stopOnce       sync.Once
	stopped        atomic.Bool
	wg             sync.WaitGroup
	writeTimeout   time.Duration

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	errors   atomic.Int64
}

// NewAsyncLogger starts the worker pool. It returns nil when loggingService is nil.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}

	defaults := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaults.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}

	al.wg.Add(cfg.NumWorkers)
	for i := 0; i < cfg.NumWorkers; i++ {
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.writeEntry(entry)
		case <-al.stopCh:
			// drain what is already buffered
			for {
				select {
				case entry := <-al.entryCh:
					al.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeEntry(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		al.errors.Add(1)
		log := logger.Logger()
		log.Warn().Err(err).
			Str("action_type", entry.ActionType).
			Str("request_id", entry.RequestID).
			Msg("Failed to write async log entry")
		return
	}
	al.written.Add(1)
}

// Log enqueues entry. It returns false when the buffer is full or the logger is stopped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	if al.stopped.Load() {
		al.dropped.Add(1)
		return false
	}

	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop drains buffered entries and waits for the workers. Safe to call more than once.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		al.stopped.Store(true)
		close(al.stopCh)
	})
	al.wg.Wait()
}

// Stats returns current async logger counters.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return al.enqueued.Load(), al.dropped.Load(), al.written.Load(), al.errors.Load()
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger installs the process-wide async logger, stopping any previous one.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(loggingService, cfg)
}

// GetAsyncLogger returns the process-wide async logger, or nil.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger stops and clears the process-wide async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}

// persistLogEntry hands entry to the async logger when one is installed and
// falls back to a detached write otherwise.
func persistLogEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultAsyncLoggerConfig().WriteTimeout)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
