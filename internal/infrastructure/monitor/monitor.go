package monitor

import (
	"context"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/fastygo/tareas/internal/infrastructure/accesslog"
)

// recentRequests is how many journal entries a status sample carries.
const recentRequests = 5

// TaskCounter reports the current store size.
type TaskCounter interface {
	Count(ctx context.Context) (int, error)
}

// Journal is the read side of the access journal.
type Journal interface {
	Size() (int, error)
	Recent(limit int) ([]accesslog.Entry, error)
	Stats() bolt.Stats
}

type Monitor struct {
	tasks   TaskCounter
	journal Journal

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

// New builds a monitor. journal may be nil when the access journal is disabled.
func New(tasks TaskCounter, journal Journal, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		tasks:    tasks,
		journal:  journal,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh takes a new sample immediately.
func (m *Monitor) Refresh() Status {
	status := Status{
		Tasks:     m.countTasks(),
		LastCheck: time.Now().UTC(),
	}
	m.checkJournal(&status)

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh()
	for {
		select {
		case <-ticker.C:
			m.Refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) countTasks() int {
	if m.tasks == nil {
		return 0
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	count, err := m.tasks.Count(ctx)
	if err != nil {
		m.logger.Warn("task count failed", zap.Error(err))
		return 0
	}
	return count
}

func (m *Monitor) checkJournal(status *Status) {
	if m.journal == nil {
		return
	}
	size, err := m.journal.Size()
	if err != nil {
		m.logger.Warn("journal size check failed", zap.Error(err))
		return
	}
	status.Journal = true
	status.JournalSize = size

	stats := m.journal.Stats()
	status.JournalReadTx = stats.TxN
	status.JournalOpenTx = stats.OpenTxN

	recent, err := m.journal.Recent(recentRequests)
	if err != nil {
		m.logger.Warn("journal read failed", zap.Error(err))
		return
	}
	status.RecentRequests = make([]RecentRequest, 0, len(recent))
	for _, entry := range recent {
		status.RecentRequests = append(status.RecentRequests, RecentRequest{
			At:     entry.Timestamp,
			Method: entry.Request.Method,
			URL:    entry.Request.URL,
			Status: entry.Response.StatusCode,
		})
	}
}
