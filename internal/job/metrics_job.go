package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kanban-board-api/internal/metrics"
)

// DefaultMetricsSchedule refreshes business gauges every minute
const DefaultMetricsSchedule = "@every 1m"

// EntityCounter counts the rows of one entity
type EntityCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ActiveInvitationCounter counts invitations that are active and unexpired at now
type ActiveInvitationCounter interface {
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

// MetricsJob refreshes the board, list, card and active invitation gauges
type MetricsJob struct {
	boards      EntityCounter
	lists       EntityCounter
	cards       EntityCounter
	invitations ActiveInvitationCounter
	metrics     *metrics.Metrics
	logger      *zap.Logger
	timeout     time.Duration
	now         func() time.Time
}

// NewMetricsJob creates a new MetricsJob instance
func NewMetricsJob(
	boards, lists, cards EntityCounter,
	invitations ActiveInvitationCounter,
	m *metrics.Metrics,
	logger *zap.Logger,
) *MetricsJob {
	return &MetricsJob{
		boards:      boards,
		lists:       lists,
		cards:       cards,
		invitations: invitations,
		metrics:     m,
		logger:      logger,
		timeout:     30 * time.Second,
		now:         time.Now,
	}
}

// Run executes the job. A failing count leaves its gauge at the previous value.
func (j *MetricsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	gauges := []struct {
		name  string
		count func(context.Context) (int64, error)
		set   func(int64)
	}{
		{"boards", j.boards.Count, j.metrics.SetBoardsTotal},
		{"lists", j.lists.Count, j.metrics.SetListsTotal},
		{"cards", j.cards.Count, j.metrics.SetCardsTotal},
		{"active_invitations", func(ctx context.Context) (int64, error) {
			return j.invitations.CountActive(ctx, j.now())
		}, j.metrics.SetActiveInvitationsTotal},
	}

	failed := 0
	for _, g := range gauges {
		n, err := g.count(ctx)
		if err != nil {
			j.logger.Error("Failed to collect business metric",
				zap.String("metric", g.name),
				zap.Error(err),
			)
			failed++
			continue
		}
		g.set(n)
	}

	j.logger.Debug("Business metrics collected", zap.Int("failed", failed))
}

// NewScheduler registers job on a cron scheduler with the given schedule.
// An empty schedule uses DefaultMetricsSchedule. The caller starts and stops it.
func NewScheduler(schedule string, job *MetricsJob, logger *zap.Logger) (*cron.Cron, error) {
	if schedule == "" {
		schedule = DefaultMetricsSchedule
	}

	c := cron.New(cron.WithChain(cron.Recover(cronLogger{logger})))
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, fmt.Errorf("invalid metrics schedule %q: %w", schedule, err)
	}
	return c, nil
}

// cronLogger adapts zap to cron.Logger
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
