package planner

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/huanchong-99/Go-Home/config"
	"github.com/huanchong-99/Go-Home/pkg/logger"
	"github.com/huanchong-99/Go-Home/provider"
)

// Warmup fires a throwaway flight search so the provider's browser
// session is already up when the first real query lands. Cold starts
// otherwise eat most of the flight timeout.
type Warmup struct {
	providers ToolCaller
	cfg       config.SchedulerConfig

	warmedUp atomic.Bool
	cron     *cron.Cron
}

func NewWarmup(providers ToolCaller, cfg config.SchedulerConfig) *Warmup {
	if cfg.WarmupOrigin == "" {
		cfg.WarmupOrigin = "北京"
	}
	if cfg.WarmupDest == "" {
		cfg.WarmupDest = "上海"
	}
	if cfg.WarmupTimeout <= 0 {
		cfg.WarmupTimeout = 150 * time.Second
	}
	return &Warmup{providers: providers, cfg: cfg}
}

// Done reports whether a warmup call has succeeded.
func (w *Warmup) Done() bool { return w.warmedUp.Load() }

// Run performs one warmup search. Failure is logged and swallowed:
// a cold provider degrades the first query, it does not break it.
func (w *Warmup) Run(ctx context.Context) {
	if !w.cfg.WarmupEnabled {
		return
	}
	if w.warmedUp.Load() {
		return
	}

	date := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	logger.Info("预热航班服务", "from", w.cfg.WarmupOrigin, "to", w.cfg.WarmupDest, "date", date)

	ctx, cancel := context.WithTimeout(ctx, w.cfg.WarmupTimeout)
	defer cancel()

	start := time.Now()
	payload, err := w.providers.CallTool(ctx, provider.ToolSearchFlights, map[string]any{
		"departure_city":   w.cfg.WarmupOrigin,
		"destination_city": w.cfg.WarmupDest,
		"departure_date":   date,
	})
	elapsed := time.Since(start)

	if err != nil || !warmupSucceeded(payload) {
		logger.Warn("航班服务预热失败", "elapsed", elapsed.Round(time.Second), "error", err)
		return
	}
	w.warmedUp.Store(true)
	logger.Info("航班服务预热完成", "elapsed", elapsed.Round(time.Second))
}

func warmupSucceeded(payload string) bool {
	if payload == "" {
		return false
	}
	lowered := strings.ToLower(payload)
	return !strings.Contains(lowered, "超时") && !strings.Contains(lowered, "error")
}

// StartKeeper schedules recurring warmups so long-idle deployments
// stay warm. The schedule uses standard cron syntax; empty disables.
func (w *Warmup) StartKeeper(schedule string) error {
	if schedule == "" {
		return nil
	}
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		w.warmedUp.Store(false)
		w.Run(context.Background())
	})
	if err != nil {
		return err
	}
	c.Start()
	w.cron = c
	return nil
}

// StopKeeper halts the recurring warmup, waiting for an in-flight
// run to finish.
func (w *Warmup) StopKeeper() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
		w.cron = nil
	}
}
