package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/huanchong-99/Go-Home/config"
	"github.com/huanchong-99/Go-Home/pkg/logger"
	"github.com/huanchong-99/Go-Home/provider"
	"github.com/huanchong-99/Go-Home/routecalc"
)

// ProgressFunc receives completion counts as queries finish.
type ProgressFunc func(completed, total int, message string)

// LogFunc receives human-readable progress lines. The engine adapts a
// LogFunc into a logger sink so every scheduler record reaches both
// the process log and the callback.
type LogFunc func(message string)

// Scheduler runs segment queries in two phases: train lookups fan out
// over a bounded worker pool, flight lookups run one at a time. The
// flight provider throttles concurrent sessions, the train one does
// not.
type Scheduler struct {
	providers ToolCaller
	stations  *StationCodes
	cfg       config.SchedulerConfig

	trainDateMaxOffset int
	now                func() time.Time

	progress ProgressFunc
	runLog   *logger.Logger

	mu        sync.Mutex
	results   map[string]SegmentResult
	completed int
	total     int
}

func NewScheduler(providers ToolCaller, stations *StationCodes, cfg config.SchedulerConfig, trainDateMaxOffset int) *Scheduler {
	if cfg.TrainConcurrency <= 0 {
		cfg.TrainConcurrency = 15
	}
	if cfg.FlightRetries < 0 {
		cfg.FlightRetries = 0
	}
	return &Scheduler{
		providers:          providers,
		stations:           stations,
		cfg:                cfg,
		trainDateMaxOffset: trainDateMaxOffset,
		now:                time.Now,
		results:            make(map[string]SegmentResult),
	}
}

// OnProgress registers a completion callback. Set before Execute.
func (s *Scheduler) OnProgress(fn ProgressFunc) { s.progress = fn }

// SetLogger replaces the process-default logger for this run. The
// engine installs a sink-teed logger here when the caller wants the
// trace forwarded. Set before Execute.
func (s *Scheduler) SetLogger(l *logger.Logger) { s.runLog = l }

// Execute runs every query and returns a result per SegmentID. A
// cancelled context marks the remaining queries failed instead of
// dropping them, so the caller always sees a complete map.
func (s *Scheduler) Execute(ctx context.Context, queries []SegmentQuery) map[string]SegmentResult {
	s.mu.Lock()
	s.results = make(map[string]SegmentResult, len(queries))
	s.completed = 0
	s.total = len(queries)
	s.mu.Unlock()

	var trains, flights []SegmentQuery
	for _, q := range queries {
		if q.Mode == routecalc.ModeTrain {
			trains = append(trains, q)
		} else {
			flights = append(flights, q)
		}
	}

	s.log(fmt.Sprintf("开始查询 %d 个区段（火车 %d 个并发 / 航班 %d 个串行）",
		len(queries), len(trains), len(flights)))

	if len(trains) > 0 {
		s.runTrainPool(ctx, trains)
	}
	for _, q := range flights {
		if ctx.Err() != nil {
			s.record(s.cancelled(q))
			continue
		}
		s.record(s.querySegment(ctx, q))
	}

	s.mu.Lock()
	succeeded := 0
	for _, r := range s.results {
		if r.Success {
			succeeded++
		}
	}
	out := make(map[string]SegmentResult, len(s.results))
	for id, r := range s.results {
		out[id] = r
	}
	s.mu.Unlock()

	s.log(fmt.Sprintf("查询完成: 成功 %d/%d", succeeded, len(queries)))
	return out
}

// runTrainPool drains the train queries with a fixed worker pool.
func (s *Scheduler) runTrainPool(ctx context.Context, queries []SegmentQuery) {
	workers := s.cfg.TrainConcurrency
	if workers > len(queries) {
		workers = len(queries)
	}

	jobs := make(chan SegmentQuery)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := range jobs {
				if ctx.Err() != nil {
					s.record(s.cancelled(q))
					continue
				}
				s.record(s.querySegment(ctx, q))
			}
		}()
	}
	for _, q := range queries {
		jobs <- q
	}
	close(jobs)
	wg.Wait()
}

// querySegment performs one provider lookup and judges the payload.
func (s *Scheduler) querySegment(ctx context.Context, q SegmentQuery) SegmentResult {
	start := s.now()
	result := SegmentResult{
		SegmentID: q.SegmentID,
		FromCity:  q.FromCity,
		ToCity:    q.ToCity,
		Mode:      q.Mode,
	}

	var payload, errMsg string
	if q.Mode == routecalc.ModeFlight {
		payload, errMsg = s.queryFlight(ctx, q)
	} else {
		payload, errMsg = s.queryTrain(ctx, q)
	}

	result.QueryTime = s.now().Sub(start).Seconds()
	if errMsg != "" {
		result.Error = errMsg
		return result
	}
	result.Success = true
	result.Data = payload
	return result
}

// queryFlight retries invalid and zero-result replies. The retry
// budget covers both: a payload saying "0 flights" usually means the
// provider raced its own data load.
func (s *Scheduler) queryFlight(ctx context.Context, q SegmentQuery) (payload, errMsg string) {
	attempts := s.cfg.FlightRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := s.providers.CallTool(ctx, provider.ToolSearchFlights, map[string]any{
			"departure_city":   q.FromCity,
			"destination_city": q.ToCity,
			"departure_date":   q.Date,
		})
		switch {
		case err != nil:
			errMsg = err.Error()
		case !validResponse(raw):
			errMsg = "航班查询返回无效数据"
		case zeroFlightResponse(raw):
			errMsg = "找到 0 条航班"
		default:
			return raw, ""
		}
		if attempt < attempts {
			s.log(fmt.Sprintf("[✈️ %s→%s] 第 %d 次重试: %s", q.FromCity, q.ToCity, attempt, errMsg))
		}
		if ctx.Err() != nil {
			return "", errMsg
		}
	}
	return "", errMsg
}

// queryTrain resolves both station codes first. A city without a code
// has no rail service reachable through the provider.
func (s *Scheduler) queryTrain(ctx context.Context, q SegmentQuery) (payload, errMsg string) {
	fromCode := s.stations.Resolve(ctx, q.FromCity)
	if fromCode == "" {
		return "", unknownStationErr(q.FromCity)
	}
	toCode := s.stations.Resolve(ctx, q.ToCity)
	if toCode == "" {
		return "", unknownStationErr(q.ToCity)
	}

	date := AdjustedTrainDate(q.Date, s.now(), s.trainDateMaxOffset)
	raw, err := s.providers.CallTool(ctx, provider.ToolTrainTickets, map[string]any{
		"date":        date,
		"fromStation": fromCode,
		"toStation":   toCode,
	})
	if err != nil {
		return "", err.Error()
	}
	if !validResponse(raw) {
		return "", "车票查询返回无效数据"
	}
	return raw, ""
}

func (s *Scheduler) cancelled(q SegmentQuery) SegmentResult {
	return SegmentResult{
		SegmentID: q.SegmentID,
		FromCity:  q.FromCity,
		ToCity:    q.ToCity,
		Mode:      q.Mode,
		Error:     "查询已取消",
	}
}

// record stores a result and pushes progress, all under one lock so
// the completed counter and the map never disagree.
func (s *Scheduler) record(r SegmentResult) {
	s.mu.Lock()
	s.results[r.SegmentID] = r
	s.completed++
	completed, total := s.completed, s.total
	s.mu.Unlock()

	icon := "🚄"
	if r.Mode == routecalc.ModeFlight {
		icon = "✈️"
	}
	status := "✅"
	if !r.Success {
		status = "❌ " + r.Error
	}
	msg := fmt.Sprintf("[%s %s→%s] %s (%.1fs)", icon, r.FromCity, r.ToCity, status, r.QueryTime)
	s.log(msg)
	if s.progress != nil {
		s.progress(completed, total, msg)
	}
}

func (s *Scheduler) log(msg string) {
	if s.runLog != nil {
		s.runLog.Info(msg)
		return
	}
	logger.Info(msg)
}
