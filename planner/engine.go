package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/huanchong-99/Go-Home/config"
	"github.com/huanchong-99/Go-Home/hubs"
	"github.com/huanchong-99/Go-Home/pkg/cache"
	"github.com/huanchong-99/Go-Home/pkg/logger"
	"github.com/huanchong-99/Go-Home/routecalc"
)

// Request is one trip to plan. TransportFilter is "flight", "train"
// or "all" (empty means all). Nil pointer fields fall back to the
// engine's configured defaults. Callbacks are optional and fire from
// scheduler goroutines.
type Request struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Date            string `json:"date"`
	TransportFilter string `json:"transport_filter,omitempty"`
	MaxHubs         int    `json:"max_hubs,omitempty"`
	UseIntlHubs     bool   `json:"use_intl_hubs,omitempty"`
	TopN            int    `json:"top_n,omitempty"`

	// IncludeDirect defaults to true; off skips the direct pair and
	// plans transfers only.
	IncludeDirect *bool `json:"include_direct,omitempty"`
	// MinTransferPolicies narrows the layover variants to a subset of
	// {2, 3} hours.
	MinTransferPolicies         []int `json:"min_transfer_policies,omitempty"`
	AccommodationEnabled        *bool `json:"accommodation_enabled,omitempty"`
	AccommodationThresholdHours int   `json:"accommodation_threshold_hours,omitempty"`

	// Advisory only: echoed to downstream consumers, never changes
	// the computed plans or their order.
	PriorityPreference string `json:"priority_preference,omitempty"`
	DurationPreference string `json:"duration_preference,omitempty"`

	OnProgress ProgressFunc `json:"-"`
	OnLog      LogFunc      `json:"-"`
}

// Result carries everything a caller needs: the classified route, the
// raw per-segment outcomes, the computed plans and the rendered
// report.
type Result struct {
	RouteInfo         hubs.RouteInfo           `json:"route_info"`
	Hubs              []string                 `json:"hubs"`
	Queries           int                      `json:"queries"`
	Succeeded         int                      `json:"succeeded"`
	AdjustedTrainDate string                   `json:"adjusted_train_date,omitempty"`
	Segments          map[string]SegmentResult `json:"segments"`
	Plans             []routecalc.RoutePlan    `json:"plans"`
	Report            string                   `json:"report"`
}

// Engine wires the hub catalog, the scheduler and the route
// calculator into a single Plan call. Safe for concurrent use; each
// Plan gets its own scheduler while the station cache is shared.
type Engine struct {
	providers    ToolCaller
	stations     *StationCodes
	warmup       *Warmup
	schedulerCfg config.SchedulerConfig
	engineCfg    config.EngineConfig
}

func NewEngine(providers ToolCaller, store cache.Cache, schedulerCfg config.SchedulerConfig, engineCfg config.EngineConfig) *Engine {
	if engineCfg.MaxHubs <= 0 {
		engineCfg.MaxHubs = hubs.DefaultMaxHubs
	}
	if engineCfg.TopN <= 0 {
		engineCfg.TopN = routecalc.DefaultTopN
	}
	return &Engine{
		providers:    providers,
		stations:     NewStationCodes(providers, store),
		warmup:       NewWarmup(providers, schedulerCfg),
		schedulerCfg: schedulerCfg,
		engineCfg:    engineCfg,
	}
}

// Warmup exposes the warmup helper for startup wiring.
func (e *Engine) Warmup() *Warmup { return e.warmup }

// Plan runs the whole pipeline for one request.
func (e *Engine) Plan(ctx context.Context, req Request) (*Result, error) {
	if req.Origin == "" || req.Destination == "" {
		return nil, fmt.Errorf("出发城市和目的城市不能为空")
	}
	if req.Origin == req.Destination {
		return nil, fmt.Errorf("出发城市和目的城市相同: %s", req.Origin)
	}
	if req.Date == "" {
		req.Date = time.Now().AddDate(0, 0, 1).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("日期格式无效 %q: 需要 YYYY-MM-DD", req.Date)
	}
	filter := req.TransportFilter
	if filter == "" {
		filter = "all"
	}
	maxHubs := req.MaxHubs
	if maxHubs <= 0 {
		maxHubs = e.engineCfg.MaxHubs
	}

	if filter != "train" {
		e.warmup.Run(ctx)
	}

	info := hubs.RouteInfoFor(req.Origin, req.Destination, maxHubs, filter, req.UseIntlHubs)
	hubCities := info.RecommendedHubs

	logger.Info("开始规划行程",
		"origin", req.Origin, "destination", req.Destination, "date", req.Date,
		"route_type", info.RouteTypeName, "hubs", len(hubCities))

	includeDirect := req.IncludeDirect == nil || *req.IncludeDirect
	queries := BuildSegmentQueries(req.Origin, req.Destination, req.Date, hubCities, filter, includeDirect)

	sched := NewScheduler(e.providers, e.stations, e.schedulerCfg, e.engineCfg.TrainDateMaxOffsetDays)
	sched.OnProgress(req.OnProgress)
	if req.OnLog != nil {
		sched.SetLogger(logger.NewWithSink(logger.Config{Level: "info", Format: "text"}, req.OnLog))
	}
	results := sched.Execute(ctx, queries)

	segmentData := make(map[string]routecalc.SegmentPayload)
	succeeded := 0
	for id, r := range results {
		if r.Success && r.Data != "" {
			segmentData[id] = routecalc.SegmentPayload{Mode: r.Mode, Raw: r.Data}
			succeeded++
		}
	}

	threshold := e.engineCfg.AccommodationThresholdHours
	if req.AccommodationThresholdHours > 0 {
		threshold = req.AccommodationThresholdHours
	}
	accommodation := e.engineCfg.AccommodationEnabled
	if req.AccommodationEnabled != nil {
		accommodation = *req.AccommodationEnabled
	}
	calc := routecalc.NewCalculator(threshold, accommodation)
	calc.SetTransferPolicies(req.MinTransferPolicies)

	plans := calc.CalculateAllRoutes(req.Origin, req.Destination, req.Date, segmentData, hubCities)

	topN := req.TopN
	if topN <= 0 {
		topN = e.engineCfg.TopN
	}
	report := routecalc.FormatRoutes(plans, req.Origin, req.Destination, req.Date, topN)

	result := &Result{
		RouteInfo: info,
		Hubs:      hubCities,
		Queries:   len(queries),
		Succeeded: succeeded,
		Segments:  results,
		Plans:     plans,
		Report:    report,
	}

	if adjusted := AdjustedTrainDate(req.Date, time.Now(), e.engineCfg.TrainDateMaxOffsetDays); adjusted != req.Date {
		result.AdjustedTrainDate = adjusted
		result.Report = fmt.Sprintf(
			"> 注意: 火车票查询日期已调整为 %s（12306 预售期限制），机票仍按 %s 查询。\n\n%s",
			adjusted, req.Date, result.Report)
	}

	logger.Info("行程规划完成",
		"plans", len(plans), "queries", len(queries), "succeeded", succeeded)
	return result, nil
}
