package planner

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huanchong-99/Go-Home/config"
	"github.com/huanchong-99/Go-Home/provider"
	"github.com/huanchong-99/Go-Home/routecalc"
)

const (
	goodFlightPayload = `{"flights": [{"航班号": "CA1234", "出发时间": "08:00", "到达时间": "11:05", "价格": "1280"}]}`
	goodTrainPayload  = `{"trains": [{"车次": "G1", "出发时间": "08:00", "到达时间": "13:28", "二等座": "553"}]}`
)

func newTestScheduler(caller ToolCaller) *Scheduler {
	cfg := config.SchedulerConfig{TrainConcurrency: 15, FlightRetries: 2}
	return NewScheduler(caller, NewStationCodes(caller, nil), cfg, 14)
}

func flightQuery(from, to string) SegmentQuery {
	return SegmentQuery{
		FromCity: from, ToCity: to, Date: "2025-02-01",
		Mode: routecalc.ModeFlight, SegmentID: "direct_flight",
	}
}

func TestSchedulerFlightSuccess(t *testing.T) {
	caller := &fakeCaller{reply: func(tool string, args map[string]any) (string, error) {
		require.Equal(t, provider.ToolSearchFlights, tool)
		assert.Equal(t, "北京", args["departure_city"])
		assert.Equal(t, "上海", args["destination_city"])
		assert.Equal(t, "2025-02-01", args["departure_date"])
		return goodFlightPayload, nil
	}}

	results := newTestScheduler(caller).Execute(context.Background(), []SegmentQuery{flightQuery("北京", "上海")})
	require.Len(t, results, 1)
	r := results["direct_flight"]
	assert.True(t, r.Success)
	assert.Equal(t, goodFlightPayload, r.Data)
	assert.Equal(t, 1, caller.callCount(provider.ToolSearchFlights))
}

// A zero-result payload burns the whole retry budget: two retries on
// top of the first attempt means exactly three provider calls.
func TestSchedulerFlightZeroResultRetries(t *testing.T) {
	caller := &fakeCaller{reply: func(string, map[string]any) (string, error) {
		return "为您找到 0 条航班", nil
	}}

	results := newTestScheduler(caller).Execute(context.Background(), []SegmentQuery{flightQuery("北京", "拉萨")})
	r := results["direct_flight"]
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "0 条航班")
	assert.Equal(t, 3, caller.callCount(provider.ToolSearchFlights))
}

// A retry that recovers mid-budget stops immediately.
func TestSchedulerFlightRecoversOnRetry(t *testing.T) {
	caller := &fakeCaller{}
	caller.reply = func(string, map[string]any) (string, error) {
		if caller.callCount(provider.ToolSearchFlights) == 1 {
			return "查询超时", nil
		}
		return goodFlightPayload, nil
	}

	results := newTestScheduler(caller).Execute(context.Background(), []SegmentQuery{flightQuery("北京", "上海")})
	assert.True(t, results["direct_flight"].Success)
	assert.Equal(t, 2, caller.callCount(provider.ToolSearchFlights))
}

func TestSchedulerTrainQuery(t *testing.T) {
	caller := &fakeCaller{}
	caller.reply = func(tool string, args map[string]any) (string, error) {
		switch tool {
		case provider.ToolStationCodes:
			return stationReply(map[string]string{"北京": "BJP", "上海": "SHH"})(tool, args)
		case provider.ToolTrainTickets:
			assert.Equal(t, "BJP", args["fromStation"])
			assert.Equal(t, "SHH", args["toStation"])
			return goodTrainPayload, nil
		}
		return "", fmt.Errorf("unexpected tool %s", tool)
	}

	date := time.Now().AddDate(0, 0, 3).Format(dateLayout)
	results := newTestScheduler(caller).Execute(context.Background(), []SegmentQuery{{
		FromCity: "北京", ToCity: "上海", Date: date,
		Mode: routecalc.ModeTrain, SegmentID: "direct_train",
	}})

	r := results["direct_train"]
	require.True(t, r.Success, r.Error)
	assert.Equal(t, goodTrainPayload, r.Data)
}

func TestSchedulerTrainUnknownStation(t *testing.T) {
	caller := &fakeCaller{reply: stationReply(map[string]string{"北京": "BJP"})}

	results := newTestScheduler(caller).Execute(context.Background(), []SegmentQuery{{
		FromCity: "北京", ToCity: "曼谷", Date: "2025-02-01",
		Mode: routecalc.ModeTrain, SegmentID: "direct_train",
	}})

	r := results["direct_train"]
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "曼谷")
	assert.Contains(t, r.Error, "站点代码")
	// The ticket tool is never reached.
	assert.Zero(t, caller.callCount(provider.ToolTrainTickets))
}

// Every query gets exactly one entry in the result map, whatever the
// pool does with ordering.
func TestSchedulerResultMapComplete(t *testing.T) {
	caller := &fakeCaller{}
	caller.reply = func(tool string, args map[string]any) (string, error) {
		switch tool {
		case provider.ToolStationCodes:
			city, _ := args["citys"].(string)
			return fmt.Sprintf(`{"%s": {"station_code": "X%s"}}`, city, city), nil
		case provider.ToolTrainTickets:
			return goodTrainPayload, nil
		case provider.ToolSearchFlights:
			return goodFlightPayload, nil
		}
		return "", fmt.Errorf("unexpected tool %s", tool)
	}

	var queries []SegmentQuery
	for i := 0; i < 30; i++ {
		queries = append(queries, SegmentQuery{
			FromCity: fmt.Sprintf("城%d", i), ToCity: "长沙", Date: "2025-02-01",
			Mode: routecalc.ModeTrain, SegmentID: fmt.Sprintf("leg1_城%d_train", i),
		})
	}
	queries = append(queries, flightQuery("北京", "长沙"))

	sched := newTestScheduler(caller)
	var progressCalls atomic.Int32
	sched.OnProgress(func(completed, total int, _ string) {
		progressCalls.Add(1)
		assert.Equal(t, 31, total)
	})

	results := sched.Execute(context.Background(), queries)
	require.Len(t, results, 31)
	for _, q := range queries {
		r, ok := results[q.SegmentID]
		require.True(t, ok, q.SegmentID)
		assert.True(t, r.Success, r.Error)
	}
	assert.Equal(t, int32(31), progressCalls.Load())
}

// Cancellation still produces a full result map, with the skipped
// queries marked failed.
func TestSchedulerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	caller := &fakeCaller{reply: func(string, map[string]any) (string, error) {
		return goodFlightPayload, nil
	}}

	queries := []SegmentQuery{
		{FromCity: "北京", ToCity: "上海", Date: "2025-02-01", Mode: routecalc.ModeTrain, SegmentID: "direct_train"},
		flightQuery("北京", "上海"),
	}
	results := newTestScheduler(caller).Execute(ctx, queries)

	require.Len(t, results, 2)
	for id, r := range results {
		assert.False(t, r.Success, id)
		assert.Equal(t, "查询已取消", r.Error, id)
	}
}
