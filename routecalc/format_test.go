package routecalc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRoutesGrouping(t *testing.T) {
	direct := RoutePlan{
		Segments:             []TransportSegment{seg(ModeTrain, "08:00", "13:28", 0, 328, 553)},
		TransferCities:       []string{},
		TotalPrice:           553,
		TotalDurationMinutes: 328,
		RouteType:            "train_direct",
		Feasible:             true,
	}
	twoLeg := RoutePlan{
		Segments: []TransportSegment{
			seg(ModeFlight, "18:00", "23:30", 0, 330, 2100),
			seg(ModeTrain, "07:05", "15:30", 0, 505, 180),
		},
		TransferCities:       []string{"北京"},
		MinTransferHours:     2,
		TotalPrice:           2480,
		TotalDurationMinutes: 1290,
		AccommodationFee:     200,
		TransferWaitMinutes:  []int{455},
		RouteType:            "flight_train",
		Feasible:             true,
	}

	report := FormatRoutes([]RoutePlan{direct, twoLeg}, "曼谷", "长治", "2025-01-20", 30)

	assert.Contains(t, report, "2025-01-20 曼谷 → 长治")
	assert.Contains(t, report, "共2个，显示前2个")
	assert.Contains(t, report, "## 一、直达方案")
	assert.Contains(t, report, "## 二、两段中转方案（1次中转）")
	assert.Contains(t, report, "### 最小换乘时间2小时版本")
	assert.Contains(t, report, "含住宿费¥200")
	assert.Contains(t, report, "中转城市: 北京")
	assert.Contains(t, report, "7小时35分")
	assert.NotContains(t, report, "三段中转")
}

// A parsed segment keeps its number, times, price and cross-day marker
// through the report.
func TestParseFormatRoundTrip(t *testing.T) {
	raw := `{"flights": [{"航班号": "MU5678", "出发时间": "21:30", "到达时间": "00:40+1", "价格": "950", "总时长": "3小时10分钟"}]}`
	segs := ParseFlightData(raw, "北京", "上海")
	require.Len(t, segs, 1)

	plan := RoutePlan{
		Segments:             segs,
		TransferCities:       []string{},
		TotalPrice:           segs[0].Price,
		TotalDurationMinutes: segs[0].DurationMinutes,
		RouteType:            "flight_direct",
		Feasible:             true,
	}
	report := FormatRoutes([]RoutePlan{plan}, "北京", "上海", "2025-01-15", 30)

	assert.Contains(t, report, "MU5678")
	assert.Contains(t, report, "21:30")
	assert.Contains(t, report, "00:40(+1天)")
	assert.Contains(t, report, "¥950")
}

func TestFormatRoutesTopN(t *testing.T) {
	var routes []RoutePlan
	for i := 0; i < 40; i++ {
		routes = append(routes, RoutePlan{
			Segments:   []TransportSegment{seg(ModeTrain, "08:00", "10:00", 0, 120, 100+i)},
			TotalPrice: 100 + i,
			RouteType:  "train_direct",
			Feasible:   true,
		})
	}
	report := FormatRoutes(routes, "甲", "乙", "2025-01-15", 0)
	assert.Contains(t, report, "共40个，显示前30个")
}

func TestRoutePlanDescriptions(t *testing.T) {
	plan := RoutePlan{
		Segments: []TransportSegment{
			{Mode: ModeFlight, DepartureCity: "曼谷", ArrivalCity: "北京"},
			{Mode: ModeTrain, DepartureCity: "北京", ArrivalCity: "长治"},
		},
	}
	assert.Equal(t, "曼谷→✈️→北京→🚄→长治", plan.Description())
	assert.Equal(t, "飞机 → 火车", plan.TypeDescription())

	direct := RoutePlan{Segments: []TransportSegment{{Mode: ModeTrain}}}
	assert.Equal(t, "直达火车", direct.TypeDescription())

	assert.True(t, strings.HasPrefix(RoutePlan{
		Segments: []TransportSegment{{Mode: ModeFlight, DepartureCity: "上海", ArrivalCity: "东京"}},
	}.Description(), "上海"))
}
