package routecalc

import (
	"fmt"
	"strings"
)

// DefaultTopN bounds the number of plans the report considers.
const DefaultTopN = 30

// FormatRoutes renders the feasible plans as a grouped Markdown-like
// report: direct plans first, then two-leg and three-leg plans split
// by minimum transfer policy. topN <= 0 falls back to DefaultTopN.
func FormatRoutes(routes []RoutePlan, origin, destination, date string, topN int) string {
	if topN <= 0 {
		topN = DefaultTopN
	}
	shown := len(routes)
	if shown > topN {
		shown = topN
	}

	var lines []string
	lines = append(lines,
		fmt.Sprintf("# %s %s → %s 出行方案计算结果", date, origin, destination),
		"",
		fmt.Sprintf("以下是程序计算出的可行方案（共%d个，显示前%d个）：", len(routes), shown),
		"",
	)

	var direct, twoLeg, threeLeg []RoutePlan
	for _, r := range routes[:shown] {
		switch len(r.Segments) {
		case 1:
			direct = append(direct, r)
		case 2:
			twoLeg = append(twoLeg, r)
		case 3:
			threeLeg = append(threeLeg, r)
		}
	}

	if len(direct) > 0 {
		lines = append(lines, "## 一、直达方案", "")
		for i, r := range truncate(direct, 5) {
			lines = append(lines, formatSingleRoute(r, i+1)...)
		}
		lines = append(lines, "")
	}

	if len(twoLeg) > 0 {
		lines = append(lines, "## 二、两段中转方案（1次中转）", "")
		lines = append(lines, policySections(twoLeg, 5)...)
	}

	if len(threeLeg) > 0 {
		lines = append(lines, "## 三、三段中转方案（2次中转）", "")
		lines = append(lines, policySections(threeLeg, 3)...)
	}

	lines = append(lines,
		"---",
		"",
		"## 请根据以上计算结果，为用户推荐：",
		"1. **最便宜方案** - 总价最低",
		"2. **最快方案** - 总时长最短",
		"3. **性价比最高方案** - 综合价格和时间",
		"",
		"请用自然语言描述推荐的方案，包括具体的航班号/车次、时间、价格等信息。",
	)

	return strings.Join(lines, "\n")
}

// policySections renders the 2-hour and 3-hour subsections of a
// multi-leg family.
func policySections(routes []RoutePlan, perSection int) []string {
	var lines []string
	for _, hours := range []int{2, 3} {
		var group []RoutePlan
		for _, r := range routes {
			if r.MinTransferHours == hours {
				group = append(group, r)
			}
		}
		if len(group) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("### 最小换乘时间%d小时版本", hours))
		for i, r := range truncate(group, perSection) {
			lines = append(lines, formatSingleRoute(r, i+1)...)
		}
		lines = append(lines, "")
	}
	return lines
}

func truncate(routes []RoutePlan, n int) []RoutePlan {
	if len(routes) > n {
		return routes[:n]
	}
	return routes
}

func formatSingleRoute(route RoutePlan, index int) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("**方案%d**: %s", index, route.Description()))
	lines = append(lines, fmt.Sprintf("- 类型: %s", route.TypeDescription()))

	priceLine := fmt.Sprintf("- 总价: ¥%d", route.TotalPrice)
	if route.AccommodationFee > 0 {
		priceLine += fmt.Sprintf("（含住宿费¥%d）", route.AccommodationFee)
	}
	lines = append(lines, priceLine)
	lines = append(lines, fmt.Sprintf("- 总时长: %d小时%d分钟",
		route.TotalDurationMinutes/60, route.TotalDurationMinutes%60))

	if len(route.TransferCities) > 0 {
		lines = append(lines, fmt.Sprintf("- 中转城市: %s", strings.Join(route.TransferCities, " → ")))
		waits := make([]string, len(route.TransferWaitMinutes))
		for i, w := range route.TransferWaitMinutes {
			waits[i] = formatWait(w)
		}
		lines = append(lines, fmt.Sprintf("- 中转等待: %s", strings.Join(waits, ", ")))
	}

	lines = append(lines, "- 行程详情:")
	for i, seg := range route.Segments {
		icon := "🚄"
		if seg.Mode == ModeFlight {
			icon = "✈️"
		}
		crossDay := ""
		if seg.CrossDays > 0 {
			crossDay = fmt.Sprintf("(+%d天)", seg.CrossDays)
		}
		inner := ""
		if seg.FlightKind == "中转" && seg.InnerTransferCity != "" {
			inner = fmt.Sprintf(" [经%s停留%s]", seg.InnerTransferCity, seg.InnerTransferWait)
		}
		depPlace := seg.DepartureStation
		if depPlace == "" {
			depPlace = seg.DepartureCity
		}
		arrPlace := seg.ArrivalStation
		if arrPlace == "" {
			arrPlace = seg.ArrivalCity
		}
		lines = append(lines, fmt.Sprintf("  %d. %s %s: %s(%s) → %s%s(%s) | ¥%d%s",
			i+1, icon, seg.Number,
			seg.DepartureTime, depPlace,
			seg.ArrivalTime, crossDay, arrPlace,
			seg.Price, inner))
	}

	lines = append(lines, "")
	return lines
}
