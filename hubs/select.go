package hubs

import (
	"fmt"
	"strings"
)

// DefaultMaxHubs bounds the candidate list returned by HubsForRoute
// when the caller passes maxCount <= 0.
const DefaultMaxHubs = 15

// HubsForRoute classifies the route and returns the candidate transfer
// cities for it, the detected route type, and a short tip line for UI
// display. transportFilter is "all", "flight" or "train" and only
// narrows the domestic catalog. With useIntlHubs false, mixed routes
// fall back to the domestic gateway list alone; a pure international
// route always draws on the international groups.
//
// The returned list is deduplicated preserving order, never contains
// origin or destination, and holds at most maxCount cities.
func HubsForRoute(origin, destination string, maxCount int, transportFilter string, useIntlHubs bool) ([]string, RouteType, string) {
	if maxCount <= 0 {
		maxCount = DefaultMaxHubs
	}

	routeType := DetectRouteType(origin, destination)
	strategy := routeStrategies[routeType]

	var hubs []string
	var tip string

	switch routeType {
	case RouteDomestic:
		hubs = RecommendedTransferCities(transportFilter, 0)
		hubs = finalize(hubs, origin, destination, maxCount)
		tip = fmt.Sprintf("国内航线，使用 %d 个国内枢纽", len(hubs))
		return hubs, routeType, tip

	case RouteInternational:
		hubs = expandGroups(strategy.hubGroups)
		total := len(dedupe(hubs))
		hubs = finalize(hubs, origin, destination, maxCount)
		tip = fmt.Sprintf("国际航线，共有 %d 个全球枢纽可用，已选择 %d 个", total, len(hubs))
		return hubs, routeType, tip
	}

	// Mixed domestic/international route.
	if !useIntlHubs {
		hubs = finalize(strategy.recommendedDomestic, origin, destination, maxCount)
		tip = fmt.Sprintf("%s（仅国内中转），使用 %d 个国内门户", routeType.Description(), len(hubs))
		return hubs, routeType, tip
	}

	intl := expandGroups(strategy.hubGroups)
	var merged []string
	if strategy.intlFirst {
		merged = append(merged, intl...)
		merged = append(merged, strategy.recommendedDomestic...)
	} else {
		merged = append(merged, strategy.recommendedDomestic...)
		merged = append(merged, intl...)
	}
	total := len(dedupe(merged))
	hubs = finalize(merged, origin, destination, maxCount)
	tip = fmt.Sprintf("%s，共有 %d 个枢纽可用，已选择 %d 个", routeType.Description(), total, len(hubs))
	return hubs, routeType, tip
}

// expandGroups flattens the strategy's hub groups round-robin: the
// first member of every group, then the second of every group, and so
// on. Truncation to maxCount then keeps a slice of each group instead
// of exhausting the first one.
func expandGroups(groups []string) []string {
	pools := make([][]string, 0, len(groups))
	longest := 0
	for _, g := range groups {
		cities := internationalHubGroups[g]
		pools = append(pools, cities)
		if len(cities) > longest {
			longest = len(cities)
		}
	}

	var out []string
	for i := 0; i < longest; i++ {
		for _, pool := range pools {
			if i < len(pool) {
				out = append(out, pool[i])
			}
		}
	}
	return out
}

func dedupe(cities []string) []string {
	seen := make(map[string]bool, len(cities))
	out := make([]string, 0, len(cities))
	for _, c := range cities {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// finalize dedupes preserving order, drops origin and destination, and
// truncates to maxCount.
func finalize(cities []string, origin, destination string, maxCount int) []string {
	out := make([]string, 0, len(cities))
	seen := make(map[string]bool, len(cities))
	for _, c := range cities {
		if c == origin || c == destination || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) > maxCount {
		out = out[:maxCount]
	}
	return out
}

// RouteInfo summarises a classified route for UI display.
type RouteInfo struct {
	RouteType       RouteType `json:"route_type"`
	RouteTypeName   string    `json:"route_type_name"`
	IsInternational bool      `json:"is_international"`
	RecommendedHubs []string  `json:"recommended_hubs"`
	HubCount        int       `json:"hub_count"`
	TipMessage      string    `json:"tip_message"`
}

// RouteInfoFor builds the route summary using the same selector
// options as HubsForRoute.
func RouteInfoFor(origin, destination string, maxCount int, transportFilter string, useIntlHubs bool) RouteInfo {
	cities, rt, tip := HubsForRoute(origin, destination, maxCount, transportFilter, useIntlHubs)
	return RouteInfo{
		RouteType:       rt,
		RouteTypeName:   rt.Description(),
		IsInternational: rt != RouteDomestic,
		RecommendedHubs: cities,
		HubCount:        len(cities),
		TipMessage:      tip,
	}
}

// RegionalStrategy is an advisory fallback pattern for a congested
// primary hub.
type RegionalStrategy struct {
	Name         string
	Description  string
	Primary      string
	Alternatives []string
}

// RegionalStrategies lists advisory patterns rendered into the hub
// briefing. They do not affect hub selection.
var RegionalStrategies = []RegionalStrategy{
	{
		Name:         "华北减压阀",
		Description:  "北京票价过高或售罄时的替代方案",
		Primary:      "北京",
		Alternatives: []string{"天津（京津城际30分钟）", "石家庄（京石高铁）"},
	},
	{
		Name:         "长三角多点互备",
		Description:  "上海机票昂贵时的替代方案",
		Primary:      "上海",
		Alternatives: []string{"杭州（高铁至上海）", "无锡（高铁至上海）", "南京（高铁至上海）"},
	},
	{
		Name:         "西北扇形辐射",
		Description:  "前往新疆、青海、甘肃",
		Alternatives: []string{"西安", "兰州", "乌鲁木齐"},
	},
}

// TransferPromptInfo renders the hub briefing text injected into the
// conversational system prompt. transportFilter narrows the briefing
// to one mode; anything else produces the combined version.
func TransferPromptInfo(transportFilter string) string {
	switch transportFilter {
	case "flight":
		cities := RecommendedTransferCities("flight", 15)
		return fmt.Sprintf(`【推荐航空中转枢纽】
优先级从高到低：%s

【空铁联运枢纽】（可从飞机转高铁）
第一梯队（零换乘，60-90分钟）：上海虹桥、北京大兴、郑州新郑、海口美兰、成都双流/天府、贵阳龙洞堡
第二梯队（轨道连接，120分钟）：长沙黄花、深圳宝安`, strings.Join(cities, "、"))

	case "train":
		cities := RecommendedTransferCities("train", 15)
		return fmt.Sprintf(`【推荐铁路中转枢纽】
优先级从高到低：%s

【重要铁路节点说明】
- 郑州东站：京广与徐兰高铁双十字中心
- 徐州东站：京沪与徐兰高铁十字交叉
- 武汉站/汉口站：京广与沪汉蓉交汇
- 长沙南站：京广与沪昆高铁黄金十字
- 南京南站：京沪、沪汉蓉、宁杭高铁交汇
- 贵阳北站：沪昆、贵广、成贵十字交汇`, strings.Join(cities, "、"))
	}

	aviation := RecommendedTransferCities("flight", 10)
	railway := RecommendedTransferCities("train", 10)
	var airRail []string
	for _, h := range AirRailHubs(Tier1) {
		airRail = append(airRail, h.City)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "【推荐航空中转枢纽】\n%s\n\n", strings.Join(aviation, "、"))
	fmt.Fprintf(&b, "【推荐铁路中转枢纽】\n%s\n\n", strings.Join(railway, "、"))
	fmt.Fprintf(&b, "【空铁联运枢纽】（飞机↔高铁零换乘或快速换乘）\n第一梯队（60-90分钟换乘）：%s\n\n", strings.Join(airRail, "、"))
	b.WriteString("【双机场城市提醒】\n- 北京（首都PEK/大兴PKX）、上海（浦东PVG/虹桥SHA）、成都（双流CTU/天府TFU）\n- 跨机场中转需预留至少4小时，惩罚系数2.0x\n\n")
	b.WriteString("【区域中转策略】\n")
	for _, s := range RegionalStrategies {
		if s.Primary != "" {
			fmt.Fprintf(&b, "- %s：%s，可选 %s\n", s.Name, s.Description, strings.Join(s.Alternatives, "、"))
		} else {
			fmt.Fprintf(&b, "- %s：%s，优先 %s\n", s.Name, s.Description, strings.Join(s.Alternatives, " → "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
