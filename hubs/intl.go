package hubs

import (
	"sort"
	"strings"
)

// International hub group names. Groups are referenced by the route
// strategy table and expand to ordered city lists.
const (
	GroupAsiaGateway   = "亚洲门户"
	GroupSEAsia        = "东南亚枢纽"
	GroupMiddleEast    = "中东枢纽"
	GroupEurope        = "欧洲枢纽"
	GroupNorthAmerica  = "北美枢纽"
	GroupOceania       = "大洋洲枢纽"
	GroupSouthAsia     = "南亚枢纽"
	GroupAfrica        = "非洲枢纽"
	GroupLatinAmerica  = "中南美枢纽"
	GroupOutboundGates = "国内出境门户"
	GroupInboundGates  = "国内入境门户"
)

var internationalHubGroups = map[string][]string{
	GroupAsiaGateway: {
		"香港", "东京", "首尔", "台北", "新加坡",
		"大阪", "名古屋", "福冈", "釜山", "澳门",
	},
	GroupSEAsia: {
		"曼谷", "新加坡", "吉隆坡", "雅加达", "马尼拉",
		"河内", "胡志明市", "金边", "万象", "仰光",
		"清迈", "普吉岛", "巴厘岛", "岘港", "暹粒",
	},
	GroupMiddleEast: {
		"迪拜", "多哈", "阿布扎比", "利雅得", "吉达",
		"科威特", "巴林", "马斯喀特", "伊斯坦布尔", "安曼",
	},
	GroupEurope: {
		"伦敦", "巴黎", "法兰克福", "阿姆斯特丹", "慕尼黑",
		"苏黎世", "罗马", "米兰", "马德里", "巴塞罗那",
		"维也纳", "布鲁塞尔", "赫尔辛基", "莫斯科", "圣彼得堡",
		"斯德哥尔摩", "哥本哈根", "华沙", "布拉格", "都柏林",
	},
	GroupNorthAmerica: {
		"洛杉矶", "旧金山", "西雅图", "温哥华", "纽约",
		"芝加哥", "波士顿", "华盛顿", "达拉斯", "休斯顿",
		"亚特兰大", "迈阿密", "多伦多", "蒙特利尔", "丹佛",
	},
	GroupOceania: {
		"悉尼", "墨尔本", "布里斯班", "珀斯", "奥克兰",
		"斐济", "关岛", "檀香山",
	},
	GroupSouthAsia: {
		"新德里", "孟买", "班加罗尔", "科伦坡", "马尔代夫",
		"加德满都", "达卡", "卡拉奇",
	},
	GroupAfrica: {
		"开罗", "约翰内斯堡", "开普敦", "内罗毕", "卡萨布兰卡",
		"亚的斯亚贝巴",
	},
	GroupLatinAmerica: {
		"墨西哥城", "圣保罗", "布宜诺斯艾利斯", "利马",
		"波哥大", "巴拿马城",
	},
	GroupOutboundGates: {
		"北京", "上海", "广州", "香港", "成都",
		"昆明", "深圳", "西安", "重庆", "杭州",
	},
	GroupInboundGates: {
		"北京", "上海", "广州", "深圳", "成都",
		"西安", "杭州", "南京",
	},
}

// HubGroup returns the ordered city list of a named international hub
// group.
func HubGroup(name string) []string {
	cities := internationalHubGroups[name]
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// routeStrategy drives hub selection per route type.
type routeStrategy struct {
	hubGroups           []string
	recommendedDomestic []string
	intlFirst           bool // international groups ahead of domestic gates
}

var routeStrategies = map[RouteType]routeStrategy{
	RouteDomestic: {},
	RouteDomesticToSEAsia: {
		hubGroups:           []string{GroupSEAsia, GroupAsiaGateway, GroupOutboundGates},
		recommendedDomestic: []string{"广州", "昆明", "深圳", "香港", "南宁", "成都", "重庆"},
	},
	RouteDomesticToEastAsia: {
		hubGroups:           []string{GroupAsiaGateway, GroupOutboundGates},
		recommendedDomestic: []string{"上海", "北京", "青岛", "大连", "沈阳", "天津", "杭州", "南京"},
	},
	RouteDomesticToLongHaul: {
		hubGroups: []string{
			GroupAsiaGateway, GroupMiddleEast, GroupEurope,
			GroupNorthAmerica, GroupOceania, GroupOutboundGates,
		},
		intlFirst: true,
	},
	RouteSEAsiaToDomestic: {
		hubGroups:           []string{GroupSEAsia, GroupAsiaGateway, GroupInboundGates},
		recommendedDomestic: []string{"广州", "深圳", "昆明", "南宁", "香港", "成都", "上海", "北京"},
		intlFirst:           true,
	},
	RouteEastAsiaToDomestic: {
		hubGroups:           []string{GroupAsiaGateway, GroupInboundGates},
		recommendedDomestic: []string{"上海", "北京", "青岛", "大连", "沈阳", "天津", "杭州", "南京"},
		intlFirst:           true,
	},
	RouteIntlToDomestic: {
		hubGroups: []string{
			GroupAsiaGateway, GroupMiddleEast, GroupEurope,
			GroupNorthAmerica, GroupInboundGates,
		},
		recommendedDomestic: []string{"北京", "上海", "广州", "深圳", "成都", "西安", "杭州", "南京"},
		intlFirst:           true,
	},
	RouteInternational: {
		hubGroups: []string{
			GroupAsiaGateway, GroupMiddleEast, GroupEurope,
			GroupNorthAmerica, GroupOceania, GroupSouthAsia,
			GroupAfrica, GroupLatinAmerica,
		},
		intlFirst: true,
	},
}

// internationalCities lists cities with no Chinese railway station
// code; train segments touching any of them are impossible.
var internationalCities = map[string]bool{}

var internationalCityList = []string{
	// 东南亚
	"曼谷", "新加坡", "吉隆坡", "雅加达", "马尼拉", "河内", "胡志明市",
	"金边", "万象", "仰光", "清迈", "普吉岛", "芭提雅", "苏梅岛",
	"巴厘岛", "岘港", "芽庄", "暹粒", "槟城", "兰卡威", "沙巴", "文莱",
	// 东亚
	"东京", "大阪", "名古屋", "福冈", "札幌", "冲绳",
	"首尔", "釜山", "济州岛", "乌兰巴托",
	// 南亚
	"新德里", "孟买", "班加罗尔", "加尔各答", "金奈",
	"科伦坡", "马尔代夫", "加德满都", "达卡", "卡拉奇", "伊斯兰堡",
	// 中东
	"迪拜", "阿布扎比", "多哈", "利雅得", "吉达", "科威特", "巴林",
	"马斯喀特", "特拉维夫", "安曼", "贝鲁特", "伊斯坦布尔", "安卡拉", "德黑兰",
	// 欧洲
	"伦敦", "巴黎", "法兰克福", "阿姆斯特丹", "慕尼黑", "苏黎世",
	"罗马", "米兰", "马德里", "巴塞罗那", "维也纳", "布鲁塞尔", "日内瓦",
	"莫斯科", "圣彼得堡", "赫尔辛基", "斯德哥尔摩", "哥本哈根", "奥斯陆",
	"华沙", "布拉格", "布达佩斯", "雅典", "里斯本", "都柏林", "爱丁堡", "曼彻斯特",
	// 北美
	"纽约", "洛杉矶", "旧金山", "芝加哥", "西雅图", "波士顿",
	"华盛顿", "达拉斯", "休斯顿", "亚特兰大", "迈阿密", "拉斯维加斯",
	"檀香山", "丹佛", "凤凰城", "底特律", "费城", "明尼阿波利斯",
	"温哥华", "多伦多", "蒙特利尔", "卡尔加里", "渥太华",
	// 中南美洲
	"墨西哥城", "坎昆", "圣保罗", "里约热内卢", "布宜诺斯艾利斯",
	"圣地亚哥", "利马", "波哥大", "巴拿马城", "哈瓦那",
	// 大洋洲
	"悉尼", "墨尔本", "布里斯班", "珀斯", "阿德莱德",
	"奥克兰", "惠灵顿", "基督城", "斐济", "关岛", "塞班岛", "帕劳",
	// 非洲
	"开罗", "约翰内斯堡", "开普敦", "内罗毕", "卡萨布兰卡",
	"拉各斯", "亚的斯亚贝巴", "毛里求斯", "塞舌尔",
}

func init() {
	for _, c := range internationalCityList {
		internationalCities[c] = true
	}
	sort.Strings(internationalCityList)
}

// IsInternationalCity reports whether the city cannot be reached by
// Chinese rail. Matching is exact first, then substring in both
// directions so that airport-qualified names like "曼谷素万那普" still
// count as 曼谷. The two-way substring rule can false-positive on
// compound names; that asymmetry is intentional and mirrors the
// station-code provider's own fuzziness.
func IsInternationalCity(city string) bool {
	if city == "" {
		return false
	}
	if internationalCities[city] {
		return true
	}
	for _, intl := range internationalCityList {
		if strings.Contains(city, intl) || strings.Contains(intl, city) {
			return true
		}
	}
	return false
}
