package hubs

import (
	"sort"
	"strings"
)

// cityRegion maps known city names to their region. Unknown cities are
// treated as domestic by the classifier.
var cityRegion = map[string]Region{
	// 华北
	"北京": ChinaNorth, "天津": ChinaNorth, "石家庄": ChinaNorth,
	"太原": ChinaNorth, "呼和浩特": ChinaNorth,
	// 东北
	"沈阳": ChinaNortheast, "大连": ChinaNortheast, "长春": ChinaNortheast,
	"哈尔滨": ChinaNortheast, "秦皇岛": ChinaNortheast,
	// 华东
	"上海": ChinaEast, "南京": ChinaEast, "杭州": ChinaEast,
	"合肥": ChinaEast, "福州": ChinaEast, "南昌": ChinaEast,
	"济南": ChinaEast, "青岛": ChinaEast, "厦门": ChinaEast,
	"宁波": ChinaEast, "温州": ChinaEast, "烟台": ChinaEast,
	"徐州": ChinaEast, "无锡": ChinaEast, "常州": ChinaEast,
	// 华中
	"郑州": ChinaCentral, "武汉": ChinaCentral, "长沙": ChinaCentral,
	// 华南
	"广州": ChinaSouth, "深圳": ChinaSouth, "南宁": ChinaSouth,
	"海口": ChinaSouth, "三亚": ChinaSouth, "桂林": ChinaSouth,
	"衡阳": ChinaSouth,
	// 西南
	"重庆": ChinaSouthwest, "成都": ChinaSouthwest, "贵阳": ChinaSouthwest,
	"昆明": ChinaSouthwest, "拉萨": ChinaSouthwest,
	// 西北
	"西安": ChinaNorthwest, "兰州": ChinaNorthwest, "西宁": ChinaNorthwest,
	"银川": ChinaNorthwest, "乌鲁木齐": ChinaNorthwest,

	// 东南亚
	"曼谷": SoutheastAsia, "新加坡": SoutheastAsia, "吉隆坡": SoutheastAsia,
	"雅加达": SoutheastAsia, "马尼拉": SoutheastAsia, "河内": SoutheastAsia,
	"胡志明市": SoutheastAsia, "金边": SoutheastAsia, "万象": SoutheastAsia,
	"仰光": SoutheastAsia, "清迈": SoutheastAsia, "普吉岛": SoutheastAsia,
	"巴厘岛": SoutheastAsia, "岘港": SoutheastAsia, "暹粒": SoutheastAsia,

	// 东亚
	"东京": EastAsia, "大阪": EastAsia, "名古屋": EastAsia,
	"福冈": EastAsia, "札幌": EastAsia, "冲绳": EastAsia,
	"首尔": EastAsia, "釜山": EastAsia, "济州岛": EastAsia,

	// 港澳台
	"香港": HKMacaoTaiwan, "中国香港": HKMacaoTaiwan,
	"澳门": HKMacaoTaiwan, "中国澳门": HKMacaoTaiwan,
	"台北": HKMacaoTaiwan, "中国台北": HKMacaoTaiwan,
	"高雄": HKMacaoTaiwan, "中国高雄": HKMacaoTaiwan,

	// 南亚
	"新德里": SouthAsia, "孟买": SouthAsia, "班加罗尔": SouthAsia,
	"科伦坡": SouthAsia, "马尔代夫": SouthAsia, "加德满都": SouthAsia,

	// 中东
	"迪拜": MiddleEast, "阿布扎比": MiddleEast, "多哈": MiddleEast,
	"利雅得": MiddleEast, "伊斯坦布尔": MiddleEast,

	// 欧洲
	"伦敦": Europe, "巴黎": Europe, "法兰克福": Europe,
	"阿姆斯特丹": Europe, "慕尼黑": Europe, "苏黎世": Europe,
	"罗马": Europe, "米兰": Europe, "马德里": Europe,
	"巴塞罗那": Europe, "维也纳": Europe, "莫斯科": Europe,
	"赫尔辛基": Europe,

	// 北美
	"纽约": NorthAmerica, "洛杉矶": NorthAmerica, "旧金山": NorthAmerica,
	"芝加哥": NorthAmerica, "西雅图": NorthAmerica, "波士顿": NorthAmerica,
	"华盛顿": NorthAmerica, "温哥华": NorthAmerica, "多伦多": NorthAmerica,

	// 大洋洲
	"悉尼": Oceania, "墨尔本": Oceania, "奥克兰": Oceania,

	// 非洲
	"开罗": Africa, "约翰内斯堡": Africa,
}

var chineseRegions = map[Region]bool{
	ChinaNorth:     true,
	ChinaNortheast: true,
	ChinaEast:      true,
	ChinaCentral:   true,
	ChinaSouth:     true,
	ChinaSouthwest: true,
	ChinaNorthwest: true,
}

// regionCities is the deterministic iteration order for fuzzy lookups.
var regionCities = func() []string {
	cities := make([]string, 0, len(cityRegion))
	for c := range cityRegion {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}()

// CityRegion returns the region of a city. Besides exact matches it
// accepts names carrying a suffix such as an airport name
// ("曼谷素万那普" resolves to 曼谷). The second return is false for
// cities the map does not know.
func CityRegion(city string) (Region, bool) {
	if city == "" {
		return "", false
	}
	if r, ok := cityRegion[city]; ok {
		return r, true
	}
	for _, name := range regionCities {
		if strings.Contains(city, name) || strings.Contains(name, city) {
			return cityRegion[name], true
		}
	}
	return "", false
}

// IsChineseDomestic reports whether the city lies in mainland China.
// Unknown cities are assumed domestic.
func IsChineseDomestic(city string) bool {
	r, ok := CityRegion(city)
	if !ok {
		return true
	}
	return chineseRegions[r]
}

// DetectRouteType classifies the (origin, destination) pair.
// Hong Kong, Macao and Taiwan are folded into the East-Asia classes.
func DetectRouteType(fromCity, toCity string) RouteType {
	fromDomestic := IsChineseDomestic(fromCity)
	toDomestic := IsChineseDomestic(toCity)

	if fromDomestic && toDomestic {
		return RouteDomestic
	}

	if fromDomestic && !toDomestic {
		toRegion, _ := CityRegion(toCity)
		switch toRegion {
		case SoutheastAsia:
			return RouteDomesticToSEAsia
		case EastAsia, HKMacaoTaiwan:
			return RouteDomesticToEastAsia
		}
		return RouteDomesticToLongHaul
	}

	if !fromDomestic && toDomestic {
		fromRegion, _ := CityRegion(fromCity)
		switch fromRegion {
		case SoutheastAsia:
			return RouteSEAsiaToDomestic
		case EastAsia, HKMacaoTaiwan:
			return RouteEastAsiaToDomestic
		}
		return RouteIntlToDomestic
	}

	return RouteInternational
}

