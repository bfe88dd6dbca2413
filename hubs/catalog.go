package hubs

// The catalog below transcribes the national comprehensive transport
// hub configuration: 10 international aviation gateways, 29 regional
// aviation hubs, and 5 railway-only hubs.

var catalog = map[string]TransferHub{
	// International aviation gateways.
	"北京": {
		City:            "北京",
		AirportCodes:    []string{"PEK", "PKX"},
		RailwayStations: []string{"北京南站", "北京西站", "北京站", "北京丰台站", "北京朝阳站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level1,
		AirRailTier:     Tier1,
		Region:          ChinaNorth,
		Description:     "华北门户，政务商务中心",
	},
	"上海": {
		City:            "上海",
		AirportCodes:    []string{"PVG", "SHA"},
		RailwayStations: []string{"上海虹桥站", "上海站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level1,
		AirRailTier:     Tier1,
		Region:          ChinaEast,
		Description:     "华东门户，经济中心",
	},
	"广州": {
		City:            "广州",
		AirportCodes:    []string{"CAN"},
		RailwayStations: []string{"广州南站", "广州站", "广州东站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level1,
		Region:          ChinaSouth,
		Description:     "华南门户",
	},
	"成都": {
		City:            "成都",
		AirportCodes:    []string{"CTU", "TFU"},
		RailwayStations: []string{"成都东站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level2,
		AirRailTier:     Tier1,
		Region:          ChinaSouthwest,
		Description:     "西南门户，双机场城市",
	},
	"深圳": {
		City:            "深圳",
		AirportCodes:    []string{"SZX"},
		RailwayStations: []string{"深圳北站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level2,
		AirRailTier:     Tier2,
		Region:          ChinaSouth,
		Description:     "粤港澳大湾区核心",
	},
	"重庆": {
		City:            "重庆",
		AirportCodes:    []string{"CKG"},
		RailwayStations: []string{"重庆北站", "重庆西站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level2,
		Region:          ChinaSouthwest,
		Description:     "西南出海通道",
	},
	"昆明": {
		City:            "昆明",
		AirportCodes:    []string{"KMG"},
		RailwayStations: []string{"昆明南站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level3,
		Region:          ChinaSouthwest,
		Description:     "面向南亚、东南亚门户",
	},
	"西安": {
		City:            "西安",
		AirportCodes:    []string{"XIY"},
		RailwayStations: []string{"西安北站", "西安站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level2,
		Region:          ChinaNorthwest,
		Description:     "连接中亚的西北门户",
	},
	"乌鲁木齐": {
		City:            "乌鲁木齐",
		AirportCodes:    []string{"URC"},
		RailwayStations: []string{"乌鲁木齐站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level3,
		Region:          ChinaNorthwest,
		Description:     "亚欧大陆核心，连接欧洲中东",
	},
	"哈尔滨": {
		City:            "哈尔滨",
		AirportCodes:    []string{"HRB"},
		RailwayStations: []string{"哈尔滨西站", "哈尔滨站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level3,
		Region:          ChinaNortheast,
		Description:     "面向东北亚、北美门户",
	},

	// Regional aviation hubs.
	"天津": {
		City:            "天津",
		AirportCodes:    []string{"TSN"},
		RailwayStations: []string{"天津站", "天津西站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level4,
		Region:          ChinaNorth,
		Description:     "京津城际交汇",
	},
	"石家庄": {
		City:            "石家庄",
		AirportCodes:    []string{"SJW"},
		RailwayStations: []string{"石家庄站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level4,
		AirRailTier:     Tier3,
		Region:          ChinaNorth,
		Description:     "京广高铁、石太客专交汇",
	},
	"太原": {
		City:         "太原",
		AirportCodes: []string{"TYN"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaNorth,
	},
	"呼和浩特": {
		City:         "呼和浩特",
		AirportCodes: []string{"HET"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaNorth,
	},
	"大连": {
		City:         "大连",
		AirportCodes: []string{"DLC"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaNortheast,
	},
	"沈阳": {
		City:            "沈阳",
		AirportCodes:    []string{"SHE"},
		RailwayStations: []string{"沈阳北站", "沈阳站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level3,
		Region:          ChinaNortheast,
		Description:     "哈大、京沈高铁枢纽",
	},
	"长春": {
		City:            "长春",
		AirportCodes:    []string{"CGQ"},
		RailwayStations: []string{"长春站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level4,
		Region:          ChinaNortheast,
		Description:     "京哈线核心节点",
	},
	"杭州": {
		City:            "杭州",
		AirportCodes:    []string{"HGH"},
		RailwayStations: []string{"杭州东站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level3,
		Region:          ChinaEast,
		Description:     "沪昆、杭甬、宁杭高铁交汇",
	},
	"南京": {
		City:            "南京",
		AirportCodes:    []string{"NKG"},
		RailwayStations: []string{"南京南站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level3,
		Region:          ChinaEast,
		Description:     "京沪、沪汉蓉、宁杭高铁交汇",
	},
	"青岛": {
		City:         "青岛",
		AirportCodes: []string{"TAO"},
		HubTypes:     []HubType{Aviation, AirRail},
		Level:        Level4,
		AirRailTier:  Tier1,
		Region:       ChinaEast,
		Description:  "综合换乘中心（济青高铁）",
	},
	"厦门": {
		City:         "厦门",
		AirportCodes: []string{"XMN"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaEast,
	},
	"宁波": {
		City:         "宁波",
		AirportCodes: []string{"NGB"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaEast,
	},
	"合肥": {
		City:            "合肥",
		AirportCodes:    []string{"HFE"},
		RailwayStations: []string{"合肥南站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level4,
		Region:          ChinaEast,
		Description:     "沪汉蓉、合福、合蚌高铁交汇",
	},
	"南昌": {
		City:            "南昌",
		AirportCodes:    []string{"KHN"},
		RailwayStations: []string{"南昌西站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level4,
		Region:          ChinaEast,
		Description:     "沪昆高铁节点",
	},
	"济南": {
		City:            "济南",
		AirportCodes:    []string{"TNA"},
		RailwayStations: []string{"济南西站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level4,
		Region:          ChinaEast,
		Description:     "京沪高铁五大始发站之一",
	},
	"温州": {
		City:         "温州",
		AirportCodes: []string{"WNZ"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaEast,
	},
	"烟台": {
		City:         "烟台",
		AirportCodes: []string{"YNT"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaEast,
	},
	"福州": {
		City:         "福州",
		AirportCodes: []string{"FOC"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaEast,
	},
	"郑州": {
		City:            "郑州",
		AirportCodes:    []string{"CGO"},
		RailwayStations: []string{"郑州东站", "郑州站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level2,
		AirRailTier:     Tier1,
		Region:          ChinaCentral,
		Description:     "京广与徐兰高铁双十字中心",
	},
	"武汉": {
		City:            "武汉",
		AirportCodes:    []string{"WUH"},
		RailwayStations: []string{"武汉站", "汉口站", "武昌站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level2,
		AirRailTier:     Tier1,
		Region:          ChinaCentral,
		Description:     "京广高铁枢纽，沪汉蓉铁路枢纽",
	},
	"长沙": {
		City:            "长沙",
		AirportCodes:    []string{"CSX"},
		RailwayStations: []string{"长沙南站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level3,
		AirRailTier:     Tier2,
		Region:          ChinaCentral,
		Description:     "京广与沪昆高铁黄金十字",
	},
	"南宁": {
		City:            "南宁",
		AirportCodes:    []string{"NNG"},
		RailwayStations: []string{"南宁东站"},
		HubTypes:        []HubType{Aviation, Railway},
		Level:           Level4,
		Region:          ChinaSouth,
		Description:     "面向东盟国际铁路通道起点",
	},
	"海口": {
		City:            "海口",
		AirportCodes:    []string{"HAK"},
		RailwayStations: []string{"美兰站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level4,
		AirRailTier:     Tier1,
		Region:          ChinaSouth,
		Description:     "地下直连（环岛高铁）",
	},
	"三亚": {
		City:            "三亚",
		AirportCodes:    []string{"SYX"},
		RailwayStations: []string{"凤凰机场站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level4,
		AirRailTier:     Tier1,
		Region:          ChinaSouth,
		Description:     "连廊连接（环岛高铁）",
	},
	"桂林": {
		City:         "桂林",
		AirportCodes: []string{"KWL"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaSouth,
	},
	"贵阳": {
		City:            "贵阳",
		AirportCodes:    []string{"KWE"},
		RailwayStations: []string{"贵阳北站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level4,
		AirRailTier:     Tier1,
		Region:          ChinaSouthwest,
		Description:     "沪昆、贵广、成贵十字交汇",
	},
	"拉萨": {
		City:         "拉萨",
		AirportCodes: []string{"LXA"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaSouthwest,
	},
	"兰州": {
		City:            "兰州",
		AirportCodes:    []string{"LHW"},
		RailwayStations: []string{"兰州西站"},
		HubTypes:        []HubType{Aviation, Railway, AirRail},
		Level:           Level4,
		AirRailTier:     Tier1,
		Region:          ChinaNorthwest,
		Description:     "徐兰高铁终点，兰新高铁起点",
	},
	"银川": {
		City:         "银川",
		AirportCodes: []string{"INC"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaNorthwest,
	},
	"西宁": {
		City:         "西宁",
		AirportCodes: []string{"XNN"},
		HubTypes:     []HubType{Aviation},
		Level:        Level4,
		Region:       ChinaNorthwest,
	},

	// Railway-only hubs.
	"徐州": {
		City:            "徐州",
		AirportCodes:    []string{"XUZ"},
		RailwayStations: []string{"徐州东站"},
		HubTypes:        []HubType{Railway},
		Level:           Level4,
		Region:          ChinaEast,
		Description:     "京沪与徐兰高铁十字交叉",
	},
	"无锡": {
		City:            "无锡",
		AirportCodes:    []string{"WUX"},
		RailwayStations: []string{"无锡站"},
		HubTypes:        []HubType{Railway},
		Level:           Level4,
		Region:          ChinaEast,
		Description:     "沪宁线核心大站",
	},
	"常州": {
		City:            "常州",
		AirportCodes:    []string{"CZX"},
		RailwayStations: []string{"常州站"},
		HubTypes:        []HubType{Railway},
		Level:           Level4,
		Region:          ChinaEast,
		Description:     "沪宁线核心大站",
	},
	"衡阳": {
		City:            "衡阳",
		RailwayStations: []string{"衡阳东站"},
		HubTypes:        []HubType{Railway},
		Level:           Level4,
		Region:          ChinaSouth,
		Description:     "京广高铁节点",
	},
	"秦皇岛": {
		City:            "秦皇岛",
		AirportCodes:    []string{"BPE"},
		RailwayStations: []string{"山海关站"},
		HubTypes:        []HubType{Railway},
		Level:           Level4,
		Region:          ChinaNortheast,
		Description:     "关内外界限咽喉",
	},
}

var dualAirportCities = map[string]DualAirportInfo{
	"北京": {Airports: []string{"PEK", "PKX"}, CrossAirportMCT: 240, PenaltyFactor: 2.0},
	"上海": {Airports: []string{"PVG", "SHA"}, CrossAirportMCT: 240, PenaltyFactor: 2.0},
	"成都": {Airports: []string{"CTU", "TFU"}, CrossAirportMCT: 200, PenaltyFactor: 2.0},
}
