// Package hubs holds the static transfer-hub catalog and the route
// classifier that picks candidate transfer cities for a journey.
//
// The catalog is compiled in and immutable: it covers the 44 domestic
// hubs of the national hub configuration plus the international hub
// groups used for cross-border routes. All lookups are safe for
// concurrent use.
package hubs

import "sort"

// Region is a coarse geographic region used to classify cities.
type Region string

// Domestic regions.
const (
	ChinaNorth     Region = "华北"
	ChinaNortheast Region = "东北"
	ChinaEast      Region = "华东"
	ChinaCentral   Region = "华中"
	ChinaSouth     Region = "华南"
	ChinaSouthwest Region = "西南"
	ChinaNorthwest Region = "西北"
)

// International regions.
const (
	SoutheastAsia Region = "东南亚"
	EastAsia      Region = "东亚"
	SouthAsia     Region = "南亚"
	MiddleEast    Region = "中东"
	Europe        Region = "欧洲"
	NorthAmerica  Region = "北美"
	SouthAmerica  Region = "南美"
	Oceania       Region = "大洋洲"
	Africa        Region = "非洲"
	HKMacaoTaiwan Region = "港澳台"
)

// RouteType classifies an (origin, destination) pair for hub selection.
type RouteType string

const (
	RouteDomestic              RouteType = "domestic"
	RouteDomesticToSEAsia      RouteType = "domestic_to_southeast_asia"
	RouteDomesticToEastAsia    RouteType = "domestic_to_east_asia"
	RouteDomesticToLongHaul    RouteType = "domestic_to_long_haul"
	RouteSEAsiaToDomestic      RouteType = "southeast_asia_to_domestic"
	RouteEastAsiaToDomestic    RouteType = "east_asia_to_domestic"
	RouteIntlToDomestic        RouteType = "international_to_domestic"
	RouteInternational         RouteType = "international"
)

// Description returns the Chinese display name of the route type.
func (rt RouteType) Description() string {
	switch rt {
	case RouteDomestic:
		return "国内航线"
	case RouteDomesticToSEAsia:
		return "国内→东南亚"
	case RouteDomesticToEastAsia:
		return "国内→东亚"
	case RouteDomesticToLongHaul:
		return "国内→远程国际"
	case RouteSEAsiaToDomestic:
		return "东南亚→国内"
	case RouteEastAsiaToDomestic:
		return "东亚→国内"
	case RouteIntlToDomestic:
		return "远程国际→国内"
	case RouteInternational:
		return "国际航线"
	}
	return "未知"
}

// HubType describes what kind of transfer a hub city supports.
type HubType string

const (
	Aviation HubType = "aviation"
	Railway  HubType = "railway"
	AirRail  HubType = "air_rail"
)

// Hub levels, level 1 being the highest (Beijing, Shanghai, Guangzhou).
const (
	Level1 = 1
	Level2 = 2
	Level3 = 3
	Level4 = 4
)

// Air-rail tiers. Tier 1 hubs integrate airport and rail station with
// near-zero walking transfer; tier 3 hubs rely on shuttle buses.
const (
	TierNone = 0
	Tier1    = 1
	Tier2    = 2
	Tier3    = 3
)

// DualAirportInfo describes a city with two commercial airports and
// the penalty of a cross-airport transfer there.
type DualAirportInfo struct {
	Airports           []string
	CrossAirportMCT    int // minutes
	PenaltyFactor      float64
}

// TransferHub is one entry of the catalog.
type TransferHub struct {
	City            string
	AirportCodes    []string
	RailwayStations []string
	HubTypes        []HubType
	Level           int
	AirRailTier     int // TierNone when the hub is not air-rail
	Region          Region
	Description     string
}

// Supports reports whether the hub supports the given transfer type.
func (h TransferHub) Supports(t HubType) bool {
	for _, ht := range h.HubTypes {
		if ht == t {
			return true
		}
	}
	return false
}

// Minimum connect times in minutes, by transfer situation. These feed
// the feasibility checker only; user-facing transfer policies (2h/3h)
// are deliberately coarser.
const (
	MCTAirRailTier1Min    = 60
	MCTAirRailTier1Max    = 90
	MCTAirRailTier2       = 120
	MCTAirRailTier3       = 150
	MCTSameAirportFlight  = 90
	MCTCrossAirport       = 240
	MCTCrossStation       = 90
	MCTSameStationTrain   = 30
	MCTSameStationTrainMax = 60
)

// AirRailMCT returns the minimum connect time in minutes for an
// air-rail transfer at the given tier, or MCTCrossStation for hubs
// without an air-rail tier.
func AirRailMCT(tier int) int {
	switch tier {
	case Tier1:
		return MCTAirRailTier1Min
	case Tier2:
		return MCTAirRailTier2
	case Tier3:
		return MCTAirRailTier3
	}
	return MCTCrossStation
}

// HubByCity returns the catalog entry for a city, if present.
func HubByCity(city string) (TransferHub, bool) {
	h, ok := catalog[city]
	return h, ok
}

// DualAirport returns dual-airport info for a city, if it has two
// commercial airports.
func DualAirport(city string) (DualAirportInfo, bool) {
	d, ok := dualAirportCities[city]
	return d, ok
}

// AviationHubs returns all aviation hubs sorted by level. A level of 0
// returns every level.
func AviationHubs(level int) []TransferHub {
	return hubsByType(Aviation, level)
}

// RailwayHubs returns all railway hubs sorted by level. A level of 0
// returns every level.
func RailwayHubs(level int) []TransferHub {
	return hubsByType(Railway, level)
}

// AirRailHubs returns hubs supporting same-city air-rail transfer,
// sorted by (level, tier). A tier of TierNone returns every tier.
func AirRailHubs(tier int) []TransferHub {
	var out []TransferHub
	for _, h := range catalog {
		if !h.Supports(AirRail) {
			continue
		}
		if tier != TierNone && h.AirRailTier != tier {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		ti, tj := tierOrMax(out[i]), tierOrMax(out[j])
		if ti != tj {
			return ti < tj
		}
		return out[i].City < out[j].City
	})
	return out
}

func hubsByType(t HubType, level int) []TransferHub {
	var out []TransferHub
	for _, h := range catalog {
		if !h.Supports(t) {
			continue
		}
		if level != 0 && h.Level != level {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].City < out[j].City
	})
	return out
}

func tierOrMax(h TransferHub) int {
	if h.AirRailTier == TierNone {
		return 99
	}
	return h.AirRailTier
}

// RecommendedTransferCities returns up to maxCount hub cities ranked
// for the given transport filter ("flight", "train", or "all"). For
// "all" the ranking prefers low level, then hubs supporting more
// transfer types, then better air-rail tiers.
func RecommendedTransferCities(transportFilter string, maxCount int) []string {
	var hubs []TransferHub
	switch transportFilter {
	case "flight":
		hubs = AviationHubs(0)
	case "train":
		hubs = RailwayHubs(0)
	default:
		for _, h := range catalog {
			hubs = append(hubs, h)
		}
		sort.Slice(hubs, func(i, j int) bool {
			if hubs[i].Level != hubs[j].Level {
				return hubs[i].Level < hubs[j].Level
			}
			if len(hubs[i].HubTypes) != len(hubs[j].HubTypes) {
				return len(hubs[i].HubTypes) > len(hubs[j].HubTypes)
			}
			ti, tj := tierOrMax(hubs[i]), tierOrMax(hubs[j])
			if ti != tj {
				return ti < tj
			}
			return hubs[i].City < hubs[j].City
		})
	}

	cities := make([]string, 0, len(hubs))
	for _, h := range hubs {
		cities = append(cities, h.City)
	}
	if maxCount > 0 && len(cities) > maxCount {
		cities = cities[:maxCount]
	}
	return cities
}
