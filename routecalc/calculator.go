package routecalc

import (
	"fmt"
	"sort"
	"strings"
)

// SegmentPayload is one raw provider reply awaiting parsing, tagged
// with the mode it was queried for.
type SegmentPayload struct {
	Mode Mode
	Raw  string
}

// Calculator enumerates all viable route plans from parsed segments.
type Calculator struct {
	accommodationThresholdHours int
	accommodationEnabled        bool
	transferPolicies            []int
}

// NewCalculator creates a calculator. thresholdHours is the wait above
// which a night-window overlap charges a hotel; enabled false turns
// accommodation fees off entirely. Multi-leg plans are built under
// both the 2-hour and 3-hour policies unless SetTransferPolicies
// narrows them.
func NewCalculator(thresholdHours int, enabled bool) *Calculator {
	if thresholdHours <= 0 {
		thresholdHours = 6
	}
	return &Calculator{
		accommodationThresholdHours: thresholdHours,
		accommodationEnabled:        enabled,
		transferPolicies:            []int{2, 3},
	}
}

// SetTransferPolicies restricts the minimum-transfer variants built
// for multi-leg plans. Only 2 and 3 hours are supported; anything
// else is ignored, and an empty selection keeps the default pair.
func (c *Calculator) SetTransferPolicies(hours []int) {
	var policies []int
	for _, h := range hours {
		if h == 2 || h == 3 {
			policies = append(policies, h)
		}
	}
	if len(policies) > 0 {
		c.transferPolicies = policies
	}
}

// Each middle pool contributes at most this many candidates to the
// three-leg enumeration; anything more explodes combinatorially with
// no gain in plan quality.
const threeLegPoolCap = 3

// CalculateAllRoutes parses every raw payload and enumerates direct,
// two-leg and three-leg plans. Two- and three-leg families are built
// twice, under the 2-hour and 3-hour minimum transfer policies. Only
// feasible plans are returned, sorted by total price then duration.
func (c *Calculator) CalculateAllRoutes(origin, destination, date string, segmentData map[string]SegmentPayload, hubCities []string) []RoutePlan {
	parsed := c.parseAllSegments(segmentData, origin, destination, hubCities)

	var all []RoutePlan
	all = append(all, c.directRoutes(parsed, origin, destination)...)
	for _, minTransferHours := range c.transferPolicies {
		all = append(all, c.twoLegRoutes(parsed, origin, destination, hubCities, date, minTransferHours)...)
	}
	for _, minTransferHours := range c.transferPolicies {
		all = append(all, c.threeLegRoutes(parsed, origin, destination, hubCities, date, minTransferHours)...)
	}

	feasible := all[:0]
	for _, r := range all {
		if r.Feasible {
			feasible = append(feasible, r)
		}
	}
	sort.SliceStable(feasible, func(i, j int) bool {
		if feasible[i].TotalPrice != feasible[j].TotalPrice {
			return feasible[i].TotalPrice < feasible[j].TotalPrice
		}
		return feasible[i].TotalDurationMinutes < feasible[j].TotalDurationMinutes
	})
	return feasible
}

func segmentKey(from, to string, mode Mode) string {
	return fmt.Sprintf("%s_%s_%s", from, to, mode)
}

// parseAllSegments parses every payload into pools keyed by
// (from, to, mode). Payloads are processed in sorted segmentId order
// so pool contents are deterministic.
func (c *Calculator) parseAllSegments(segmentData map[string]SegmentPayload, origin, destination string, hubCities []string) map[string][]TransportSegment {
	ids := make([]string, 0, len(segmentData))
	for id := range segmentData {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parsed := make(map[string][]TransportSegment)
	for _, id := range ids {
		payload := segmentData[id]
		from, to := citiesFromSegmentID(id, origin, destination, hubCities)
		if from == "" || to == "" {
			continue
		}

		var segments []TransportSegment
		if payload.Mode == ModeFlight {
			segments = ParseFlightData(payload.Raw, from, to)
		} else {
			segments = ParseTrainData(payload.Raw, from, to)
		}

		key := segmentKey(from, to, payload.Mode)
		parsed[key] = append(parsed[key], segments...)
	}
	return parsed
}

// citiesFromSegmentID recovers the endpoints of a segment from its id:
// direct_<mode>, leg1_<hub>_<mode>, leg2_<hub>_<mode>, or the generic
// <from>_<to>_<mode>.
func citiesFromSegmentID(segmentID, origin, destination string, hubCities []string) (string, string) {
	parts := strings.Split(segmentID, "_")

	switch {
	case parts[0] == "direct":
		return origin, destination

	case parts[0] == "leg1" && len(parts) >= 3:
		return origin, matchHub(parts[1], hubCities)

	case parts[0] == "leg2" && len(parts) >= 3:
		return matchHub(parts[1], hubCities), destination
	}

	if len(parts) >= 3 {
		mode := parts[len(parts)-1]
		if mode == string(ModeFlight) || mode == string(ModeTrain) {
			cityParts := parts[:len(parts)-1]
			known := append([]string{origin, destination}, hubCities...)
			for i := 1; i < len(cityParts); i++ {
				from := strings.Join(cityParts[:i], "_")
				to := strings.Join(cityParts[i:], "_")
				fromMatch := canonicalCity(from, known)
				toMatch := canonicalCity(to, known)
				if fromMatch != "" && toMatch != "" {
					return fromMatch, toMatch
				}
			}
		}
	}

	return "", ""
}

func matchHub(hub string, hubCities []string) string {
	for _, city := range hubCities {
		if city == hub || strings.EqualFold(city, hub) {
			return city
		}
	}
	return hub
}

func canonicalCity(name string, known []string) string {
	for _, c := range known {
		if c == name || strings.Contains(c, name) || strings.Contains(name, c) {
			return c
		}
	}
	return ""
}

func (c *Calculator) directRoutes(parsed map[string][]TransportSegment, origin, destination string) []RoutePlan {
	var routes []RoutePlan
	for _, mode := range []Mode{ModeFlight, ModeTrain} {
		for _, seg := range parsed[segmentKey(origin, destination, mode)] {
			if seg.Price <= 0 {
				continue
			}
			routes = append(routes, RoutePlan{
				Segments:             []TransportSegment{seg},
				TransferCities:       []string{},
				MinTransferHours:     0,
				TotalPrice:           seg.Price,
				TotalDurationMinutes: seg.DurationMinutes,
				TransferWaitMinutes:  []int{},
				RouteType:            string(mode) + "_direct",
				Feasible:             true,
			})
		}
	}
	return routes
}

var modePairs = [][2]Mode{
	{ModeFlight, ModeFlight},
	{ModeFlight, ModeTrain},
	{ModeTrain, ModeFlight},
	{ModeTrain, ModeTrain},
}

func (c *Calculator) twoLegRoutes(parsed map[string][]TransportSegment, origin, destination string, hubCities []string, date string, minTransferHours int) []RoutePlan {
	var routes []RoutePlan
	for _, hub := range hubCities {
		for _, combo := range modePairs {
			pool1 := parsed[segmentKey(origin, hub, combo[0])]
			pool2 := parsed[segmentKey(hub, destination, combo[1])]

			for _, seg1 := range pool1 {
				if seg1.Price <= 0 {
					continue
				}
				for _, seg2 := range pool2 {
					if seg2.Price <= 0 {
						continue
					}

					feasible, wait, reason := checkTransferFeasibility(seg1, seg2, date, minTransferHours)

					accommodation := 0
					if feasible {
						accommodation = c.accommodationFee(seg1, date, wait)
					}

					routes = append(routes, RoutePlan{
						Segments:             []TransportSegment{seg1, seg2},
						TransferCities:       []string{hub},
						MinTransferHours:     minTransferHours,
						TotalPrice:           seg1.Price + seg2.Price + accommodation,
						TotalDurationMinutes: seg1.DurationMinutes + wait + seg2.DurationMinutes,
						AccommodationFee:     accommodation,
						TransferWaitMinutes:  []int{wait},
						RouteType:            fmt.Sprintf("%s_%s", combo[0], combo[1]),
						Feasible:             feasible,
						InfeasibleReason:     reason,
					})
				}
			}
		}
	}
	return routes
}

var modeTriples = func() [][3]Mode {
	modes := []Mode{ModeFlight, ModeTrain}
	var out [][3]Mode
	for _, m1 := range modes {
		for _, m2 := range modes {
			for _, m3 := range modes {
				out = append(out, [3]Mode{m1, m2, m3})
			}
		}
	}
	return out
}()

func capPool(pool []TransportSegment) []TransportSegment {
	if len(pool) > threeLegPoolCap {
		return pool[:threeLegPoolCap]
	}
	return pool
}

func (c *Calculator) threeLegRoutes(parsed map[string][]TransportSegment, origin, destination string, hubCities []string, date string, minTransferHours int) []RoutePlan {
	if len(hubCities) < 2 {
		return nil
	}

	var routes []RoutePlan
	for _, hub1 := range hubCities {
		for _, hub2 := range hubCities {
			if hub1 == hub2 {
				continue
			}
			for _, combo := range modeTriples {
				pool1 := capPool(parsed[segmentKey(origin, hub1, combo[0])])
				pool2 := capPool(parsed[segmentKey(hub1, hub2, combo[1])])
				pool3 := capPool(parsed[segmentKey(hub2, destination, combo[2])])

				for _, seg1 := range pool1 {
					if seg1.Price <= 0 {
						continue
					}
					for _, seg2 := range pool2 {
						if seg2.Price <= 0 {
							continue
						}

						feasible1, wait1, _ := checkTransferFeasibility(seg1, seg2, date, minTransferHours)
						if !feasible1 {
							continue
						}

						for _, seg3 := range pool3 {
							if seg3.Price <= 0 {
								continue
							}

							seg2Date := nextBaseDate(seg1, date, wait1)
							feasible2, wait2, reason2 := checkTransferFeasibility(seg2, seg3, seg2Date, minTransferHours)

							accommodation := 0
							if feasible2 {
								accommodation = c.accommodationFee(seg1, date, wait1) +
									c.accommodationFee(seg2, seg2Date, wait2)
							}

							routes = append(routes, RoutePlan{
								Segments:             []TransportSegment{seg1, seg2, seg3},
								TransferCities:       []string{hub1, hub2},
								MinTransferHours:     minTransferHours,
								TotalPrice:           seg1.Price + seg2.Price + seg3.Price + accommodation,
								TotalDurationMinutes: seg1.DurationMinutes + wait1 + seg2.DurationMinutes + wait2 + seg3.DurationMinutes,
								AccommodationFee:     accommodation,
								TransferWaitMinutes:  []int{wait1, wait2},
								RouteType:            fmt.Sprintf("%s_%s_%s", combo[0], combo[1], combo[2]),
								Feasible:             feasible2,
								InfeasibleReason:     reason2,
							})
						}
					}
				}
			}
		}
	}
	return routes
}
