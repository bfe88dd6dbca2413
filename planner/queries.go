package planner

import (
	"fmt"

	"github.com/huanchong-99/Go-Home/hubs"
	"github.com/huanchong-99/Go-Home/routecalc"
)

// availableModes returns the transport modes worth querying for a city
// pair. Trains only run between two domestic cities; the filter comes
// straight from the user request ("flight", "train" or "all").
func availableModes(from, to, transportFilter string) []routecalc.Mode {
	var modes []routecalc.Mode
	if transportFilter != "train" {
		modes = append(modes, routecalc.ModeFlight)
	}
	if transportFilter != "flight" &&
		!hubs.IsInternationalCity(from) && !hubs.IsInternationalCity(to) {
		modes = append(modes, routecalc.ModeTrain)
	}
	return modes
}

// BuildSegmentQueries enumerates every lookup the itinerary needs:
// the direct pair (unless includeDirect is off) plus a first and
// second leg through each hub. Hubs equal to an endpoint contribute
// nothing.
func BuildSegmentQueries(origin, destination, date string, hubCities []string, transportFilter string, includeDirect bool) []SegmentQuery {
	var queries []SegmentQuery

	if includeDirect {
		for _, mode := range availableModes(origin, destination, transportFilter) {
			queries = append(queries, SegmentQuery{
				FromCity:  origin,
				ToCity:    destination,
				Date:      date,
				Mode:      mode,
				SegmentID: fmt.Sprintf("direct_%s", mode),
			})
		}
	}

	for _, hub := range hubCities {
		if hub == origin || hub == destination {
			continue
		}
		for _, mode := range availableModes(origin, hub, transportFilter) {
			queries = append(queries, SegmentQuery{
				FromCity:  origin,
				ToCity:    hub,
				Date:      date,
				Mode:      mode,
				SegmentID: fmt.Sprintf("leg1_%s_%s", hub, mode),
			})
		}
		for _, mode := range availableModes(hub, destination, transportFilter) {
			queries = append(queries, SegmentQuery{
				FromCity:  hub,
				ToCity:    destination,
				Date:      date,
				Mode:      mode,
				SegmentID: fmt.Sprintf("leg2_%s_%s", hub, mode),
			})
		}
	}

	return queries
}
