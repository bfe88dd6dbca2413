// Package routecalc turns raw provider payloads into structured
// travel segments, enumerates every viable combination through the
// transfer hubs, and renders the ranked plans as a report.
package routecalc

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the transport mode of a segment.
type Mode string

const (
	ModeFlight Mode = "flight"
	ModeTrain  Mode = "train"
)

const dateLayout = "2006-01-02"

// TransportSegment is one parsed travel unit: a single flight or train
// between two cities.
type TransportSegment struct {
	Mode    Mode   `json:"mode"`
	Carrier string `json:"carrier,omitempty"`
	Number  string `json:"number"`
	// NumberList holds the individual flight numbers of a
	// through-ticket with an inner stop, e.g. CX337/CX872.
	NumberList []string `json:"number_list,omitempty"`

	DepartureTime   string `json:"departure_time"` // HH:MM
	ArrivalTime     string `json:"arrival_time"`   // HH:MM
	DurationMinutes int    `json:"duration_minutes"`
	CrossDays       int    `json:"cross_days"`

	DepartureCity    string `json:"departure_city"`
	DepartureStation string `json:"departure_station,omitempty"`
	ArrivalCity      string `json:"arrival_city"`
	ArrivalStation   string `json:"arrival_station,omitempty"`

	Price int `json:"price"`

	// Flight specific.
	FlightKind        string `json:"flight_kind,omitempty"` // 直达 or 中转
	InnerTransferCity string `json:"inner_transfer_city,omitempty"`
	InnerTransferWait string `json:"inner_transfer_wait,omitempty"`

	// Train specific.
	TrainType   string         `json:"train_type,omitempty"`
	SeatClasses map[string]int `json:"seat_classes,omitempty"`
}

// DepartureDateTime anchors the segment's departure on baseDate.
func (s TransportSegment) DepartureDateTime(baseDate string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" 15:04", baseDate+" "+s.DepartureTime, time.Local)
}

// ArrivalDateTime anchors the segment's arrival on baseDate,
// accounting for cross-day arrivals.
func (s TransportSegment) ArrivalDateTime(baseDate string) (time.Time, error) {
	dt, err := time.ParseInLocation(dateLayout+" 15:04", baseDate+" "+s.ArrivalTime, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return dt.AddDate(0, 0, s.CrossDays), nil
}

// RoutePlan is one complete itinerary of one to three segments.
type RoutePlan struct {
	Segments         []TransportSegment `json:"segments"`
	TransferCities   []string           `json:"transfer_cities"`
	MinTransferHours int                `json:"min_transfer_hours"` // 0 for direct

	TotalPrice           int   `json:"total_price"`
	TotalDurationMinutes int   `json:"total_duration_minutes"`
	AccommodationFee     int   `json:"accommodation_fee"`
	TransferWaitMinutes  []int `json:"transfer_wait_minutes"`

	RouteType        string `json:"route_type"` // e.g. "flight_train"
	Feasible         bool   `json:"feasible"`
	InfeasibleReason string `json:"infeasible_reason,omitempty"`
}

// Description renders the city chain with mode icons.
func (p RoutePlan) Description() string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if i == 0 {
			b.WriteString(seg.DepartureCity)
		}
		if seg.Mode == ModeFlight {
			b.WriteString("→✈️→")
		} else {
			b.WriteString("→🚄→")
		}
		b.WriteString(seg.ArrivalCity)
	}
	return b.String()
}

// TypeDescription names the plan's mode sequence in Chinese.
func (p RoutePlan) TypeDescription() string {
	if len(p.Segments) == 1 {
		if p.Segments[0].Mode == ModeFlight {
			return "直达航班"
		}
		return "直达火车"
	}
	names := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		if seg.Mode == ModeFlight {
			names[i] = "飞机"
		} else {
			names[i] = "火车"
		}
	}
	return strings.Join(names, " → ")
}

func formatWait(minutes int) string {
	return fmt.Sprintf("%d小时%d分", minutes/60, minutes%60)
}
