// Package planner turns a single origin/destination request into the
// full set of provider queries, runs them through a two-phase
// scheduler, and hands the raw payloads to the route calculator.
package planner

import (
	"context"

	"github.com/huanchong-99/Go-Home/routecalc"
)

// ToolCaller is the slice of the provider manager the planner needs.
type ToolCaller interface {
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
}

// SegmentQuery describes one provider lookup: a city pair, a travel
// date and a transport mode. SegmentID encodes the leg's position in
// the itinerary (direct_<mode>, leg1_<hub>_<mode>, leg2_<hub>_<mode>).
type SegmentQuery struct {
	FromCity  string         `json:"from_city"`
	ToCity    string         `json:"to_city"`
	Date      string         `json:"date"`
	Mode      routecalc.Mode `json:"mode"`
	SegmentID string         `json:"segment_id"`
}

// SegmentResult is the outcome of one query. Data holds the raw
// provider payload; the parsers in routecalc make sense of it later.
type SegmentResult struct {
	SegmentID string         `json:"segment_id"`
	FromCity  string         `json:"from_city"`
	ToCity    string         `json:"to_city"`
	Mode      routecalc.Mode `json:"mode"`
	Success   bool           `json:"success"`
	Data      string         `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
	QueryTime float64        `json:"query_time"`
}
