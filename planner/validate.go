package planner

import "strings"

// Providers report failures inside otherwise well-formed replies, so
// the payload text is the source of truth, not the transport error.
var errorMarkers = []string{
	"超时", "timeout", "error", "failed", "失败", "异常", "exception",
	"无法", "cannot", "未找到", "not found", "无数据", "no data", "查询失败",
}

var validMarkers = []string{
	"flight", "train", "航班", "车次", "price", "价格",
	"departure", "arrival", "出发", "到达",
}

// validResponse accepts a payload only when it carries no error marker
// and at least one sign of actual schedule data.
func validResponse(payload string) bool {
	if strings.TrimSpace(payload) == "" {
		return false
	}
	lowered := strings.ToLower(payload)
	for _, marker := range errorMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}
	for _, marker := range validMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// zeroFlightResponse spots the provider's "found 0 flights" phrasing,
// which passes validation but still deserves a retry.
func zeroFlightResponse(payload string) bool {
	return strings.Contains(payload, "找到 0 条航班") || strings.Contains(payload, "0条航班")
}
