package routecalc

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Text fallback shape: CA1234 08:00-11:00 ¥1000
var flightTextRe = regexp.MustCompile(`([A-Z]{2}\d{3,4})\s+(\d{1,2}:\d{2})[^\d]*(\d{1,2}:\d{2})[^\d¥]*[¥￥]?(\d+)`)

// ParseFlightData extracts flight segments from a raw provider
// payload. JSON is preferred; anything that fails to decode goes
// through the text fallback. Records that cannot be parsed are
// skipped, never fatal.
func ParseFlightData(rawData, departureCity, arrivalCity string) []TransportSegment {
	if rawData == "" {
		return nil
	}

	records, ok := decodeRecords(rawData, "flights", "航班号")
	if !ok {
		return parseFlightsFromText(rawData, departureCity, arrivalCity)
	}

	var segments []TransportSegment
	for _, rec := range records {
		if seg, ok := parseSingleFlight(rec, departureCity, arrivalCity); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

// decodeRecords handles the provider payload shapes: an object with a
// named list ("flights"/"trains"), an object with "data", a bare
// list, or a single record identified by its key field.
func decodeRecords(raw, listKey, recordKey string) ([]map[string]any, bool) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, false
	}

	toRecords := func(list []any) []map[string]any {
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if rec, ok := item.(map[string]any); ok {
				out = append(out, rec)
			}
		}
		return out
	}

	switch v := decoded.(type) {
	case map[string]any:
		if list, ok := v[listKey].([]any); ok {
			return toRecords(list), true
		}
		if list, ok := v["data"].([]any); ok {
			return toRecords(list), true
		}
		if _, ok := v[recordKey]; ok {
			return []map[string]any{v}, true
		}
		return nil, true
	case []any:
		return toRecords(v), true
	}
	return nil, true
}

func parseSingleFlight(rec map[string]any, departureCity, arrivalCity string) (TransportSegment, bool) {
	flightNo := stringField(rec, "航班号", "flight_no")
	if flightNo == "" {
		return TransportSegment{}, false
	}

	price := extractPrice(anyField(rec, "价格", "price"))

	rawArrival := stringField(rec, "到达时间", "arrival_time")
	depTime := cleanTime(stringField(rec, "出发时间", "departure_time"))
	arrTime := cleanTime(rawArrival)

	crossDays := crossDaysFrom(anyField(rec, "跨天"), rawArrival)

	durationMinutes := 0
	if v := anyField(rec, "总时长分钟"); v != nil {
		if f, ok := v.(float64); ok {
			durationMinutes = int(f)
		}
	}
	if durationMinutes == 0 {
		durationMinutes = parseDuration(stringField(rec, "总时长", "duration"))
	}

	flightKind := stringField(rec, "航班类型")
	if flightKind == "" {
		flightKind = "直达"
	}

	var numberList []string
	if list, ok := anyField(rec, "航班号列表").([]any); ok {
		for _, n := range list {
			if s, ok := n.(string); ok {
				numberList = append(numberList, s)
			}
		}
	}
	if numberList == nil && strings.Contains(flightNo, "/") {
		numberList = strings.Split(flightNo, "/")
	}

	return TransportSegment{
		Mode:              ModeFlight,
		Carrier:           stringField(rec, "航空公司", "airline"),
		Number:            flightNo,
		NumberList:        numberList,
		DepartureTime:     depTime,
		ArrivalTime:       arrTime,
		DurationMinutes:   durationMinutes,
		CrossDays:         crossDays,
		DepartureCity:     departureCity,
		DepartureStation:  stringField(rec, "出发机场", "departure_airport"),
		ArrivalCity:       arrivalCity,
		ArrivalStation:    stringField(rec, "到达机场", "arrival_airport"),
		Price:             price,
		FlightKind:        flightKind,
		InnerTransferCity: stringField(rec, "中转城市"),
		InnerTransferWait: stringField(rec, "中转等待"),
	}, true
}

func parseFlightsFromText(text, departureCity, arrivalCity string) []TransportSegment {
	var segments []TransportSegment
	for _, m := range flightTextRe.FindAllStringSubmatch(normalizeText(text), -1) {
		price, _ := strconv.Atoi(m[4])
		segments = append(segments, TransportSegment{
			Mode:          ModeFlight,
			Number:        m[1],
			DepartureTime: cleanTime(m[2]),
			ArrivalTime:   cleanTime(m[3]),
			DepartureCity: departureCity,
			ArrivalCity:   arrivalCity,
			Price:         price,
			FlightKind:    "直达",
		})
	}
	return segments
}
