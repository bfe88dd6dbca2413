package routecalc

import (
	"regexp"
	"strconv"
)

// Text fallback shape: G1234 08:00-11:00 ¥500
var trainTextRe = regexp.MustCompile(`([GDCKTZ]\d{1,4})\s+(\d{1,2}:\d{2})[^\d]*(\d{1,2}:\d{2})[^\d¥]*[¥￥]?(\d+)`)

// seatClassFields maps the Chinese class name to its English alias.
// Order matters: the minimum across parsed classes becomes the plan
// price, but iteration must stay deterministic for tests.
var seatClassFields = []struct {
	cn, en string
}{
	{"二等座", "secondSeat"},
	{"一等座", "firstSeat"},
	{"硬座", "hardSeat"},
	{"软座", "softSeat"},
	{"硬卧", "hardSleeper"},
	{"软卧", "softSleeper"},
	{"商务座", "businessSeat"},
	{"无座", "noSeat"},
}

var trainTypeNames = map[byte]string{
	'G': "高铁",
	'D': "动车",
	'C': "城际",
	'K': "快速",
	'T': "特快",
	'Z': "直达",
}

// ParseTrainData extracts train segments from a raw provider payload,
// with the same JSON-then-text strategy as the flight parser.
func ParseTrainData(rawData, departureCity, arrivalCity string) []TransportSegment {
	if rawData == "" {
		return nil
	}

	records, ok := decodeRecords(rawData, "trains", "车次")
	if !ok {
		return parseTrainsFromText(rawData, departureCity, arrivalCity)
	}

	var segments []TransportSegment
	for _, rec := range records {
		if seg, ok := parseSingleTrain(rec, departureCity, arrivalCity); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

func parseSingleTrain(rec map[string]any, departureCity, arrivalCity string) (TransportSegment, bool) {
	trainNo := stringField(rec, "车次", "train_no", "trainNo")
	if trainNo == "" {
		return TransportSegment{}, false
	}

	depTime := cleanTime(stringField(rec, "出发时间", "departure_time", "startTime"))
	arrTime := cleanTime(stringField(rec, "到达时间", "arrival_time", "arriveTime"))
	durationMinutes := parseDuration(stringField(rec, "历时", "duration", "runTime"))
	crossDays := crossDaysFrom(anyField(rec, "跨天", "dayDiff"), "")

	price := 0
	seatClasses := make(map[string]int)
	for _, field := range seatClassFields {
		v := anyField(rec, field.cn, field.en)
		if s, ok := v.(string); ok && (s == "--" || s == "无") {
			continue
		}
		p := extractPrice(v)
		if p <= 0 {
			continue
		}
		seatClasses[field.cn] = p
		if price == 0 || p < price {
			price = p
		}
	}
	if price == 0 {
		price = extractPrice(anyField(rec, "价格", "price"))
	}
	if len(seatClasses) == 0 {
		seatClasses = nil
	}

	trainType := trainTypeNames[upperFirst(trainNo)]

	return TransportSegment{
		Mode:             ModeTrain,
		Carrier:          trainType,
		Number:           trainNo,
		DepartureTime:    depTime,
		ArrivalTime:      arrTime,
		DurationMinutes:  durationMinutes,
		CrossDays:        crossDays,
		DepartureCity:    departureCity,
		DepartureStation: stringField(rec, "出发站", "fromStation"),
		ArrivalCity:      arrivalCity,
		ArrivalStation:   stringField(rec, "到达站", "toStation"),
		Price:            price,
		TrainType:        trainType,
		SeatClasses:      seatClasses,
	}, true
}

func upperFirst(s string) byte {
	if s == "" {
		return 0
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

func parseTrainsFromText(text, departureCity, arrivalCity string) []TransportSegment {
	var segments []TransportSegment
	for _, m := range trainTextRe.FindAllStringSubmatch(normalizeText(text), -1) {
		price, _ := strconv.Atoi(m[4])
		segments = append(segments, TransportSegment{
			Mode:          ModeTrain,
			Number:        m[1],
			DepartureTime: cleanTime(m[2]),
			ArrivalTime:   cleanTime(m[3]),
			DepartureCity: departureCity,
			ArrivalCity:   arrivalCity,
			Price:         price,
			TrainType:     trainTypeNames[m[1][0]],
			Carrier:       trainTypeNames[m[1][0]],
		})
	}
	return segments
}
