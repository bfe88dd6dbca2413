package routecalc

import (
	"fmt"
	"time"
)

// Accommodation rules. A wait of twelve hours or more always forces a
// hotel night; shorter waits only do when they overlap the night
// window.
const (
	DefaultAccommodationFee = 200
	nightStartHour          = 22
	nightEndHour            = 6
	longWaitThresholdHours  = 12

	maxTransferWaitMinutes = 24 * 60
	transferSearchDays     = 3
)

// checkTransferFeasibility decides whether seg2 can be boarded after
// seg1 arrives, given the departure date of seg1 and the minimum
// transfer time. The second leg may depart up to two days after the
// first arrives; waits beyond 24 hours are rejected.
func checkTransferFeasibility(seg1, seg2 TransportSegment, baseDate string, minTransferHours int) (bool, int, string) {
	arrDT, err := seg1.ArrivalDateTime(baseDate)
	if err != nil {
		return false, 0, fmt.Sprintf("计算换乘出错: %v", err)
	}

	depClock, err := time.Parse("15:04", seg2.DepartureTime)
	if err != nil {
		return false, 0, fmt.Sprintf("计算换乘出错: %v", err)
	}

	earliest := arrDT.Add(time.Duration(minTransferHours) * time.Hour)

	for dayOffset := 0; dayOffset < transferSearchDays; dayOffset++ {
		depDT := time.Date(arrDT.Year(), arrDT.Month(), arrDT.Day(),
			depClock.Hour(), depClock.Minute(), 0, 0, arrDT.Location())
		depDT = depDT.AddDate(0, 0, dayOffset)

		if !depDT.Before(earliest) {
			wait := int(depDT.Sub(arrDT).Minutes())
			if wait <= maxTransferWaitMinutes {
				return true, wait, ""
			}
			return false, wait, fmt.Sprintf("等待时间过长(%d小时)", wait/60)
		}
	}

	return false, 0, "未找到可行的换乘班次"
}

// nextBaseDate returns the date on which seg2 departs, absorbing the
// cross-day arrival of seg1 and the transfer wait.
func nextBaseDate(seg1 TransportSegment, baseDate string, waitMinutes int) string {
	arrDT, err := seg1.ArrivalDateTime(baseDate)
	if err != nil {
		return baseDate
	}
	return arrDT.Add(time.Duration(waitMinutes) * time.Minute).Format(dateLayout)
}

// accommodationFee computes the hotel cost of a transfer wait.
func (c *Calculator) accommodationFee(seg1 TransportSegment, baseDate string, waitMinutes int) int {
	if !c.accommodationEnabled {
		return 0
	}
	if waitMinutes >= longWaitThresholdHours*60 {
		return DefaultAccommodationFee
	}
	if waitMinutes < c.accommodationThresholdHours*60 {
		return 0
	}

	arrDT, err := seg1.ArrivalDateTime(baseDate)
	if err != nil {
		return 0
	}
	depDT := arrDT.Add(time.Duration(waitMinutes) * time.Minute)

	for cur := arrDT; cur.Before(depDT); cur = cur.Add(time.Hour) {
		hour := cur.Hour()
		if hour >= nightStartHour || hour < nightEndHour {
			return DefaultAccommodationFee
		}
	}
	return 0
}
