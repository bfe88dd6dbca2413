package routecalc

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(mode Mode, dep, arr string, crossDays, durMin, price int) TransportSegment {
	return TransportSegment{
		Mode:            mode,
		Number:          "X1",
		DepartureTime:   dep,
		ArrivalTime:     arr,
		CrossDays:       crossDays,
		DurationMinutes: durMin,
		Price:           price,
	}
}

func TestCheckTransferFeasibilitySameDay(t *testing.T) {
	seg1 := seg(ModeTrain, "08:00", "11:00", 0, 180, 300)
	seg2 := seg(ModeTrain, "14:00", "18:00", 0, 240, 400)

	ok, wait, reason := checkTransferFeasibility(seg1, seg2, "2025-03-01", 2)
	require.True(t, ok)
	assert.Equal(t, 180, wait)
	assert.Empty(t, reason)

	// Under a 3-hour policy the same pair still works.
	ok, wait, _ = checkTransferFeasibility(seg1, seg2, "2025-03-01", 3)
	assert.True(t, ok)
	assert.Equal(t, 180, wait)
}

func TestCheckTransferFeasibilityNextDay(t *testing.T) {
	seg1 := seg(ModeFlight, "18:00", "23:30", 0, 330, 2100)
	seg2 := seg(ModeTrain, "07:05", "15:30", 0, 505, 180)

	ok, wait, _ := checkTransferFeasibility(seg1, seg2, "2025-01-20", 2)
	require.True(t, ok)
	assert.Equal(t, 455, wait) // 7h35m
}

func TestCheckTransferFeasibilityWaitTooLong(t *testing.T) {
	// 00:30 departure with a 23:30 arrival: the 2h policy pushes the
	// connection a full day out, past the 24h ceiling.
	seg1 := seg(ModeFlight, "18:00", "23:30", 0, 330, 2100)
	seg2 := seg(ModeTrain, "00:30", "08:00", 1, 450, 150)

	ok, wait, reason := checkTransferFeasibility(seg1, seg2, "2025-01-20", 2)
	assert.False(t, ok)
	assert.Greater(t, wait, 24*60)
	assert.Contains(t, reason, "等待时间过长")
}

func TestCheckTransferFeasibilityCrossDayArrival(t *testing.T) {
	// seg1 arrives the next day; the connection is judged from the
	// true arrival instant.
	seg1 := seg(ModeTrain, "20:00", "06:30", 1, 630, 500)
	seg2 := seg(ModeTrain, "10:00", "14:00", 0, 240, 300)

	ok, wait, _ := checkTransferFeasibility(seg1, seg2, "2025-03-01", 2)
	require.True(t, ok)
	assert.Equal(t, 210, wait) // 06:30 → 10:00 on 2025-03-02
}

// Shifting the base date shifts every derived instant equally and
// never changes the verdict.
func TestCheckTransferFeasibilityTimeTranslation(t *testing.T) {
	seg1 := seg(ModeFlight, "18:00", "23:30", 0, 330, 2100)
	seg2 := seg(ModeTrain, "07:05", "15:30", 0, 505, 180)

	base, err := time.Parse(dateLayout, "2025-01-20")
	require.NoError(t, err)

	ok0, wait0, _ := checkTransferFeasibility(seg1, seg2, "2025-01-20", 2)
	for d := 1; d <= 30; d++ {
		date := base.AddDate(0, 0, d).Format(dateLayout)
		ok, wait, _ := checkTransferFeasibility(seg1, seg2, date, 2)
		assert.Equal(t, ok0, ok, date)
		assert.Equal(t, wait0, wait, date)
	}
}

func TestNextBaseDatePropagation(t *testing.T) {
	// Cross-day arrival plus wait lands two days after departure.
	seg1 := seg(ModeTrain, "20:00", "23:00", 1, 1620, 800)
	got := nextBaseDate(seg1, "2025-03-01", 8*60)
	assert.Equal(t, "2025-03-03", got)

	// Unparseable times fall back to the base date.
	bad := seg(ModeTrain, "20:00", "bad", 0, 0, 100)
	assert.Equal(t, "2025-03-01", nextBaseDate(bad, "2025-03-01", 60))
}

func TestAccommodationFee(t *testing.T) {
	calc := NewCalculator(6, true)

	tests := []struct {
		name    string
		arrival string
		wait    int
		want    int
	}{
		{"short daytime wait", "10:00", 3 * 60, 0},
		{"long daytime wait below threshold", "08:00", 5 * 60, 0},
		{"threshold wait entirely daytime", "08:00", 7 * 60, 0},
		{"threshold wait into night", "17:00", 7 * 60, DefaultAccommodationFee},
		{"overnight wait", "23:30", 455, DefaultAccommodationFee},
		{"twelve hours always pays", "08:00", 12 * 60, DefaultAccommodationFee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seg(ModeFlight, "06:00", tt.arrival, 0, 0, 100)
			assert.Equal(t, tt.want, calc.accommodationFee(s, "2025-01-20", tt.wait))
		})
	}
}

func TestAccommodationFeeDisabled(t *testing.T) {
	calc := NewCalculator(6, false)
	s := seg(ModeFlight, "06:00", "23:30", 0, 0, 100)
	assert.Zero(t, calc.accommodationFee(s, "2025-01-20", 455))
}

// The verdict must not depend on whether the wait starts or ends
// inside the night window.
func TestAccommodationFeeWindowSymmetry(t *testing.T) {
	calc := NewCalculator(6, true)

	endsInNight := seg(ModeFlight, "06:00", "16:00", 0, 0, 100)
	startsInNight := seg(ModeFlight, "06:00", "23:00", 0, 0, 100)

	assert.Equal(t, DefaultAccommodationFee, calc.accommodationFee(endsInNight, "2025-01-20", 7*60))
	assert.Equal(t, DefaultAccommodationFee, calc.accommodationFee(startsInNight, "2025-01-20", 7*60))
}

func TestFormatWait(t *testing.T) {
	assert.Equal(t, "7小时35分", formatWait(455))
	assert.Equal(t, "0小时45分", formatWait(45))
	assert.Equal(t, fmt.Sprintf("%d小时0分", 24), formatWait(24*60))
}
