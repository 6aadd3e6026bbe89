package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodOf(t *testing.T) {
	cases := []struct {
		start  string
		period Period
		ok     bool
	}{
		{"06:00", Morning, true},
		{"11:45", Morning, true},
		{"12:00", Afternoon, true}, // boundary belongs to the later bucket
		{"17:59", Afternoon, true},
		{"18:00", Evening, true},
		{"23:45", Evening, true},
		{"00:15", "", false},
		{"05:59", "", false},
		{"garbage", "", false},
	}
	for _, c := range cases {
		p, ok := PeriodOf(c.start)
		assert.Equal(t, c.ok, ok, c.start)
		assert.Equal(t, c.period, p, c.start)
	}
}

func TestFilterByPeriodPartitions(t *testing.T) {
	slots := []Slot{
		{ResourceID: "1", StartTime: "07:00"},
		{ResourceID: "2", StartTime: "12:00"},
		{ResourceID: "3", StartTime: "18:30"},
		{ResourceID: "4", StartTime: "05:00"}, // before any period
	}

	require.Len(t, FilterByPeriod(slots, Morning), 1)
	afternoon := FilterByPeriod(slots, Afternoon)
	require.Len(t, afternoon, 1)
	assert.Equal(t, "12:00", afternoon[0].StartTime)
	require.Len(t, FilterByPeriod(slots, Evening), 1)
}

func TestFilterByPeriodDedupesFirstWins(t *testing.T) {
	slots := []Slot{
		{ResourceID: "court-2", StartTime: "19:00"},
		{ResourceID: "court-5", StartTime: "19:00"},
		{ResourceID: "court-1", StartTime: "20:15"},
	}

	out := FilterByPeriod(slots, Evening)
	require.Len(t, out, 2)
	assert.Equal(t, "court-2", out[0].ResourceID)
	assert.Equal(t, "court-1", out[1].ResourceID)
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod(" Evening ")
	require.NoError(t, err)
	assert.Equal(t, Evening, p)

	_, err = ParsePeriod("midnight")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 50, 0, 0, time.Local)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 8, DaysUntil(now, date))
	assert.Equal(t, 0, DaysUntil(now, now))
}
