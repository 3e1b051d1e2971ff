package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestAggregateByMonthEmpty(t *testing.T) {
	data := AggregateByMonth(nil, "Unknown")
	assert.Empty(t, data.Labels)
	assert.Empty(t, data.Counts)
}

func TestAggregateByMonthGroupsAndSorts(t *testing.T) {
	times := []*time.Time{ts("2024-01-05"), ts("2024-01-20"), ts("2024-03-01")}

	data := AggregateByMonth(times, "Unknown")
	assert.Equal(t, []string{"2024-01", "2024-03"}, data.Labels)
	assert.Equal(t, []int{2, 1}, data.Counts)
}

func TestAggregateByMonthIdempotent(t *testing.T) {
	times := []*time.Time{ts("2023-12-31"), ts("2024-01-01"), nil}

	first := AggregateByMonth(times, "Unknown")
	second := AggregateByMonth(times, "Unknown")
	assert.Equal(t, first, second)
}

func TestAggregateByMonthUnknownBucket(t *testing.T) {
	times := []*time.Time{ts("2024-06-15"), nil, nil}

	data := AggregateByMonth(times, "Unknown")
	assert.Equal(t, []string{"2024-06", "Unknown"}, data.Labels)
	assert.Equal(t, []int{1, 2}, data.Counts)
}

func TestAggregateByMonthExcludesNilWithoutLabel(t *testing.T) {
	times := []*time.Time{ts("2024-06-15"), nil}

	data := AggregateByMonth(times, "")
	assert.Equal(t, []string{"2024-06"}, data.Labels)
	assert.Equal(t, []int{1}, data.Counts)
}

func TestAggregateByMonthUnknownSortsLast(t *testing.T) {
	// 'U' sorts after digits, so the unknown bucket trails every date label
	times := []*time.Time{nil, ts("2031-12-01"), ts("2024-01-01")}

	data := AggregateByMonth(times, "Unknown")
	assert.Equal(t, []string{"2024-01", "2031-12", "Unknown"}, data.Labels)
}
