package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 15, hour, minute, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"partial overlap", NewInterval(at(9, 0), at(11, 0)), NewInterval(at(10, 0), at(12, 0)), true},
		{"contained", NewInterval(at(9, 0), at(12, 0)), NewInterval(at(10, 0), at(11, 0)), true},
		{"identical", NewInterval(at(9, 0), at(10, 0)), NewInterval(at(9, 0), at(10, 0)), true},
		{"touching end", NewInterval(at(9, 0), at(10, 0)), NewInterval(at(10, 0), at(11, 0)), false},
		{"touching start", NewInterval(at(10, 0), at(11, 0)), NewInterval(at(9, 0), at(10, 0)), false},
		{"disjoint", NewInterval(at(9, 0), at(10, 0)), NewInterval(at(12, 0), at(13, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Intersection(t *testing.T) {
	got := NewInterval(at(10, 0), at(12, 0)).Intersection(NewInterval(at(9, 0), at(11, 0)))
	assert.Equal(t, NewInterval(at(10, 0), at(11, 0)), got)
}

func TestInterval_IsValidAndHours(t *testing.T) {
	assert.True(t, NewInterval(at(9, 0), at(11, 30)).IsValid())
	assert.False(t, NewInterval(at(9, 0), at(9, 0)).IsValid())
	assert.False(t, NewInterval(at(10, 0), at(9, 0)).IsValid())
	assert.Equal(t, 2.5, NewInterval(at(9, 0), at(11, 30)).Hours())
}

func TestInterval_Contains(t *testing.T) {
	day := NewInterval(at(8, 0), at(23, 0))
	assert.True(t, day.Contains(NewInterval(at(8, 0), at(9, 0))))
	assert.True(t, day.Contains(NewInterval(at(22, 0), at(23, 0))))
	assert.False(t, day.Contains(NewInterval(at(7, 30), at(9, 0))))
}
