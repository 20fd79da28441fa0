package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{name: "Empty", values: nil, want: 0},
		{name: "Single", values: []int{4}, want: 4},
		{name: "Whole_Mean", values: []int{4, 2}, want: 3},
		{name: "Repeating", values: []int{5, 4, 4}, want: 4.33},
		{name: "Tie_Down_To_Even", values: []int{1, 1, 1, 1, 1, 1, 1, 2}, want: 1.12},
		{name: "Tie_Down_To_Even_Again", values: []int{1, 1, 1, 1, 1, 2, 3, 3}, want: 1.62},
		{name: "Tie_Up_To_Even", values: []int{1, 1, 1, 1, 1, 1, 1, 4}, want: 1.38},
		{name: "Above_Half", values: []int{2, 2, 3}, want: 2.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AverageRating(tt.values))
		})
	}
}

func TestRoundRating(t *testing.T) {
	require.Equal(t, 1.12, RoundRating(1.125))
	require.Equal(t, 1.62, RoundRating(1.625))
	require.Equal(t, 2.67, RoundRating(2.675)) // 2.675 is stored just below the tie
	require.Equal(t, 3.0, RoundRating(2.999))
}

func TestAuctionOpen(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := Auction{ClosingDate: now.Add(time.Minute)}
	require.True(t, a.Open(now))
	require.False(t, a.Open(now.Add(time.Minute)))
}
