package rankingservice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompetitionRanks(t *testing.T) {
	tests := []struct {
		name   string
		points []int
		want   []int
	}{
		{
			name:   "ties share rank and next distinct jumps",
			points: []int{10, 10, 7, 7, 2},
			want:   []int{1, 1, 3, 3, 5},
		},
		{
			name:   "three-way tie at the top",
			points: []int{10, 10, 10, 7},
			want:   []int{1, 1, 1, 4},
		},
		{
			name:   "no ties",
			points: []int{9, 7, 5},
			want:   []int{1, 2, 3},
		},
		{
			name:   "all tied",
			points: []int{4, 4, 4},
			want:   []int{1, 1, 1},
		},
		{
			name:   "single entry",
			points: []int{0},
			want:   []int{1},
		},
		{
			name:   "empty",
			points: []int{},
			want:   []int{},
		},
		{
			name:   "tie in the middle",
			points: []int{10, 10, 7},
			want:   []int{1, 1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompetitionRanks(tt.points)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CompetitionRanks(%v) mismatch (-want +got):\n%s", tt.points, diff)
			}
		})
	}
}
