package squircle

import (
	"math"
	"testing"
)

func TestProfileNormalize(t *testing.T) {
	tests := []struct {
		in   Profile
		want Profile
	}{
		{Profile{}, Profile{5, 12}},
		{Profile{-1, 2}, Profile{5, 4}},
		{Profile{math.NaN(), 100}, Profile{5, 70}},
		{Profile{math.Inf(1), 30}, Profile{5, 30}},
		{Profile{2, 4}, Profile{2, 4}},
		{Profile{0.5, -3}, Profile{0.5, 4}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.in.Normalize())
	}
	diff(t, DefaultProfile(), Profile{}.Normalize())
}

func TestEmittedPointsPerCorner(t *testing.T) {
	tests := map[int]int{
		4:    4,
		12:   12,
		24:   24,
		25:   24,
		26:   25,
		27:   25,
		48:   36,
		70:   47,
		1000: 47,
	}
	for n, want := range tests {
		if got := (Profile{PointsPerCorner: n}).EmittedPointsPerCorner(); got != want {
			t.Errorf("n=%d: got %d, want %d", n, got, want)
		}
	}
}

func TestThinned(t *testing.T) {
	if drop := thinned(ThinningThreshold); drop != nil {
		t.Errorf("got %v, want nothing dropped at the threshold", drop)
	}
	diff(t, map[int]bool{13: true}, thinned(25))

	for n := ThinningThreshold + 1; n <= MaxPointsPerCorner; n++ {
		drop := thinned(n)
		if len(drop) != thinCount(n) {
			t.Errorf("n=%d: dropped %d samples, want %d", n, len(drop), thinCount(n))
		}
		for i := range drop {
			if i%2 == 0 {
				t.Errorf("n=%d: dropped even sample %d", n, i)
			}
			if i <= 0 || i >= n-1 {
				t.Errorf("n=%d: dropped end sample %d", n, i)
			}
		}
	}
}
