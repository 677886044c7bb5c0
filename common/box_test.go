package common

import (
	"math/rand"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	block := Box{X: 0, Y: 30, Width: 30, Height: 30}

	cases := []struct {
		name  string
		other Box
		want  bool
	}{
		{"identical", block, true},
		{"overlap_corner", Box{X: 20, Y: 40, Width: 30, Height: 30}, true},
		{"touching_right_edge", Box{X: 30, Y: 30, Width: 30, Height: 30}, true},
		{"touching_top_edge", Box{X: 0, Y: 60, Width: 30, Height: 30}, true},
		{"gap_right", Box{X: 30.5, Y: 30, Width: 30, Height: 30}, false},
		{"gap_below", Box{X: 0, Y: -0.5, Width: 30, Height: 30}, false},
		{"contained", Box{X: 10, Y: 20, Width: 5, Height: 5}, true},
		{"zero_size_inside", Box{X: 15, Y: 15}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := block.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBoxIntersectsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randBox := func() Box {
		return Box{
			X:      float64(rng.Intn(200) - 100),
			Y:      float64(rng.Intn(200) - 100),
			Width:  float64(rng.Intn(60)),
			Height: float64(rng.Intn(60)),
		}
	}
	for i := 0; i < 2000; i++ {
		a, b := randBox(), randBox()
		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("asymmetric intersection for %+v and %+v", a, b)
		}
	}
}

func TestBoxOffsetBy(t *testing.T) {
	a := Box{X: -15, Y: 15, Width: 30, Height: 30}

	t.Run("composes", func(t *testing.T) {
		steps := [][4]float64{
			{1, 2, 3, 4},
			{-7.5, 0.25, 7.5, -0.25},
			{1024, -512, 0.5, 0.125},
		}
		for _, s := range steps {
			got := a.OffsetBy(s[0], s[1]).OffsetBy(s[2], s[3])
			want := a.OffsetBy(s[0]+s[2], s[1]+s[3])
			if got != want {
				t.Fatalf("offset %v: got %+v, want %+v", s, got, want)
			}
		}
	})

	t.Run("does_not_mutate", func(t *testing.T) {
		orig := a
		_ = a.OffsetBy(100, 100)
		if a != orig {
			t.Fatalf("receiver changed: %+v", a)
		}
	})
}

func TestBoxBB(t *testing.T) {
	b := CenteredBox(15, 15, 30, 30)
	bb := b.BB()
	if bb.L != 0 || bb.R != 30 || bb.B != 0 || bb.T != 30 {
		t.Fatalf("unexpected bb %+v", bb)
	}
}

func TestSnapToGrid(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{29.9, 0},
		{30, 30},
		{175, 150},
		{-1, -30},
	}
	for _, c := range cases {
		if got := SnapToGrid(c.in); got != c.want {
			t.Fatalf("SnapToGrid(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
