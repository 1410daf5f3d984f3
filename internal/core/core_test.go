package core

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestNewTorusRejectsNonPositive(t *testing.T) {
	for _, tc := range []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		if _, err := NewTorus(tc.w, tc.h); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewTorus(%d, %d) error = %v, want ErrInvalidSize", tc.w, tc.h, err)
		}
	}
	if _, err := NewTorus(1, 1); err != nil {
		t.Fatalf("NewTorus(1, 1) unexpected error: %v", err)
	}
}

func TestTorusWrap(t *testing.T) {
	tor := Torus{W: 10, H: 7}
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 9, 6},
		{10, 7, 0, 0},
		{-11, 15, 9, 1},
		{3, 4, 3, 4},
	}
	for _, tc := range cases {
		x, y := tor.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Errorf("Wrap(%d, %d) = (%d, %d), want (%d, %d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestTorusNeighborsOrderAndWrap(t *testing.T) {
	tor := Torus{W: 10, H: 10}
	var nb [8]int
	tor.Neighbors(0, 0, &nb)
	want := [8]int{
		tor.Index(9, 9), tor.Index(0, 9), tor.Index(1, 9),
		tor.Index(9, 0), tor.Index(1, 0),
		tor.Index(9, 1), tor.Index(0, 1), tor.Index(1, 1),
	}
	if nb != want {
		t.Fatalf("Neighbors(0,0) = %v, want %v", nb, want)
	}
}

func TestTorusNeighborsSmallGridRepeats(t *testing.T) {
	tor := Torus{W: 2, H: 1}
	var nb [8]int
	tor.Neighbors(0, 0, &nb)
	self, other := 0, 0
	for _, idx := range nb {
		switch idx {
		case 0:
			self++
		case 1:
			other++
		default:
			t.Fatalf("unexpected index %d", idx)
		}
	}
	if self != 2 || other != 6 {
		t.Fatalf("self=%d other=%d, want 2 and 6", self, other)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock = clock.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step once the interval elapsed")
	}
	if fs.Remaining() != 100*time.Millisecond {
		t.Fatalf("Remaining = %v, want 100ms", fs.Remaining())
	}

	// A long stall yields at most two back-to-back steps.
	clock = clock.Add(time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("steps after stall = %d, want 2", steps)
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	if got := NewFixedStep(0).Interval(); got != DefaultInterval {
		t.Fatalf("Interval = %v, want %v", got, DefaultInterval)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) should return 0")
	}
	if NewRNG(1).Chance(0) {
		t.Fatal("Chance(0) should never fire")
	}
}
