package effect

import (
	"math"
	"testing"
)

func TestGridDimensions_RoundsUp(t *testing.T) {
	testCases := []struct {
		name     string
		w        int
		h        int
		cellW    int
		cellH    int
		wantCols int
		wantRows int
	}{
		{"Exact fit", 120, 100, 6, 10, 20, 10},
		{"Partial cells", 800, 600, 6, 10, 134, 60},
		{"Half viewport", 400, 300, 6, 10, 67, 30},
		{"One pixel", 1, 1, 6, 10, 1, 1},
		{"Single cell exact", 6, 10, 6, 10, 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := GridDimensions(tc.w, tc.h, tc.cellW, tc.cellH)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Errorf("GridDimensions(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tc.w, tc.h, tc.cellW, tc.cellH, cols, rows, tc.wantCols, tc.wantRows)
			}
		})
	}
}

func TestNewGrid_ZeroFilled(t *testing.T) {
	g := NewGrid(10, 5)

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if g.At(row, col) != 0 {
				t.Fatalf("New grid cell (%d, %d) = %f, want 0", row, col, g.At(row, col))
			}
		}
	}
}

func TestGrid_Reset_DiscardsActivation(t *testing.T) {
	g := NewGrid(134, 60)
	g.Add(3, 7, 0.8)
	g.Add(59, 133, 1.0)

	g.Reset(67, 30)

	if g.Cols != 67 || g.Rows != 30 {
		t.Errorf("After Reset, dimensions = %dx%d, want 67x30", g.Cols, g.Rows)
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(row, col) != 0 {
				t.Fatalf("After Reset, cell (%d, %d) = %f, want 0", row, col, g.At(row, col))
			}
		}
	}
}

func TestGrid_Add_ClampsToOne(t *testing.T) {
	g := NewGrid(4, 4)

	for i := 0; i < 20; i++ {
		g.Add(1, 2, 0.15)
	}

	if g.At(1, 2) != 1.0 {
		t.Errorf("Expected activation clamped to 1.0, got %f", g.At(1, 2))
	}
}

func TestGrid_Decay_MonotonicTowardZero(t *testing.T) {
	g := NewGrid(2, 2)
	g.Add(0, 0, 1.0)

	prev := g.At(0, 0)
	for i := 0; i < 100; i++ {
		g.Decay(0.92)
		cur := g.At(0, 0)
		if cur >= prev {
			t.Fatalf("Decay frame %d: activation %f did not decrease from %f", i, cur, prev)
		}
		if cur < 0 {
			t.Fatalf("Decay frame %d: activation %f went negative", i, cur)
		}
		prev = cur
	}

	// a_n = a_0 * rate^n
	want := math.Pow(0.92, 100)
	if math.Abs(prev-want) > 1e-9 {
		t.Errorf("After 100 decay frames, activation = %g, want %g", prev, want)
	}
	if prev == 0 {
		t.Error("Decay should approach zero asymptotically, never reach it")
	}
}

func TestGrid_Max(t *testing.T) {
	g := NewGrid(3, 3)
	g.Add(2, 1, 0.4)
	g.Add(0, 0, 0.7)

	if got := g.Max(); got != 0.7 {
		t.Errorf("Max() = %f, want 0.7", got)
	}
}
