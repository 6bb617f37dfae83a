package effect

import (
	"math"
	"testing"
)

func TestFrameStats_NoUpdateWithinFirstSecond(t *testing.T) {
	var s FrameStats

	for ms := 0.0; ms < 1000; ms += 33.33 {
		s.Tick(ms)
	}

	if s.CurrentFPS != 0 {
		t.Errorf("FPS reported before a full second elapsed: %f", s.CurrentFPS)
	}
}

func TestFrameStats_ComputesFPSAfterOneSecond(t *testing.T) {
	var s FrameStats

	// 30 frames over exactly one second
	for i := 1; i <= 30; i++ {
		s.Tick(float64(i) * 1000.0 / 30.0)
	}

	if math.Abs(s.CurrentFPS-30) > 0.5 {
		t.Errorf("CurrentFPS = %f, want ~30", s.CurrentFPS)
	}
	if s.FrameCount != 0 {
		t.Errorf("FrameCount not reset after update, got %d", s.FrameCount)
	}
}
