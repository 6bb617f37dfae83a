package effect

// FrameStats tracks the achieved frame rate. Timestamps are milliseconds,
// matching what requestAnimationFrame hands the frame callback.
type FrameStats struct {
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64
}

// Tick counts a frame and refreshes CurrentFPS once per second.
func (s *FrameStats) Tick(now float64) {
	s.FrameCount++

	elapsed := now - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = now
	}
}
