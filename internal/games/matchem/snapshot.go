package matchem

// Snapshot is the observable game state, used by determinism tests and the
// headless simulator.
type Snapshot struct {
	Frame      uint64
	AppState   int
	LevelState int
	Level      int
	Score      int
	HighScore  int
	Timer      int // 16.16 fixed point
	GameIsOn   int
	Particles  int
	Indices    []int32
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		AppState:   int(s.runner.State()),
		LevelState: int(s.grid.State()),
		Level:      s.levelIndex,
		Score:      s.score,
		HighScore:  s.highScore,
		Timer:      int(s.timer),
		GameIsOn:   s.gameIsOn,
		Particles:  s.particles.Active(),
		Indices:    s.grid.Indices(),
	}
}

// Snapshot returns the current game state, stamped with the number of
// steps since Reset.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	snap := g.session.Snapshot()
	snap.Frame = g.frames
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.AppState)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelState) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timer)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GameIsOn)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles)  //#nosec G115 -- hash computation

	for _, v := range snap.Indices {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
