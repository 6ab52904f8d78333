package tile

// Call is one recorded RenderTile invocation.
type Call struct {
	X, Y, W, H float64
	Angle      float64
	Mode       int
	Index      Index
	Arg        int
}

// Notification is one recorded EffectNotify invocation.
type Notification struct {
	Effect     Effect
	Arg1, Arg2 int
}

// Recorder keeps every tile and effect it receives. It is used by headless
// runs and tests.
type Recorder struct {
	Calls   []Call
	Effects []Notification
}

// RenderTile implements Renderer.
func (r *Recorder) RenderTile(x, y, w, h, angle float64, mode int, idx Index, arg int) {
	r.Calls = append(r.Calls, Call{X: x, Y: y, W: w, H: h, Angle: angle, Mode: mode, Index: idx, Arg: arg})
}

// EffectNotify implements EffectSink.
func (r *Recorder) EffectNotify(e Effect, arg1, arg2 int) {
	r.Effects = append(r.Effects, Notification{Effect: e, Arg1: arg1, Arg2: arg2})
}

// Count returns how many notifications of kind e were recorded.
func (r *Recorder) Count(e Effect) int {
	n := 0
	for _, fx := range r.Effects {
		if fx.Effect == e {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Effects = r.Effects[:0]
}
