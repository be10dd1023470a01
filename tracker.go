package twisty

// progressTracker reports new highs in solve progress. It is monotonic:
// undoing a finished face does not fire again until the previous high is
// beaten.
type progressTracker struct {
	highest  int
	callback func(faces int)
}

// reset starts tracking from the current state.
func (t *progressTracker) reset(current int) {
	t.highest = current
}

// observe fires the callback when faces beats the highest seen.
func (t *progressTracker) observe(faces int) {
	if faces <= t.highest {
		return
	}
	t.highest = faces
	if t.callback != nil {
		t.callback(faces)
	}
}
