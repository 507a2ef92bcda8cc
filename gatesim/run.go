package gatesim

// RunResult reports how Run terminated: either the circuit quiesced
// within the tick budget, or the budget was exhausted first.
type RunResult struct {
	Finished     bool
	AfterTicks   uint64 // valid when Finished
	ReachedLimit uint64 // valid when !Finished: the max_ticks budget that was hit
}

// Run advances the circuit at most maxTicks times, stopping early once
// both work lists are empty. A circuit with a stable bistable (e.g. an
// SR-latch in steady state) reaches Finished; an oscillator never does,
// and Run reports ReachedMaxTicks instead of looping forever.
func (c *Circuit) Run(maxTicks uint64) RunResult {
	for t := uint64(0); t < maxTicks; t++ {
		if !c.WorkLeft() {
			return RunResult{Finished: true, AfterTicks: t}
		}
		c.update()
	}
	return RunResult{Finished: false, ReachedLimit: maxTicks}
}

// RunUntilDone iterates ticks until both work lists are empty. Callers
// that cannot guarantee the circuit is acyclic/stable should prefer Run
// with an explicit bound instead, since this can loop forever on an
// oscillating network.
func (c *Circuit) RunUntilDone() {
	for c.WorkLeft() {
		c.update()
	}
}
