package campaign

// Outcome tags the result of one connection attempt.
type Outcome int

const (
	// OutcomeConnected means the request was sent and the dialog confirmed.
	OutcomeConnected Outcome = iota
	// OutcomeAlreadyPending means the profile is already connected or has a
	// pending invite; not actionable, not an error.
	OutcomeAlreadyPending
	// OutcomeNoAffordance means the profile exposed no usable connect path
	// after probing both the direct button and the overflow menu.
	OutcomeNoAffordance
	// OutcomeError covers any unexpected failure during the attempt; the
	// candidate is skipped and the run continues.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConnected:
		return "connected"
	case OutcomeAlreadyPending:
		return "already_connected_or_pending"
	case OutcomeNoAffordance:
		return "no_affordance_found"
	default:
		return "error"
	}
}

// AttemptResult is the per-candidate outcome the orchestrator consumes.
// Reason is set only for OutcomeError.
type AttemptResult struct {
	Outcome Outcome
	Reason  string
}

func connected() AttemptResult {
	return AttemptResult{Outcome: OutcomeConnected}
}

func alreadyPending() AttemptResult {
	return AttemptResult{Outcome: OutcomeAlreadyPending}
}

func noAffordance() AttemptResult {
	return AttemptResult{Outcome: OutcomeNoAffordance}
}

func attemptError(err error) AttemptResult {
	return AttemptResult{Outcome: OutcomeError, Reason: err.Error()}
}
