package campaign

import (
	"time"

	"github.com/yourusername/linkedin-outreach/internal/logger"
)

// Attempter sends one connection request. Implemented by Connector.
type Attempter interface {
	Attempt(cand Candidate) AttemptResult
}

// AttemptRecorder persists per-candidate outcomes. Satisfied by the storage
// layer; nil disables recording.
type AttemptRecorder interface {
	RecordAttempt(profileURL, outcome, reason string) error
}

// RunOutcome is the terminal state of a campaign run. Both are
// non-error terminations.
type RunOutcome int

const (
	// RunCapReached means the daily cap was hit with candidates left over.
	RunCapReached RunOutcome = iota
	// RunExhausted means every candidate was processed under the cap.
	RunExhausted
)

func (o RunOutcome) String() string {
	if o == RunCapReached {
		return "cap_reached"
	}
	return "exhausted"
}

// Summary is what a run reports back regardless of per-candidate failures.
type Summary struct {
	Successes int
	Processed int
	Outcome   RunOutcome
}

// Orchestrator drives one campaign run: it walks the candidate set in
// discovery order, paces attempts, and enforces the daily cap. Counters
// start at zero every run; there are no resume semantics.
type Orchestrator struct {
	connector Attempter
	dailyCap  int
	delayMin  time.Duration
	delayMax  time.Duration
	recorder  AttemptRecorder
	events    *Broker
	wait      waitFunc
}

// NewOrchestrator returns an orchestrator over the given connector.
// recorder and events may be nil.
func NewOrchestrator(connector Attempter, dailyCap int, delayMin, delayMax time.Duration, recorder AttemptRecorder, events *Broker) *Orchestrator {
	return &Orchestrator{
		connector: connector,
		dailyCap:  dailyCap,
		delayMin:  delayMin,
		delayMax:  delayMax,
		recorder:  recorder,
		events:    events,
		wait:      defaultWait(),
	}
}

// Run processes candidates strictly in order until the cap is reached or
// the set is exhausted. The success counter increments only on Connected;
// a candidate is never restarted within the run.
func (o *Orchestrator) Run(candidates []Candidate) Summary {
	successes := 0
	processed := 0

	for _, cand := range candidates {
		if successes >= o.dailyCap {
			logger.Info("Daily connection cap reached", "cap", o.dailyCap, "processed", processed)
			o.events.Publish(Event{Type: EventCapReached, Successes: successes, Processed: processed})
			return Summary{Successes: successes, Processed: processed, Outcome: RunCapReached}
		}

		o.wait(o.delayMin, o.delayMax)

		logger.Info("Attempting connection", "url", cand.ProfileURL, "degree", cand.Degree.String())
		o.events.Publish(Event{Type: EventAttemptStarted, ProfileURL: cand.ProfileURL, Degree: cand.Degree.String()})

		res := o.connector.Attempt(cand)
		processed++

		if res.Outcome == OutcomeConnected {
			successes++
		}

		switch res.Outcome {
		case OutcomeError:
			logger.Error("Connection attempt failed", "url", cand.ProfileURL, "reason", res.Reason)
		case OutcomeConnected:
			logger.Info("Connection request sent", "url", cand.ProfileURL, "successes", successes)
		default:
			logger.Info("Candidate skipped", "url", cand.ProfileURL, "outcome", res.Outcome.String())
		}

		o.events.Publish(Event{
			Type:       EventAttemptResult,
			ProfileURL: cand.ProfileURL,
			Outcome:    res.Outcome.String(),
			Reason:     res.Reason,
			Successes:  successes,
			Processed:  processed,
		})

		if o.recorder != nil {
			if err := o.recorder.RecordAttempt(cand.ProfileURL, res.Outcome.String(), res.Reason); err != nil {
				logger.Warn("Failed to record attempt", "url", cand.ProfileURL, "error", err)
			}
		}
	}

	logger.Info("Candidate set exhausted", "successes", successes, "processed", processed)
	return Summary{Successes: successes, Processed: processed, Outcome: RunExhausted}
}
