package campaign

import (
	"errors"
	"testing"
	"time"
)

type stubDialog struct {
	outcome DialogOutcome
	calls   int
}

func (d *stubDialog) Resolve() DialogOutcome {
	d.calls++
	return d.outcome
}

func newTestConnector(s *fakeSession, dialog dialogResolver) *Connector {
	c := NewConnector(s, 0, 0)
	c.dialog = dialog
	c.wait = noWait
	return c
}

var testCandidate = Candidate{ProfileURL: "https://www.linkedin.com/in/jane", Degree: DegreeSecond}

func TestAttemptDirectPath(t *testing.T) {
	s := newFakeSession()
	btn := &fakeElement{text: "Connect"}
	s.singles[directConnectSelectors[0]] = btn

	dialog := &stubDialog{outcome: DialogSent}
	res := newTestConnector(s, dialog).Attempt(testCandidate)

	if res.Outcome != OutcomeConnected {
		t.Fatalf("expected Connected, got %v", res.Outcome)
	}
	if btn.clicks != 1 {
		t.Errorf("connect button clicked %d times", btn.clicks)
	}
	if dialog.calls != 1 {
		t.Errorf("dialog resolved %d times", dialog.calls)
	}
}

func TestAttemptDirectClickFallsBackToForce(t *testing.T) {
	s := newFakeSession()
	btn := &fakeElement{text: "Connect", clickErr: errors.New("intercepted")}
	s.singles[directConnectSelectors[0]] = btn

	res := newTestConnector(s, &stubDialog{outcome: DialogSent}).Attempt(testCandidate)

	if res.Outcome != OutcomeConnected {
		t.Fatalf("expected Connected via forced click, got %v", res.Outcome)
	}
	if btn.forced != 1 {
		t.Errorf("forced activation used %d times", btn.forced)
	}
}

func TestAttemptMenuPathWhenDirectAbsent(t *testing.T) {
	s := newFakeSession()
	more := &fakeElement{text: "More"}
	entry := &fakeElement{text: "Connect"}
	s.singles[moreMenuSelectors[0]] = more
	s.singles[menuConnectSelectors[0]] = entry

	dialog := &stubDialog{outcome: DialogSent}
	res := newTestConnector(s, dialog).Attempt(testCandidate)

	// The secondary path must produce a result, never NoAffordanceFound.
	if res.Outcome != OutcomeConnected {
		t.Fatalf("expected Connected via More menu, got %v", res.Outcome)
	}
	if more.clicks != 1 || entry.clicks != 1 {
		t.Errorf("menu clicks: more=%d entry=%d", more.clicks, entry.clicks)
	}
}

func TestAttemptNoAffordanceAnywhere(t *testing.T) {
	s := newFakeSession()

	res := newTestConnector(s, &stubDialog{outcome: DialogSent}).Attempt(testCandidate)

	if res.Outcome != OutcomeNoAffordance {
		t.Fatalf("expected NoAffordance, got %v", res.Outcome)
	}
}

func TestAttemptDialogNotFoundMapsToNoAffordance(t *testing.T) {
	s := newFakeSession()
	s.singles[directConnectSelectors[0]] = &fakeElement{text: "Connect"}

	res := newTestConnector(s, &stubDialog{outcome: DialogNotFound}).Attempt(testCandidate)

	if res.Outcome != OutcomeNoAffordance {
		t.Fatalf("expected NoAffordance when dialog never confirms, got %v", res.Outcome)
	}
}

func TestAttemptDetectsPendingButton(t *testing.T) {
	s := newFakeSession()
	s.singles[directConnectSelectors[0]] = &fakeElement{text: "Pending"}

	dialog := &stubDialog{outcome: DialogSent}
	res := newTestConnector(s, dialog).Attempt(testCandidate)

	if res.Outcome != OutcomeAlreadyPending {
		t.Fatalf("expected AlreadyPending, got %v", res.Outcome)
	}
	if dialog.calls != 0 {
		t.Error("dialog must not be resolved for a pending profile")
	}
}

func TestAttemptNavigationFailureIsError(t *testing.T) {
	s := newFakeSession()
	s.navErr = errors.New("net::ERR_CONNECTION_RESET")

	res := newTestConnector(s, &stubDialog{outcome: DialogSent}).Attempt(testCandidate)

	if res.Outcome != OutcomeError {
		t.Fatalf("expected Error, got %v", res.Outcome)
	}
	if res.Reason == "" {
		t.Error("error result should carry a reason")
	}
}

func TestAttemptSkipsInvisibleDirectButton(t *testing.T) {
	s := newFakeSession()
	s.singles[directConnectSelectors[0]] = &fakeElement{text: "Connect", invisible: true}
	s.singles[moreMenuSelectors[0]] = &fakeElement{text: "More"}
	s.singles[menuConnectSelectors[0]] = &fakeElement{text: "Connect"}

	res := newTestConnector(s, &stubDialog{outcome: DialogSent}).Attempt(testCandidate)

	if res.Outcome != OutcomeConnected {
		t.Fatalf("invisible direct button should fall through to the menu path, got %v", res.Outcome)
	}
}

func TestAttemptSkimsProfileBeforeProbing(t *testing.T) {
	s := newFakeSession()
	s.singles[directConnectSelectors[0]] = &fakeElement{text: "Connect"}

	newTestConnector(s, &stubDialog{outcome: DialogSent}).Attempt(testCandidate)

	if s.skims != 2 {
		t.Errorf("profile skimmed %d scroll steps, want 2", s.skims)
	}
}

func TestAttemptPacesWithConfiguredDelayBounds(t *testing.T) {
	s := newFakeSession()
	s.singles[directConnectSelectors[0]] = &fakeElement{text: "Connect"}

	c := NewConnector(s, 250*time.Millisecond, 900*time.Millisecond)
	c.dialog = &stubDialog{outcome: DialogSent}

	var waits [][2]time.Duration
	c.wait = func(min, max time.Duration) {
		waits = append(waits, [2]time.Duration{min, max})
	}

	c.Attempt(testCandidate)

	if len(waits) == 0 {
		t.Fatal("expected at least one settle wait")
	}
	for _, w := range waits {
		if w[0] != 250*time.Millisecond || w[1] != 900*time.Millisecond {
			t.Errorf("settle wait used bounds %v-%v, want 250ms-900ms", w[0], w[1])
		}
	}
}

func TestConnectorDefaultsDelayBounds(t *testing.T) {
	c := NewConnector(newFakeSession(), 0, 0)

	if c.delayMin != 800*time.Millisecond || c.delayMax != 2500*time.Millisecond {
		t.Errorf("default bounds %v-%v, want 800ms-2.5s", c.delayMin, c.delayMax)
	}
}
