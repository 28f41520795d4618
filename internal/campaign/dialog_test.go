package campaign

import (
	"errors"
	"testing"
	"time"
)

func newTestResolver(s *fakeSession) *DialogResolver {
	r := NewDialogResolver(s, 0, 0)
	r.wait = noWait
	return r
}

func TestResolveSendsOnPrimaryVariant(t *testing.T) {
	s := newFakeSession()
	btn := &fakeElement{text: "Send without a note"}
	s.singles[sendDialogSelectors[0]] = btn

	if got := newTestResolver(s).Resolve(); got != DialogSent {
		t.Fatalf("expected Sent, got %v", got)
	}
	if btn.clicks != 1 {
		t.Errorf("send button clicked %d times", btn.clicks)
	}
}

func TestResolveSendsOnFallbackVariant(t *testing.T) {
	s := newFakeSession()
	// Only the loosest variant matches this dialog.
	last := sendDialogSelectors[len(sendDialogSelectors)-1]
	s.singles[last] = &fakeElement{text: "Send"}

	if got := newTestResolver(s).Resolve(); got != DialogSent {
		t.Fatalf("expected Sent via fallback selector, got %v", got)
	}
}

func TestResolveNotFoundWhenNoDialog(t *testing.T) {
	s := newFakeSession()

	if got := newTestResolver(s).Resolve(); got != DialogNotFound {
		t.Fatalf("expected NotFound, got %v", got)
	}
}

func TestResolveFailsOpenOnActivationError(t *testing.T) {
	s := newFakeSession()
	s.singles[sendDialogSelectors[0]] = &fakeElement{
		clickErr: errors.New("intercepted"),
		forceErr: errors.New("detached"),
	}

	// An affordance that cannot be activated maps to NotFound, never an
	// error that could abort the candidate loop.
	if got := newTestResolver(s).Resolve(); got != DialogNotFound {
		t.Fatalf("expected NotFound, got %v", got)
	}
}

func TestResolveUsesConfiguredDelayBounds(t *testing.T) {
	s := newFakeSession()
	s.singles[sendDialogSelectors[0]] = &fakeElement{text: "Send"}

	r := NewDialogResolver(s, 300*time.Millisecond, 700*time.Millisecond)

	var waits [][2]time.Duration
	r.wait = func(min, max time.Duration) {
		waits = append(waits, [2]time.Duration{min, max})
	}

	if got := r.Resolve(); got != DialogSent {
		t.Fatalf("expected Sent, got %v", got)
	}
	if len(waits) != 2 {
		t.Fatalf("expected settle waits before and after the send, got %d", len(waits))
	}
	for _, w := range waits {
		if w[0] != 300*time.Millisecond || w[1] != 700*time.Millisecond {
			t.Errorf("settle wait used bounds %v-%v, want 300ms-700ms", w[0], w[1])
		}
	}
}
