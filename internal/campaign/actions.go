package campaign

import (
	"errors"
	"time"

	"github.com/yourusername/linkedin-outreach/internal/browser"
	"github.com/yourusername/linkedin-outreach/internal/logger"
	"github.com/yourusername/linkedin-outreach/internal/stealth"
)

// ErrElementNotFound is returned when no selector in a fallback list
// produced an element within the allotted attempts.
var ErrElementNotFound = errors.New("element not found")

// waitFunc suspends for a random duration in [min, max]. Components default
// to stealth.Sleep; tests substitute a no-op.
type waitFunc func(min, max time.Duration)

const probeTimeout = 3 * time.Second

// findFirst probes an ordered fallback selector list and returns the first
// visible match along with the selector that hit.
func findFirst(s browser.Session, selectors []string, timeout time.Duration) (browser.Element, string, error) {
	for _, selector := range selectors {
		el, err := s.Element(selector, timeout)
		if err != nil {
			continue
		}
		if visible, err := el.Visible(); err == nil && !visible {
			continue
		}
		return el, selector, nil
	}
	return nil, "", ErrElementNotFound
}

// clickResilient locates an element matching any selector in the fallback
// list and clicks it, retrying with a randomized delay between attempts.
// A click triggers the remote UI action, so callers must not assume a
// failed return means nothing happened.
func clickResilient(s browser.Session, selectors []string, maxAttempts int, timeout time.Duration, wait waitFunc) error {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		el, selector, err := findFirst(s, selectors, timeout)
		if err == nil {
			if err := el.Click(); err == nil {
				logger.Debug("Clicked element", "selector", selector, "attempt", attempt)
				return nil
			}
			// Standard click can be blocked by overlays; force as a
			// second try before moving on.
			if err := el.ForceClick(); err == nil {
				logger.Debug("Force-clicked element", "selector", selector, "attempt", attempt)
				return nil
			}
		}

		if attempt < maxAttempts {
			wait(500*time.Millisecond, 1500*time.Millisecond)
		}
	}

	return ErrElementNotFound
}

func defaultWait() waitFunc {
	return stealth.Sleep
}
