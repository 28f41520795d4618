package campaign

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/linkedin-outreach/internal/browser"
	"github.com/yourusername/linkedin-outreach/internal/logger"
)

type dialogResolver interface {
	Resolve() DialogOutcome
}

// Connector attempts one connection request per candidate. Every failure is
// contained here and mapped to an AttemptResult; a candidate can never
// abort the run.
type Connector struct {
	session  browser.Session
	dialog   dialogResolver
	wait     waitFunc
	delayMin time.Duration
	delayMax time.Duration
}

// NewConnector returns a connector bound to the session. delayMin and
// delayMax bound the settle waits between page actions; zero values fall
// back to defaults.
func NewConnector(session browser.Session, delayMin, delayMax time.Duration) *Connector {
	if delayMax <= 0 {
		delayMin = 800 * time.Millisecond
		delayMax = 2500 * time.Millisecond
	}
	return &Connector{
		session:  session,
		dialog:   NewDialogResolver(session, delayMin, delayMax),
		wait:     defaultWait(),
		delayMin: delayMin,
		delayMax: delayMax,
	}
}

// Attempt navigates to the candidate's profile and tries to send a
// connection request, first through the inline Connect button, then through
// the More-actions dropdown. The candidate is never retried within a call.
func (c *Connector) Attempt(cand Candidate) AttemptResult {
	if err := c.session.Navigate(cand.ProfileURL); err != nil {
		return attemptError(fmt.Errorf("failed to navigate to profile: %w", err))
	}
	if err := c.session.WaitLoad(); err != nil {
		return attemptError(fmt.Errorf("failed to wait for page load: %w", err))
	}

	// Skim the profile the way a person would before acting; failure to
	// scroll never fails the candidate.
	if err := c.session.HumanScroll(2); err != nil {
		logger.Debug("Profile skim scroll failed", "error", err)
	}

	// Render settle.
	c.wait(c.delayMin, c.delayMax)

	// Path 1: inline Connect button.
	if el, selector, err := findFirst(c.session, directConnectSelectors, probeTimeout); err == nil {
		logger.Debug("Found direct connect button", "selector", selector)

		if notActionable(el) {
			return alreadyPending()
		}

		if err := el.Click(); err != nil {
			// Sticky headers and toasts swallow clicks on this button;
			// programmatic activation is the second attempt.
			if err := el.ForceClick(); err != nil {
				return attemptError(fmt.Errorf("connect button not clickable: %w", err))
			}
		}

		return c.confirm()
	}

	// Path 2: Connect hidden behind the More-actions dropdown.
	moreEl, selector, err := findFirst(c.session, moreMenuSelectors, probeTimeout)
	if err != nil {
		logger.Debug("No connect path on profile", "profile_url", cand.ProfileURL)
		return noAffordance()
	}
	logger.Debug("Using More menu path", "selector", selector)

	if err := moreEl.Click(); err != nil {
		if err := moreEl.ForceClick(); err != nil {
			return attemptError(fmt.Errorf("more menu not clickable: %w", err))
		}
	}

	// Menu render settle.
	c.wait(c.delayMin, c.delayMax)

	// The dropdown re-renders while it animates open, so the connect entry
	// is clicked through the retrying primitive.
	if err := clickResilient(c.session, menuConnectSelectors, 2, probeTimeout, c.wait); err != nil {
		logger.Debug("No connect entry in More menu", "profile_url", cand.ProfileURL)
		return noAffordance()
	}

	return c.confirm()
}

// confirm delegates to the dialog resolver and maps its outcome.
func (c *Connector) confirm() AttemptResult {
	if c.dialog.Resolve() == DialogSent {
		return connected()
	}
	return noAffordance()
}

// notActionable reports whether the button text shows the relationship is
// already settled (pending invite or existing connection).
func notActionable(el browser.Element) bool {
	text, err := el.Text()
	if err != nil {
		return false
	}
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.Contains(t, "pending") || strings.Contains(t, "message") || strings.Contains(t, "connected")
}
