package campaign

import (
	"time"

	"github.com/yourusername/linkedin-outreach/internal/browser"
	"github.com/yourusername/linkedin-outreach/internal/logger"
)

// DialogOutcome reports what the resolver did with the invite dialog.
type DialogOutcome int

const (
	// DialogSent means a send affordance was found and activated.
	DialogSent DialogOutcome = iota
	// DialogNotFound means no recognizable send affordance appeared. Not an
	// error: either the dialog never opened or it uses an unknown variant.
	DialogNotFound
)

// DialogResolver confirms the connection-request dialog after a connect
// click. It never fails the candidate; anything unexpected maps to
// DialogNotFound so the caller just skips.
type DialogResolver struct {
	session   browser.Session
	selectors []string
	wait      waitFunc
	delayMin  time.Duration
	delayMax  time.Duration
}

// NewDialogResolver returns a resolver bound to the session. delayMin and
// delayMax bound the settle waits around the dialog; zero values fall back
// to defaults.
func NewDialogResolver(session browser.Session, delayMin, delayMax time.Duration) *DialogResolver {
	if delayMax <= 0 {
		delayMin = 800 * time.Millisecond
		delayMax = 2500 * time.Millisecond
	}
	return &DialogResolver{
		session:   session,
		selectors: sendDialogSelectors,
		wait:      defaultWait(),
		delayMin:  delayMin,
		delayMax:  delayMax,
	}
}

// Resolve waits for the dialog to render, then searches the ordered send
// selector variants and activates the first match.
func (r *DialogResolver) Resolve() DialogOutcome {
	// Settle delay: the dialog renders asynchronously after the click.
	r.wait(r.delayMin, r.delayMax)

	el, selector, err := findFirst(r.session, r.selectors, probeTimeout)
	if err != nil {
		logger.Debug("No send affordance found in dialog")
		return DialogNotFound
	}

	if err := el.Click(); err != nil {
		if err := el.ForceClick(); err != nil {
			logger.Warn("Send affordance found but could not be activated", "selector", selector, "error", err)
			return DialogNotFound
		}
	}

	logger.Debug("Send affordance activated", "selector", selector)

	// Let the dialog close before the caller navigates away.
	r.wait(r.delayMin, r.delayMax)

	return DialogSent
}
