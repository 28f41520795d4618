package campaign

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/linkedin-outreach/internal/browser"
	"github.com/yourusername/linkedin-outreach/internal/logger"
)

// ProcessedChecker answers whether a profile was already handled in an
// earlier run. Satisfied by the storage layer; nil disables the filter.
type ProcessedChecker interface {
	ProfileProcessed(profileURL string) (bool, error)
}

// CollectorOptions tunes the listing walk.
type CollectorOptions struct {
	// MaxStaleScrolls is how many consecutive no-growth scroll cycles mark
	// the listing as exhausted.
	MaxStaleScrolls int
	// SettleMin/SettleMax bound the delay after each scroll.
	SettleMin time.Duration
	SettleMax time.Duration
	// SkipPending drops entries whose card already shows a pending invite.
	SkipPending bool
}

// Collector walks the group-member listing and produces the ordered,
// deduplicated candidate set for the run.
type Collector struct {
	session    browser.Session
	listingURL string
	opts       CollectorOptions
	store      ProcessedChecker
	events     *Broker
	wait       waitFunc
}

// NewCollector returns a collector for the given member-listing URL.
// store and events may be nil.
func NewCollector(session browser.Session, listingURL string, opts CollectorOptions, store ProcessedChecker, events *Broker) *Collector {
	if opts.MaxStaleScrolls <= 0 {
		opts.MaxStaleScrolls = 3
	}
	if opts.SettleMax <= 0 {
		opts.SettleMin = 2 * time.Second
		opts.SettleMax = 4 * time.Second
	}
	return &Collector{
		session:    session,
		listingURL: listingURL,
		opts:       opts,
		store:      store,
		events:     events,
		wait:       defaultWait(),
	}
}

// Collect loads the listing and repeatedly harvests rendered entries,
// scrolling to trigger more content until the content-height proxy stops
// growing for MaxStaleScrolls consecutive cycles. Failure to load the
// listing at all is fatal; everything past that degrades per entry.
func (c *Collector) Collect() (*CandidateSet, error) {
	if err := c.session.Navigate(c.listingURL); err != nil {
		return nil, fmt.Errorf("failed to load member listing: %w", err)
	}
	if err := c.session.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to wait for member listing: %w", err)
	}

	c.wait(c.opts.SettleMin, c.opts.SettleMax)

	set := NewCandidateSet()
	lastHeight := -1
	staleScrolls := 0

	for {
		c.harvest(set)

		if err := c.session.ScrollToBottom(); err != nil {
			logger.Warn("Failed to scroll listing", "error", err)
		}

		c.wait(c.opts.SettleMin, c.opts.SettleMax)

		height, err := c.session.ContentHeight()
		if err != nil {
			logger.Warn("Failed to read listing height", "error", err)
			height = lastHeight
		}

		if height == lastHeight {
			staleScrolls++
			if staleScrolls >= c.opts.MaxStaleScrolls {
				break
			}
		} else {
			staleScrolls = 0
			lastHeight = height
		}
	}

	logger.Info("Member listing exhausted", "candidates", set.Len())
	c.events.Publish(Event{Type: EventListingExhausted, Processed: set.Len()})

	return set, nil
}

// harvest reads all currently rendered entries and admits the new,
// qualified ones to the set. A broken entry is skipped, never fatal.
func (c *Collector) harvest(set *CandidateSet) {
	entries := c.listingEntries()

	for _, entry := range entries {
		cand, ok := c.extract(entry)
		if !ok {
			continue
		}

		if c.store != nil {
			processed, err := c.store.ProfileProcessed(cand.ProfileURL)
			if err != nil {
				logger.Warn("Failed to check processed profile", "url", cand.ProfileURL, "error", err)
			} else if processed {
				logger.Debug("Profile already processed in earlier run", "url", cand.ProfileURL)
				continue
			}
		}

		if set.Add(cand) {
			logger.Debug("Candidate discovered", "url", cand.ProfileURL, "degree", cand.Degree.String())
			c.events.Publish(Event{
				Type:       EventCandidateFound,
				ProfileURL: cand.ProfileURL,
				Degree:     cand.Degree.String(),
			})
		}
	}
}

// listingEntries returns the rendered member cards, probing the entry
// selector variants in order.
func (c *Collector) listingEntries() []browser.Element {
	for _, selector := range listingEntrySelectors {
		entries, err := c.session.Elements(selector)
		if err == nil && len(entries) > 0 {
			return entries
		}
	}
	return nil
}

// extract pulls the canonical profile URL and degree hint out of one card.
func (c *Collector) extract(entry browser.Element) (Candidate, bool) {
	link, err := entry.Element(profileLinkSelector)
	if err != nil {
		return Candidate{}, false
	}

	href, err := link.Property("href")
	if err != nil {
		return Candidate{}, false
	}

	profileURL := CleanProfileURL(href)
	if !strings.Contains(profileURL, "/in/") {
		return Candidate{}, false
	}

	degree := DegreeUnknown
	for _, selector := range degreeBadgeSelectors {
		badge, err := entry.Element(selector)
		if err != nil {
			continue
		}
		if text, err := badge.Text(); err == nil {
			degree = ParseDegree(text)
			break
		}
	}

	if c.opts.SkipPending && c.inviteAlreadySent(entry) {
		logger.Debug("Skipping entry with pending invite", "url", profileURL)
		return Candidate{}, false
	}

	return Candidate{ProfileURL: profileURL, Degree: degree}, true
}

func (c *Collector) inviteAlreadySent(entry browser.Element) bool {
	for _, selector := range inviteSentSelectors {
		if _, err := entry.Element(selector); err == nil {
			return true
		}
	}
	return false
}
