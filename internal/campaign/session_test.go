package campaign

import (
	"errors"
	"time"

	"github.com/yourusername/linkedin-outreach/internal/browser"
)

// Fakes for the browser capability, shared by the campaign tests.

var errNotFound = errors.New("not found")

type fakeElement struct {
	text      string
	props     map[string]string
	children  map[string]*fakeElement
	invisible bool
	clickErr  error
	forceErr  error
	clicks    int
	forced    int
}

func (e *fakeElement) Click() error {
	if e.clickErr != nil {
		return e.clickErr
	}
	e.clicks++
	return nil
}

func (e *fakeElement) ForceClick() error {
	if e.forceErr != nil {
		return e.forceErr
	}
	e.forced++
	return nil
}

func (e *fakeElement) Text() (string, error) {
	return e.text, nil
}

func (e *fakeElement) Property(name string) (string, error) {
	if v, ok := e.props[name]; ok {
		return v, nil
	}
	return "", errNotFound
}

func (e *fakeElement) Element(selector string) (browser.Element, error) {
	if child, ok := e.children[selector]; ok {
		return child, nil
	}
	return nil, errNotFound
}

func (e *fakeElement) Visible() (bool, error) {
	return !e.invisible, nil
}

type fakeSession struct {
	singles   map[string]*fakeElement
	lists     map[string][]*fakeElement
	heights   []int
	heightIdx int
	navigated []string
	navErr    error
	scrolls   int
	skims     int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		singles: make(map[string]*fakeElement),
		lists:   make(map[string][]*fakeElement),
	}
}

func (s *fakeSession) Navigate(url string) error {
	if s.navErr != nil {
		return s.navErr
	}
	s.navigated = append(s.navigated, url)
	return nil
}

func (s *fakeSession) WaitLoad() error {
	return nil
}

func (s *fakeSession) Element(selector string, _ time.Duration) (browser.Element, error) {
	if el, ok := s.singles[selector]; ok {
		return el, nil
	}
	return nil, errNotFound
}

func (s *fakeSession) Elements(selector string) ([]browser.Element, error) {
	els, ok := s.lists[selector]
	if !ok {
		return nil, nil
	}
	out := make([]browser.Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out, nil
}

func (s *fakeSession) ScrollToBottom() error {
	s.scrolls++
	return nil
}

func (s *fakeSession) HumanScroll(count int) error {
	s.skims += count
	return nil
}

func (s *fakeSession) ContentHeight() (int, error) {
	if len(s.heights) == 0 {
		return 0, nil
	}
	if s.heightIdx >= len(s.heights) {
		return s.heights[len(s.heights)-1], nil
	}
	h := s.heights[s.heightIdx]
	s.heightIdx++
	return h, nil
}

// noWait is the test stand-in for the randomized delays.
func noWait(_, _ time.Duration) {}

// memberCard builds a fake listing entry with a profile link and an
// optional degree badge.
func memberCard(href, degree string) *fakeElement {
	card := &fakeElement{children: map[string]*fakeElement{
		profileLinkSelector: {props: map[string]string{"href": href}},
	}}
	if degree != "" {
		card.children[degreeBadgeSelectors[0]] = &fakeElement{text: degree}
	}
	return card
}
