package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/yourusername/linkedin-outreach/internal/stealth"
)

// RodSession binds Session to a rod page.
type RodSession struct {
	page *rod.Page
}

// NewRodSession wraps an already authenticated rod page.
func NewRodSession(page *rod.Page) *RodSession {
	return &RodSession{page: page}
}

// Page exposes the underlying rod page for collaborators that need raw
// access (stealth setup, screenshots).
func (s *RodSession) Page() *rod.Page {
	return s.page
}

func (s *RodSession) Navigate(url string) error {
	if err := s.page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *RodSession) WaitLoad() error {
	return s.page.WaitLoad()
}

func (s *RodSession) Element(selector string, timeout time.Duration) (Element, error) {
	el, err := s.page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, err
	}
	return &rodElement{el: el}, nil
}

func (s *RodSession) Elements(selector string) ([]Element, error) {
	els, err := s.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	out := make([]Element, 0, len(els))
	for _, el := range els {
		out = append(out, &rodElement{el: el})
	}
	return out, nil
}

func (s *RodSession) ScrollToBottom() error {
	_, err := s.page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	if err != nil {
		return fmt.Errorf("failed to scroll to bottom: %w", err)
	}
	return nil
}

func (s *RodSession) HumanScroll(count int) error {
	return stealth.ScrollFeed(s.page, count)
}

func (s *RodSession) ContentHeight() (int, error) {
	res, err := s.page.Eval(`() => document.body.scrollHeight`)
	if err != nil {
		return 0, fmt.Errorf("failed to read content height: %w", err)
	}
	return int(res.Value.Num()), nil
}

type rodElement struct {
	el *rod.Element
}

func (e *rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

func (e *rodElement) ForceClick() error {
	_, err := e.el.Eval(`() => this.click()`)
	return err
}

func (e *rodElement) Text() (string, error) {
	return e.el.Text()
}

func (e *rodElement) Property(name string) (string, error) {
	prop, err := e.el.Property(name)
	if err != nil {
		return "", err
	}
	return prop.String(), nil
}

func (e *rodElement) Element(selector string) (Element, error) {
	el, err := e.el.Element(selector)
	if err != nil {
		return nil, err
	}
	return &rodElement{el: el}, nil
}

func (e *rodElement) Visible() (bool, error) {
	return e.el.Visible()
}
