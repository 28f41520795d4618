// Package browser abstracts the browser-controllable session the campaign
// pipeline drives. The pipeline only sees these interfaces; the rod binding
// lives alongside so the campaign packages stay testable without Chrome.
package browser

import "time"

// Element is a single rendered UI element.
type Element interface {
	// Click dispatches a real mouse click on the element.
	Click() error
	// ForceClick activates the element programmatically. Used as a second
	// attempt when a standard click fails (overlays, sticky headers).
	ForceClick() error
	// Text returns the element's visible text.
	Text() (string, error)
	// Property reads a DOM property such as "href".
	Property(name string) (string, error)
	// Element queries a descendant of this element.
	Element(selector string) (Element, error)
	// Visible reports whether the element is rendered and visible.
	Visible() (bool, error)
}

// Session is one authenticated browser page. At most one navigation or
// action may be in flight at a time; the campaign owns the session
// exclusively for the duration of a run.
type Session interface {
	// Navigate loads the given URL.
	Navigate(url string) error
	// WaitLoad blocks until the current navigation settles.
	WaitLoad() error
	// Element waits up to timeout for an element matching selector.
	Element(selector string, timeout time.Duration) (Element, error)
	// Elements returns all currently rendered elements matching selector.
	Elements(selector string) ([]Element, error)
	// ScrollToBottom scrolls the page to its current bottom, triggering
	// lazy-loaded listings to render more content.
	ScrollToBottom() error
	// HumanScroll scrolls the page count times in small uneven steps with
	// reading pauses, the way a person skims a page.
	HumanScroll(count int) error
	// ContentHeight returns the document's scroll height, used as the
	// content-size proxy when detecting listing exhaustion.
	ContentHeight() (int, error)
}
