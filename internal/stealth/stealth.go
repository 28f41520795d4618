// Package stealth provides the pacing and fingerprint-masking primitives the
// automation relies on to look like a person at a keyboard.
package stealth

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

var rng *rand.Rand

func init() {
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomDelay returns a random duration between min and max.
func RandomDelay(min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	delta := max - min
	return min + time.Duration(rng.Int63n(int64(delta)))
}

// Sleep suspends for a uniformly-random duration in [min, max].
func Sleep(min, max time.Duration) {
	time.Sleep(RandomDelay(min, max))
}

// ShortDelay returns a short random delay for between micro-actions.
func ShortDelay() time.Duration {
	return RandomDelay(100*time.Millisecond, 500*time.Millisecond)
}

// ScrollPage scrolls the page a small, uneven amount in the given direction.
func ScrollPage(page *rod.Page, direction string) error {
	scrollAmount := 50 + rng.Intn(150)

	if direction == "up" {
		scrollAmount = -scrollAmount
	}

	// Sometimes scroll in multiple steps
	steps := 1 + rng.Intn(3)
	stepAmount := scrollAmount / steps

	for i := 0; i < steps; i++ {
		_, err := page.Eval(fmt.Sprintf(`() => window.scrollBy(0, %d)`, stepAmount))
		if err != nil {
			return fmt.Errorf("failed to scroll: %w", err)
		}

		time.Sleep(RandomDelay(50*time.Millisecond, 150*time.Millisecond))
	}

	// Occasionally scroll back slightly (natural correction)
	if rng.Float64() < 0.15 {
		correction := rng.Intn(30)
		page.Eval(fmt.Sprintf(`() => window.scrollBy(0, %d)`, -correction))
		time.Sleep(ShortDelay())
	}

	return nil
}

// ScrollFeed scrolls through a feed naturally, pausing as if reading.
func ScrollFeed(page *rod.Page, scrollCount int) error {
	for i := 0; i < scrollCount; i++ {
		if err := ScrollPage(page, "down"); err != nil {
			return err
		}

		time.Sleep(RandomDelay(1*time.Second, 4*time.Second))

		// Occasionally scroll up slightly
		if rng.Float64() < 0.2 {
			ScrollPage(page, "up")
			time.Sleep(ShortDelay())
		}
	}

	return nil
}

// DisableAutomationFlags masks automation detection flags on the page.
func DisableAutomationFlags(page *rod.Page) error {
	_, err := page.Eval(`() => {
		Object.defineProperty(navigator, 'webdriver', {
			get: () => false
		});
	}`)
	if err != nil {
		return fmt.Errorf("failed to disable webdriver flag: %w", err)
	}

	_, err = page.Eval(`() => {
		const originalQuery = window.navigator.permissions.query;
		window.navigator.permissions.query = (parameters) => (
			parameters.name === 'notifications' ?
				Promise.resolve({ state: Notification.permission }) :
				originalQuery(parameters)
		);

		window.chrome = {
			runtime: {}
		};

		Object.defineProperty(navigator, 'plugins', {
			get: () => [
				{
					0: {type: "application/x-google-chrome-pdf", suffixes: "pdf", description: "Portable Document Format"},
					description: "Portable Document Format",
					filename: "internal-pdf-viewer",
					length: 1,
					name: "Chrome PDF Plugin"
				}
			]
		});
	}`)
	if err != nil {
		return fmt.Errorf("failed to mask automation properties: %w", err)
	}

	return nil
}

// RandomizeUserAgent returns a randomized but realistic user agent.
func RandomizeUserAgent() string {
	userAgents := []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}

	return userAgents[rng.Intn(len(userAgents))]
}

// SetRealisticViewport sets a realistic viewport size.
func SetRealisticViewport(page *rod.Page) error {
	viewports := []struct{ Width, Height int }{
		{1920, 1080},
		{1366, 768},
		{1536, 864},
		{1440, 900},
		{1280, 720},
	}

	viewport := viewports[rng.Intn(len(viewports))]
	return page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  viewport.Width,
		Height: viewport.Height,
	})
}

// TypeText types text into an input field with variable keystroke delays.
func TypeText(page *rod.Page, selector, text string) error {
	element, err := page.Element(selector)
	if err != nil {
		return fmt.Errorf("element not found: %w", err)
	}

	if err := element.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click element: %w", err)
	}

	time.Sleep(ShortDelay())

	for _, char := range text {
		if err := element.Input(string(char)); err != nil {
			return fmt.Errorf("failed to type character: %w", err)
		}
		time.Sleep(RandomDelay(80*time.Millisecond, 250*time.Millisecond))
	}

	return nil
}
