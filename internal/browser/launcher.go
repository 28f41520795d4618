package browser

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/yourusername/linkedin-outreach/internal/logger"
	st "github.com/yourusername/linkedin-outreach/internal/stealth"
)

// Launch starts a Chrome instance with stealth configuration and returns
// the connected browser plus a cleanup function.
func Launch(headless bool) (*rod.Browser, func(), error) {
	// Prefer a local Chrome installation (avoids leakless.exe issues)
	path, exists := launcher.LookPath()
	var l *launcher.Launcher

	if exists {
		logger.Info("Using system Chrome browser", "path", path)
		l = launcher.New().Bin(path)
	} else {
		logger.Info("System Chrome not found, using downloaded browser")
		l = launcher.New()
	}

	l = l.Headless(headless).
		Devtools(false).
		Leakless(false) // Disable leakless to avoid antivirus issues

	userAgent := st.RandomizeUserAgent()
	l = l.Set("user-agent", userAgent)

	url, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	// Warm up the stealth plugin so its evasions are registered
	if warm, err := stealth.Page(browser); err != nil {
		logger.Warn("Failed to apply stealth settings", "error", err)
	} else {
		warm.Close()
	}

	logger.Info("Browser launched", "headless", headless, "user_agent", userAgent)

	cleanup := func() {
		logger.Info("Closing browser...")
		browser.MustClose()
	}

	return browser, cleanup, nil
}

// NewPage opens a fresh page with automation flags masked and a realistic
// viewport, ready to be handed to the campaign as its session.
func NewPage(browser *rod.Browser) (*RodSession, error) {
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	if err := st.DisableAutomationFlags(page); err != nil {
		logger.Warn("Failed to mask automation flags", "error", err)
	}
	if err := st.SetRealisticViewport(page); err != nil {
		logger.Warn("Failed to set viewport", "error", err)
	}

	return NewRodSession(page), nil
}
