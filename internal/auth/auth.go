// Package auth bootstraps the authenticated session the campaign requires.
// It restores saved cookies when possible and falls back to a credential
// login. A failure here is fatal to the run.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/yourusername/linkedin-outreach/internal/logger"
	"github.com/yourusername/linkedin-outreach/internal/stealth"
)

const (
	LoginURL        = "https://www.linkedin.com/login"
	SessionDir      = "./sessions"
	CookiesFile     = "cookies.json"
	MaxLoginRetries = 3
)

// Login establishes an authenticated LinkedIn session, preferring a saved
// cookie session over a fresh credential login.
func Login(browser *rod.Browser, email, password string) error {
	logger.Info("Starting LinkedIn login", "email", email)

	if err := LoadSession(browser); err == nil {
		logger.Info("Loaded saved session, verifying...")

		page := browser.MustPage()
		defer page.Close()

		page.MustNavigate("https://www.linkedin.com/feed/")
		page.MustWaitLoad()
		stealth.Sleep(1*time.Second, 3*time.Second)

		if isLoggedIn(page) {
			logger.Info("Saved session is valid")
			return nil
		}

		logger.Warn("Saved session expired, proceeding with fresh login")
	}

	var lastErr error
	for attempt := 1; attempt <= MaxLoginRetries; attempt++ {
		logger.Info("Login attempt", "attempt", attempt, "max_retries", MaxLoginRetries)

		err := performLogin(browser, email, password)
		if err == nil {
			logger.Info("Login successful")
			return nil
		}

		lastErr = err
		logger.Warn("Login attempt failed", "attempt", attempt, "error", err)
		stealth.Sleep(5*time.Second, 15*time.Second)
	}

	return fmt.Errorf("login failed after %d attempts: %w", MaxLoginRetries, lastErr)
}

// performLogin executes one credential login flow.
func performLogin(browser *rod.Browser, email, password string) error {
	page := browser.MustPage()
	defer page.Close()

	logger.Debug("Navigating to LinkedIn login page")
	if err := page.Navigate(LoginURL); err != nil {
		return fmt.Errorf("failed to navigate to login page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to wait for page load: %w", err)
	}

	stealth.DisableAutomationFlags(page)
	stealth.SetRealisticViewport(page)

	stealth.Sleep(1*time.Second, 3*time.Second)

	logger.Debug("Filling email field")
	if err := stealth.TypeText(page, "#username", email); err != nil {
		return fmt.Errorf("failed to type email: %w", err)
	}

	stealth.Sleep(1*time.Second, 2*time.Second)

	logger.Debug("Filling password field")
	passwordField, err := page.Element("#password")
	if err != nil {
		return fmt.Errorf("password field not found: %w", err)
	}
	if err := passwordField.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click password field: %w", err)
	}

	// Type the password directly so its characters never pass through
	// logged helpers.
	for _, char := range password {
		if err := passwordField.Input(string(char)); err != nil {
			return fmt.Errorf("failed to type password: %w", err)
		}
		stealth.Sleep(100*time.Millisecond, 200*time.Millisecond)
	}

	stealth.Sleep(1*time.Second, 2*time.Second)

	logger.Debug("Clicking sign in button")
	signInButton, err := page.Element("button[type='submit']")
	if err != nil {
		return fmt.Errorf("sign in button not found: %w", err)
	}
	if err := signInButton.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click sign in button: %w", err)
	}

	// Give the login redirect time to land.
	time.Sleep(5 * time.Second)

	if !isLoggedIn(page) {
		return fmt.Errorf("login did not reach an authenticated page (challenge or bad credentials)")
	}

	logger.Debug("Saving session cookies")
	cookies, err := page.Cookies([]string{})
	if err != nil {
		logger.Warn("Failed to get cookies", "error", err)
	} else if err := SaveSession(cookies); err != nil {
		logger.Warn("Failed to save session", "error", err)
	}

	return nil
}

// isLoggedIn checks for navigation chrome that only renders when
// authenticated.
func isLoggedIn(page *rod.Page) bool {
	loggedInSelectors := []string{
		"#global-nav",
		".global-nav__me",
		"a[href*='/feed/']",
	}

	for _, selector := range loggedInSelectors {
		has, _, _ := page.Has(selector)
		if has {
			return true
		}
	}

	currentURL := page.MustInfo().URL
	return strings.Contains(currentURL, "/feed") || strings.Contains(currentURL, "/mynetwork")
}

// SaveSession writes browser cookies to the session file.
func SaveSession(cookies []*proto.NetworkCookie) error {
	if err := os.MkdirAll(SessionDir, 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(cookies, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cookies: %w", err)
	}

	cookiesPath := filepath.Join(SessionDir, CookiesFile)
	if err := os.WriteFile(cookiesPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write cookies file: %w", err)
	}

	logger.Info("Session saved", "path", cookiesPath)
	return nil
}

// LoadSession restores cookies from the session file into the browser.
func LoadSession(browser *rod.Browser) error {
	cookiesPath := filepath.Join(SessionDir, CookiesFile)

	data, err := os.ReadFile(cookiesPath)
	if err != nil {
		return fmt.Errorf("no saved session: %w", err)
	}

	var cookies []*proto.NetworkCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return fmt.Errorf("failed to unmarshal cookies: %w", err)
	}

	page := browser.MustPage()
	defer page.Close()

	cookieParams := make([]*proto.NetworkCookieParam, len(cookies))
	for i, cookie := range cookies {
		cookieParams[i] = &proto.NetworkCookieParam{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Domain:   cookie.Domain,
			Path:     cookie.Path,
			Secure:   cookie.Secure,
			HTTPOnly: cookie.HTTPOnly,
			SameSite: cookie.SameSite,
		}
	}

	if err := page.SetCookies(cookieParams); err != nil {
		return fmt.Errorf("failed to set cookies: %w", err)
	}

	logger.Info("Session loaded", "cookie_count", len(cookies))
	return nil
}

// ClearSession removes saved session data.
func ClearSession() error {
	cookiesPath := filepath.Join(SessionDir, CookiesFile)

	if err := os.Remove(cookiesPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cookies file: %w", err)
	}

	logger.Info("Session cleared")
	return nil
}
