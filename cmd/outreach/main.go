package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/linkedin-outreach/internal/auth"
	"github.com/yourusername/linkedin-outreach/internal/browser"
	"github.com/yourusername/linkedin-outreach/internal/campaign"
	"github.com/yourusername/linkedin-outreach/internal/config"
	"github.com/yourusername/linkedin-outreach/internal/logger"
	"github.com/yourusername/linkedin-outreach/internal/storage"
)

const AppVersion = "1.0.0"

func main() {
	logger.Info("Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.ToFile, cfg.Logging.FilePath); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("LinkedIn group outreach started", "version", AppVersion)
	logger.Warn("Automating LinkedIn violates its Terms of Service; use a test account")

	logger.Info("Opening outreach ledger...", "path", cfg.Database.Path)
	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open ledger", "error", err)
	}
	defer db.Close()

	if stats, err := db.Stats(); err == nil {
		logger.Info("Ledger statistics",
			"total_attempts", stats["total_attempts"],
			"total_sent", stats["total_sent"],
			"sent_today", stats["sent_today"],
		)
	}

	logger.Info("Launching browser with stealth mode...")
	br, cleanup, err := browser.Launch(cfg.Stealth.Headless)
	if err != nil {
		logger.Fatal("Failed to launch browser", "error", err)
	}
	defer cleanup()

	logger.Info("Authenticating with LinkedIn...")
	if err := auth.Login(br, cfg.LinkedIn.Email, cfg.LinkedIn.Password); err != nil {
		logger.Fatal("Authentication failed", "error", err)
	}

	session, err := browser.NewPage(br)
	if err != nil {
		logger.Fatal("Failed to open automation page", "error", err)
	}

	events := campaign.NewBroker()
	stopLog := logEvents(events)
	defer stopLog()

	// Process-level cancellation: the campaign itself runs to cap or
	// exhaustion; Ctrl+C tears the whole run down.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan campaign.Summary, 1)
	go func() {
		summary, err := runCampaign(session, cfg, db, events)
		if err != nil {
			logger.Fatal("Campaign failed", "error", err)
		}
		done <- summary
	}()

	select {
	case <-sigChan:
		logger.Info("Received shutdown signal, cleaning up...")
	case summary := <-done:
		logger.Info("Campaign finished",
			"outcome", summary.Outcome.String(),
			"successes", summary.Successes,
			"processed", summary.Processed,
		)
	}
}

// runCampaign executes one collect-then-connect run against the configured
// group listing.
func runCampaign(session *browser.RodSession, cfg *config.Config, db *storage.DB, events *campaign.Broker) (campaign.Summary, error) {
	logger.Info("Collecting group members...", "url", cfg.Group.MembersURL)

	collector := campaign.NewCollector(session, cfg.Group.MembersURL, campaign.CollectorOptions{
		MaxStaleScrolls: cfg.Collector.MaxStaleScrolls,
		SettleMin:       cfg.SettleDelayMin(),
		SettleMax:       cfg.SettleDelayMax(),
		SkipPending:     cfg.Connection.SkipPending,
	}, db, events)

	candidates, err := collector.Collect()
	if err != nil {
		return campaign.Summary{}, fmt.Errorf("member collection failed: %w", err)
	}

	logger.Info("Candidates collected", "count", candidates.Len())

	connector := campaign.NewConnector(session, cfg.ActionDelayMin(), cfg.ActionDelayMax())
	orchestrator := campaign.NewOrchestrator(
		connector,
		cfg.Connection.DailyLimit,
		cfg.MinDelay(),
		cfg.MaxDelay(),
		db,
		events,
	)

	return orchestrator.Run(candidates.Candidates()), nil
}

// logEvents bridges the campaign event stream to the structured log so a
// run leaves an audit trail even without an external subscriber.
func logEvents(events *campaign.Broker) func() {
	ch := events.Subscribe()
	go func() {
		for ev := range ch {
			logger.Debug("Campaign event",
				"type", string(ev.Type),
				"url", ev.ProfileURL,
				"outcome", ev.Outcome,
				"successes", ev.Successes,
				"processed", ev.Processed,
			)
		}
	}()
	return func() { events.Unsubscribe(ch) }
}
