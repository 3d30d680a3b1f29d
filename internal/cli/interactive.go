package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/dyike/PulseGo/config"
	"github.com/dyike/PulseGo/internal/display"
	"github.com/dyike/PulseGo/internal/export"
	"github.com/dyike/PulseGo/internal/gateway"
	"github.com/dyike/PulseGo/internal/models"
	"github.com/dyike/PulseGo/internal/session"
)

// runInteractiveMode runs the prompt-analyze-render loop until the user
// quits. Analyses run one at a time on this single control flow; there is
// no way to start a second request while one is in flight.
func runInteractiveMode(cfg *config.Config, mgr *config.Manager) error {
	ctx := context.Background()

	provider, err := gateway.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	controller := session.NewController(provider)

	if mgr != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := mgr.Watch(watchCtx, func(config.Config) {
			log.Printf("[config] reloaded from %s", mgr.Path())
		}); err != nil {
			log.Printf("[config] watch failed: %v", err)
		}
	}

	display.DisplayWelcomeBanner()

	previous := ""
	for {
		// Config edits apply between analyses, never mid-request.
		if mgr != nil {
			if latest := mgr.Get(); latest != *cfg {
				*cfg = latest
				if p, perr := gateway.NewProvider(ctx, cfg); perr != nil {
					display.DisplayError(fmt.Sprintf("Config reload: %v", perr))
				} else {
					controller = session.NewController(p)
					display.DisplayInfo(fmt.Sprintf("Configuration reloaded, now using the %s provider", cfg.Provider))
				}
			}
		}

		raw, err := PromptForURLs(previous)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Println("👋 Thanks for using PulseGo!")
				return nil
			}
			return err
		}
		previous = raw

		display.DisplayInfo(fmt.Sprintf("Analyzing with the %s provider...", cfg.Provider))
		sess, err := controller.RunAnalysis(ctx, raw)
		if err != nil {
			// The prompt validator should have caught this already.
			display.DisplayError(err.Error())
			continue
		}

		if sess.State() == session.StateFailed {
			display.DisplayError(sess.FailureMessage())
			retry, err := PromptForRetry()
			if err != nil || !retry {
				return nil
			}
			continue
		}

		renderCurrentView(sess)

		quit, err := resultLoop(cfg, sess)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
		if quit {
			fmt.Println("👋 Thanks for using PulseGo!")
			return nil
		}
	}
}

// resultLoop handles view switching and export until the user starts a new
// analysis or quits. Returns true to quit the program.
func resultLoop(cfg *config.Config, sess *session.Session) (bool, error) {
	for {
		action, err := PromptForNextAction(sess.Selector().Len() > 1)
		if err != nil {
			return false, err
		}

		switch action {
		case actionSwitchView:
			index, err := PromptForView(sess.Selector())
			if err != nil {
				return false, err
			}
			if err := sess.Selector().Select(index); err != nil {
				// Prompt options come from the selector, so this is a bug.
				log.Printf("[cli] view selection: %v", err)
				continue
			}
			renderCurrentView(sess)
		case actionExportCSV:
			target := filepath.Join(cfg.ExportDir, export.FileName)
			if _, err := os.Stat(target); err == nil {
				overwrite, err := PromptForOverwrite(export.FileName)
				if err != nil {
					return false, err
				}
				if !overwrite {
					continue
				}
			}
			path, err := export.WriteFile(sess.ExportSet(), cfg.ExportDir)
			if err != nil {
				display.DisplayError(fmt.Sprintf("Export failed: %v", err))
				continue
			}
			display.DisplaySuccess(fmt.Sprintf("CSV written to %s", path))
		case actionNewAnalysis:
			return false, nil
		case actionQuit:
			return true, nil
		}
	}
}

// renderCurrentView draws the active view and schedules its keyword clouds.
func renderCurrentView(sess *session.Session) {
	display.ClearScreen()
	entry := sess.Selector().Current()
	display.RenderView(entry.Label, entry.Result)
	renderKeywordClouds(entry.Result)
}

// renderKeywordClouds lays the per-category clouds out concurrently and
// prints each one as it completes, so a slow or failed category never holds
// up the others.
func renderKeywordClouds(result *models.PostResult) {
	layouter := display.NewTermCloud()
	display.RenderClouds(result, layouter, func(res display.CloudResult) {
		fmt.Printf("☁️  %s keywords:\n%s\n\n", res.Sentiment.DisplayName(), res.Rendered)
	})
}
