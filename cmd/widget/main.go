package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/leadbothq/leadbot-widget/internal/config"
	"github.com/leadbothq/leadbot-widget/internal/observability/metrics"
	"github.com/leadbothq/leadbot-widget/internal/session"
	"github.com/leadbothq/leadbot-widget/internal/widget"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	tenantID := flag.String("tenant", cfg.TenantID, "tenant id the widget talks to")
	baseURL := flag.String("base-url", cfg.APIBaseURL, "backend base URL override (development only)")
	flag.Parse()

	logger := logging.NewWithWriter(os.Stderr, cfg.LogLevel, "text")

	if strings.TrimSpace(*tenantID) == "" {
		// No tenant declared: the widget never activates.
		fmt.Fprintln(os.Stderr, "no tenant id set (use -tenant or LEADBOT_TENANT_ID)")
		os.Exit(2)
	}

	ctx := context.Background()
	projector := newConsoleProjector(os.Stdout)
	handle, err := widget.Bootstrap(ctx, *tenantID, widget.Config{
		BaseURL: *baseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  logger,
		// Registered on the default registerer so an embedding process
		// that exposes /metrics picks the widget series up.
		Metrics: metrics.NewWidgetMetrics(prometheus.DefaultRegisterer),
	}, projector)
	if err != nil {
		var ae *widget.ActivationError
		if errors.As(err, &ae) {
			// Banner already rendered; nothing interactive to run.
			os.Exit(1)
		}
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	runChatLoop(ctx, handle)
}

func runChatLoop(ctx context.Context, handle *widget.SessionHandle) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Type a message and press enter. Ctrl-D to quit.")

	for {
		if handle.Stage() == session.StageCollectingInfo {
			if !collectInfo(ctx, handle, scanner) {
				return
			}
			continue
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if err := handle.Send(ctx, scanner.Text()); err != nil {
			// Already surfaced in the transcript; keep the loop alive.
			continue
		}
	}
}

// collectInfo walks the visitor through the contact form, re-prompting on
// validation failure. Returns false when stdin is exhausted.
func collectInfo(ctx context.Context, handle *widget.SessionHandle, scanner *bufio.Scanner) bool {
	for {
		name, ok := prompt(scanner, "Your name: ")
		if !ok {
			return false
		}
		email, ok := prompt(scanner, "Email: ")
		if !ok {
			return false
		}
		phone, ok := prompt(scanner, "Phone (optional): ")
		if !ok {
			return false
		}

		err := handle.SubmitInfo(ctx, name, email, phone)
		if err == nil {
			return true
		}
		if errors.Is(err, session.ErrNotCollectingInfo) {
			return true
		}
		fmt.Printf("Could not submit: %v\n", err)
		if handle.Stage() != session.StageCollectingInfo {
			return true
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
