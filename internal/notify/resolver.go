package notify

import (
	"log/slog"
	"runtime"
)

// Config selects the primary delivery strategy.
type Config struct {
	// Strategy forces a specific strategy ("osascript", "toast", "notify-send",
	// "webhook", "fallback"). Empty or "auto" detects from the host OS.
	Strategy string `yaml:"strategy" env:"STRATEGY"`
	// WebhookURL is required when Strategy is "webhook".
	WebhookURL string `yaml:"webhook_url" env:"WEBHOOK_URL"`
}

// Resolve picks the primary delivery strategy once at startup. There is no
// runtime re-detection: the host OS does not change under a running process.
func Resolve(cfg Config, log *slog.Logger) Strategy {
	return resolveFor(runtime.GOOS, cfg, log)
}

func resolveFor(goos string, cfg Config, log *slog.Logger) Strategy {
	switch cfg.Strategy {
	case "", "auto":
	case "osascript":
		return NewOsascript()
	case "toast":
		return NewToast()
	case "notify-send":
		return NewNotifySend()
	case "webhook":
		if cfg.WebhookURL != "" {
			return NewWebhook(cfg.WebhookURL)
		}
		log.Warn("webhook strategy selected without webhook_url, using fallback")
		return NewFallback(log)
	case "fallback":
		return NewFallback(log)
	default:
		log.Warn("unknown notify strategy, detecting from host", "strategy", cfg.Strategy)
	}

	switch goos {
	case "darwin":
		return NewOsascript()
	case "windows":
		return NewToast()
	case "linux":
		return NewNotifySend()
	default:
		return NewFallback(log)
	}
}
