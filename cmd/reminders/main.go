package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/robfig/cron/v3"

	"reminders/internal/config"
	"reminders/internal/db"
	"reminders/internal/logging"
	"reminders/internal/notify"
	"reminders/internal/scheduler"
	"reminders/internal/tui"
	"reminders/internal/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(version.Info())
			return
		case "help", "--help", "-h":
			printHelp()
			return
		case "daemon":
			if err := runDaemon(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	if err := runTUI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	cfg, err := config.Load(os.Getenv("REMINDERS_CONFIG"))
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so console logging goes nowhere; the log
	// file still captures everything.
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = filepath.Join(cfg.DataDir, "reminders.log")
	}
	log, closeLog, err := logging.New(cfg.Log.Level, logFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	database, err := db.New(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer database.Close()

	pidPath := filepath.Join(cfg.DataDir, "daemon.pid")
	daemonPID, daemonRunning := isDaemonRunning(pidPath)

	var engine *scheduler.Engine
	if daemonRunning {
		// The daemon already delivers reminders; running a second engine
		// here would notify twice. The daemon's resync picks up edits.
		fmt.Printf("Daemon running (PID %d), TUI in client mode\n", daemonPID)
	} else {
		strategy := notify.Resolve(cfg.Notify, log.With("component", "notify"))
		log.Info("notification strategy resolved", "strategy", strategy.Name())

		engine = scheduler.New(database, strategy, log.With("component", "scheduler"), cfg.TickInterval())
		if err := engine.Start(context.Background()); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
		defer engine.Stop()
	}

	return tui.Run(database, engine)
}

func runDaemon(args []string) error {
	daemonCmd := flag.NewFlagSet("daemon", flag.ExitOnError)
	configPath := daemonCmd.String("config", os.Getenv("REMINDERS_CONFIG"), "config file path")
	_ = daemonCmd.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.Log.Level, cfg.Log.File, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	pidPath := filepath.Join(cfg.DataDir, "daemon.pid")
	if pid, running := isDaemonRunning(pidPath); running {
		return fmt.Errorf("daemon already running (PID %d)", pid)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(pidPath, []byte(fmt.Sprintf("%d", os.Getpid())), 0o644); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer os.Remove(pidPath)

	database, err := db.New(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer database.Close()

	strategy := notify.Resolve(cfg.Notify, log.With("component", "notify"))
	log.Info("daemon starting",
		"pid", os.Getpid(), "db", cfg.DBPath(), "strategy", strategy.Name())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := scheduler.New(database, strategy, log.With("component", "scheduler"), cfg.TickInterval())
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer engine.Stop()

	// Memos added or deleted by the TUI while the daemon runs are picked up
	// by the periodic resync.
	c := cron.New()
	if _, err := c.AddFunc(cfg.ResyncSpec, func() {
		if err := engine.Resync(); err != nil {
			log.Error("resync failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid resync_spec %q: %w", cfg.ResyncSpec, err)
	}
	c.Start()
	defer func() { <-c.Stop().Done() }()

	<-ctx.Done()
	log.Info("daemon shutting down")
	return nil
}

// isDaemonRunning checks the PID file and probes the recorded process.
func isDaemonRunning(pidPath string) (int, bool) {
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, false
	}

	var pid int
	if _, err := fmt.Sscanf(string(data), "%d", &pid); err != nil {
		return 0, false
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, false
	}

	// On Unix, FindProcess always succeeds, so send signal 0 to check if alive
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return 0, false
	}

	return pid, true
}

func printHelp() {
	fmt.Println(`reminders - Memo app with desktop reminder notifications

Usage:
  reminders                 Launch the interactive TUI
  reminders daemon          Run the reminder scheduler in the foreground
  reminders version         Show version information
  reminders help            Show this help message

Daemon Options:
  --config                  Config file path (default: <data dir>/config.yaml)

Environment Variables:
  REMINDERS_CONFIG          Config file path
  REMINDERS_DATA_DIR        Override the data directory
  REMINDERS_NOTIFY_STRATEGY Force a delivery strategy
                            (osascript, toast, notify-send, webhook, fallback)`)
}
