package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"CryptoScope/internal/notifier"
	"CryptoScope/internal/scheduler"

	"github.com/spf13/cobra"
)

var watchNowFlag bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh every asset on the configured cron schedule",
	Long:  `ex) CRON_REFRESH="0 0 * * * *" cryptoscope watch --now`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var n scheduler.Notifier
		if a.Config.TelegramEnabled() {
			n = notifier.NewTelegramNotifier(a.Config.Telegram.BotToken, a.Config.Telegram.ChatID, a.Config.Proxy)
			log.Println("[INFO] Telegram notifications enabled")
		}

		sched := scheduler.NewScheduler(ctx, a.Analyzer, n)
		if err := sched.Register(a.Config.Schedule.RefreshCron); err != nil {
			log.Printf("[ERROR] register cron tasks: %v", err)
			return err
		}
		// Runs before Start so it never overlaps a scheduled refresh.
		if watchNowFlag {
			log.Println("[INFO] --now set, refreshing immediately")
			sched.RunNow()
		}

		sched.Start()
		defer sched.Stop()

		log.Printf("[INFO] watching with schedule %q. Press Ctrl+C to stop.", a.Config.Schedule.RefreshCron)
		<-ctx.Done()
		log.Println("[INFO] shutdown signal received, stopping...")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchNowFlag, "now", false, "run one refresh immediately on start")
}
