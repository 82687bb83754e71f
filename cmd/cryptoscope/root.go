package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CryptoScope/internal/analyzer"
	"CryptoScope/internal/chart"
	"CryptoScope/internal/collector"
	"CryptoScope/internal/config"
	"CryptoScope/internal/menu"
	"CryptoScope/internal/recorder"
	"CryptoScope/internal/session"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:          "cryptoscope",
	Short:        "Fetch Kraken OHLC data and analyze log returns",
	Long:         `Interactive menu over Bitcoin, Ethereum and Ripple daily data: fetch, summary statistics, correlation and charts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return menu.New(a.Analyzer, a.Renderer, cmd.OutOrStdout()).Run(ctx, cmd.InOrStdin())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default $CONFIG_PATH or configs/config.yaml)")
}

// app holds everything wired from config for one process run.
type app struct {
	Config   *config.Config
	Analyzer *analyzer.Analyzer
	Renderer chart.Renderer
	Recorder recorder.Recorder
}

func (a *app) Close() {
	if err := a.Recorder.Close(); err != nil {
		log.Printf("[WARN] close recorder: %v", err)
	}
}

func newApp() (*app, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}
	log.Printf("[INFO] CryptoScope starting, session %s", uuid.NewString())

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	if configFlag != "" {
		cfgPath = configFlag
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("[ERROR] load config: %v", err)
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[ERROR] config validation: %v", err)
		return nil, err
	}

	fetcher := collector.NewKrakenFetcher(cfg.Exchange.BaseURL, cfg.Proxy, cfg.Exchange.Timeout)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Output.CSVEnabled {
		cr, err := recorder.NewCSVRecorder(cfg.Output.CSVDir)
		if err != nil {
			log.Printf("[WARN] init csv recorder failed, using noop: %v", err)
		} else {
			rec = cr
		}
	}

	var renderer chart.Renderer = chart.NewNoopRenderer()
	if cfg.Output.ChartsEnabled {
		pr, err := chart.NewPNGRenderer(cfg.Output.ChartDir)
		if err != nil {
			log.Printf("[WARN] init chart renderer failed, charts disabled: %v", err)
		} else {
			renderer = pr
		}
	}

	col := collector.NewCollector(fetcher, session.NewStore(), rec)
	col.Interval = cfg.Exchange.Interval

	return &app{
		Config:   cfg,
		Analyzer: analyzer.New(col),
		Renderer: renderer,
		Recorder: rec,
	}, nil
}
