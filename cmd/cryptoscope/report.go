package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"CryptoScope/internal/model"
	"CryptoScope/internal/report"

	"github.com/spf13/cobra"
)

var reportCorrelationFlag bool

var reportCmd = &cobra.Command{
	Use:   "report <asset>...",
	Short: "Fetch and report the named assets without the menu",
	Long:  `ex) cryptoscope report btc eth xrp --correlation`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assets := make([]model.Asset, 0, len(args))
		for _, arg := range args {
			asset, err := model.ParseAsset(arg)
			if err != nil {
				return err
			}
			assets = append(assets, asset)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		var errs []error
		for _, asset := range assets {
			rep, err := a.Analyzer.FetchAndReport(ctx, asset)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				errs = append(errs, err)
				continue
			}
			fmt.Fprint(out, report.FormatAssetReport(rep))
			for _, render := range []func() (string, error){
				func() (string, error) { return a.Renderer.PriceHistory(rep.Series) },
				func() (string, error) { return a.Renderer.LogReturns(asset, rep.Returns) },
			} {
				if path, err := render(); err != nil {
					fmt.Fprintf(out, "Error: %v\n", err)
				} else if path != "" {
					fmt.Fprintf(out, "Chart saved: %s\n", path)
				}
			}
			fmt.Fprintln(out)
		}

		if reportCorrelationFlag {
			m, err := a.Analyzer.Correlation()
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				errs = append(errs, err)
			} else {
				fmt.Fprint(out, report.FormatCorrelation(m))
			}
		}
		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&reportCorrelationFlag, "correlation", false, "also print the correlation matrix (requires all three assets)")
}
