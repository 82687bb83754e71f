package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"CryptoScope/internal/analyzer"
	"CryptoScope/internal/chart"
	"CryptoScope/internal/model"
	"CryptoScope/internal/report"
)

// Command is one entry of the closed menu.
type Command int

const (
	CmdBitcoin Command = iota + 1
	CmdEthereum
	CmdRipple
	CmdCorrelation
	CmdBarChart
	CmdExit
)

var commandAssets = map[Command]model.Asset{
	CmdBitcoin:  model.Bitcoin,
	CmdEthereum: model.Ethereum,
	CmdRipple:   model.Ripple,
}

const prompt = `
Menu:
1. Bitcoin
2. Ethereum
3. Ripple
4. Correlation Matrix
5. BarChart
6. Exit
Enter your choice (1-6): `

const invalidChoice = "Invalid choice. Please enter a number between 1 and 6."

// ParseCommand maps a line of user input to a Command.
func ParseCommand(s string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(CmdBitcoin) || n > int(CmdExit) {
		return 0, fmt.Errorf("invalid choice %q", strings.TrimSpace(s))
	}
	return Command(n), nil
}

// Menu is the interactive dispatcher. All user-facing output goes to Out.
type Menu struct {
	Analyzer *analyzer.Analyzer
	Renderer chart.Renderer
	Out      io.Writer
}

// New creates a Menu. A nil renderer disables charts.
func New(a *analyzer.Analyzer, r chart.Renderer, out io.Writer) *Menu {
	if r == nil {
		r = chart.NewNoopRenderer()
	}
	return &Menu{Analyzer: a, Renderer: r, Out: out}
}

// Run prompts and dispatches until the user exits, input ends, or ctx is done.
func (m *Menu) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(m.Out)
			return scanner.Err()
		}

		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(m.Out, invalidChoice)
			continue
		}
		if m.Handle(ctx, cmd) {
			return nil
		}
	}
}

// Handle executes one command and reports whether the menu should exit.
// Failures are printed and never end the loop.
func (m *Menu) Handle(ctx context.Context, cmd Command) bool {
	switch cmd {
	case CmdBitcoin, CmdEthereum, CmdRipple:
		m.fetch(ctx, commandAssets[cmd])
		return false
	case CmdCorrelation:
		m.correlation()
		return false
	case CmdBarChart:
		return m.barChart()
	case CmdExit:
		fmt.Fprintln(m.Out, "Exiting the program.")
		return true
	default:
		fmt.Fprintln(m.Out, invalidChoice)
		return false
	}
}

func (m *Menu) fetch(ctx context.Context, asset model.Asset) {
	fmt.Fprintf(m.Out, "\nFetching %s data...\n", asset)
	rep, err := m.Analyzer.FetchAndReport(ctx, asset)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprint(m.Out, report.FormatAssetReport(rep))

	m.printChart(m.Renderer.PriceHistory(rep.Series))
	m.printChart(m.Renderer.LogReturns(asset, rep.Returns))
}

func (m *Menu) correlation() {
	matrix, err := m.Analyzer.Correlation()
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.Out, "\nCorrelation Matrix between Bitcoin, Ethereum, and Ripple Returns:")
	fmt.Fprint(m.Out, report.FormatCorrelation(matrix))
	m.printChart(m.Renderer.CorrelationHeatmap(matrix))
}

// barChart exits the menu only once the chart step succeeded.
func (m *Menu) barChart() bool {
	means, err := m.Analyzer.MeanReturns()
	if err != nil {
		m.printError(err)
		return false
	}
	fmt.Fprint(m.Out, report.FormatMeanReturns(means))
	m.printChart(m.Renderer.MeanReturns(means))
	return true
}

func (m *Menu) printChart(path string, err error) {
	if err != nil {
		m.printError(err)
		return
	}
	if path != "" {
		fmt.Fprintf(m.Out, "Chart saved: %s\n", path)
	}
}

// printError writes one "Error:" line per joined error.
func (m *Menu) printError(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			m.printError(e)
		}
		return
	}
	fmt.Fprintf(m.Out, "Error: %v\n", err)
}
