package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/config"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/transport"
	"github.com/tranvictor/onyxkit/ui"
	"github.com/tranvictor/onyxkit/units"
	"github.com/tranvictor/onyxkit/util/addrbook"
)

var printer = message.NewPrinter(language.English)

// newUI writes to stderr in JSON mode so stdout carries only JSON.
func newUI() ui.UI {
	if config.JSONOutput {
		return ui.NewWriterUI(os.Stderr, os.Stdin)
	}
	return ui.NewTerminalUI(config.NoColor)
}

func newLogger() (*zap.Logger, error) {
	if config.Verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func asJSON() bool {
	return config.JSONOutput
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatDecimal renders d with thousands separators and at most places
// fractional digits, trailing zeros removed.
func formatDecimal(d decimal.Decimal, places int32) string {
	s := d.Round(places).String()
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(intPart, 10)
	if ok && n.IsInt64() {
		intPart = printer.Sprintf("%d", n.Int64())
		if d.IsNegative() && n.Sign() == 0 {
			intPart = "-" + intPart
		}
	}
	if !hasFrac {
		return intPart
	}
	return intPart + "." + frac
}

// formatAmount renders a mantissa in human units followed by the symbol.
func formatAmount(mantissa *big.Int, decimals uint64, symbol string) string {
	return fmt.Sprintf("%s %s", formatDecimal(units.ToHuman(mantissa, decimals), 8), symbol)
}

func knownSymbols() []string {
	res := append(networks.Underlyings(), networks.MarketTokens()...)
	if networks.IsPriceFeedAsset("BTC") {
		res = append(res, "BTC")
	}
	return res
}

// suggestAssets returns up to 3 known symbols closest to input.
func suggestAssets(input string) []string {
	source := knownSymbols()
	matches := fuzzy.Find(strings.ToUpper(strings.TrimSpace(input)), upper(source))
	res := []string{}
	for i := 0; i < len(matches) && i < 3; i++ {
		res = append(res, source[matches[i].Index])
	}
	return res
}

func upper(ss []string) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		res[i] = strings.ToUpper(s)
	}
	return res
}

// withSuggestion appends "did you mean" hints to asset errors.
func withSuggestion(err error, inputs ...string) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, onyxcommon.ErrUnsupportedAsset) && !errors.Is(err, onyxcommon.ErrUnknownAsset) {
		return err
	}
	hints := []string{}
	for _, in := range inputs {
		for _, s := range suggestAssets(in) {
			if s != in {
				hints = append(hints, s)
			}
		}
	}
	if len(hints) == 0 {
		return err
	}
	return fmt.Errorf("%w\nDid you mean: %s?", err, strings.Join(hints, ", "))
}

func parseBigInt(name, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("%s %q is not an integer", name, s)
	}
	return n, nil
}

func eventRows(events []transport.Event, book addrbook.AddressResolver) [][]string {
	rows := [][]string{}
	for _, e := range events {
		keys := make([]string, 0, len(e.Args))
		for k := range e.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		args := make([]string, 0, len(keys))
		for _, k := range keys {
			args = append(args, fmt.Sprintf("%s=%v", k, e.Args[k]))
		}
		rows = append(rows, []string{e.Name, addrbook.Label(book, e.Address), strings.Join(args, " ")})
	}
	return rows
}

func formatDecimalPlain(mantissa *big.Int, decimals uint64) string {
	return units.ToHuman(mantissa, decimals).String()
}
