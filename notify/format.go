// Package notify renders calculator results and signal updates as
// human-readable messages. Delivery is left to the host application.
package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/fxcalc/market"
	"github.com/rustyeddy/fxcalc/pkg/id"
	"github.com/rustyeddy/fxcalc/risk"
)

type Kind string

const (
	KindSignal      Kind = "signal"
	KindCalculation Kind = "calculation"
)

type Message struct {
	ID      string
	Kind    Kind
	Title   string
	Body    string
	Created time.Time
	Data    map[string]string
}

func newMessage(kind Kind, title, body string, data map[string]string) Message {
	now := time.Now().UTC()
	return Message{
		ID:      id.NewAt(now),
		Kind:    kind,
		Title:   title,
		Body:    body,
		Created: now,
		Data:    data,
	}
}

// FormatPrice prints price with the pair's display precision.
func FormatPrice(meta market.PairMetadata, price float64) string {
	return strconv.FormatFloat(price, 'f', meta.PriceDigits, 64)
}

func signed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if v > 0 {
		return "+" + s
	}
	return s
}

func PipMessage(meta market.PairMetadata, dir risk.Direction, entry, exit float64, r risk.PipResult) Message {
	body := fmt.Sprintf("%s %s %s -> %s: %s pips (pip size %s)",
		meta.Symbol, dir,
		FormatPrice(meta, entry), FormatPrice(meta, exit),
		signed(r.TotalPips, 1),
		strconv.FormatFloat(r.PipSize, 'f', -1, 64))
	return newMessage(KindCalculation, "Pip Calculation Result", body, map[string]string{
		"pair":       meta.Symbol,
		"type":       string(dir),
		"total_pips": strconv.FormatFloat(r.TotalPips, 'f', 1, 64),
	})
}

func LotSizeMessage(meta market.PairMetadata, r risk.LotSizeResult) Message {
	body := fmt.Sprintf("%s: %.2f lots (%s units), risking %.2f",
		meta.Symbol, r.LotSize, groupThousands(r.PositionUnits), r.RiskAmount)
	return newMessage(KindCalculation, "Lot Size Calculation", body, map[string]string{
		"pair":     meta.Symbol,
		"lot_size": strconv.FormatFloat(r.LotSize, 'f', 2, 64),
	})
}

func PnLMessage(meta market.PairMetadata, dir risk.Direction, lots float64, r risk.PnLResult) Message {
	var title string
	switch {
	case r.Profit > 0:
		title = "Trade Closed in Profit"
	case r.Profit < 0:
		title = "Trade Closed at a Loss"
	default:
		title = "Trade Closed at Breakeven"
	}
	body := fmt.Sprintf("%s %s %.2f lots: %s (%s%%), %s pips",
		meta.Symbol, dir, lots,
		signed(r.Profit, 2), signed(r.ProfitPercent, 2), signed(r.Pips, 1))
	return newMessage(KindCalculation, title, body, map[string]string{
		"pair":   meta.Symbol,
		"profit": strconv.FormatFloat(r.Profit, 'f', 2, 64),
		"pips":   strconv.FormatFloat(r.Pips, 'f', 1, 64),
	})
}

// PerformanceMessage summarizes closed trades for a portfolio screen.
func PerformanceMessage(m risk.Metrics) Message {
	if m.Trades == 0 {
		return newMessage(KindCalculation, "Performance", "No closed trades yet", nil)
	}
	body := fmt.Sprintf("%d trades, %.2f%% win rate, P&L %s (avg %s, best %s, worst %s)",
		m.Trades, m.WinRate,
		signed(m.TotalPnL, 2), signed(m.AveragePnL, 2), signed(m.Best, 2), signed(m.Worst, 2))
	if m.AverageRR > 0 {
		body += fmt.Sprintf(", avg R:R 1:%.2f", m.AverageRR)
	}
	return newMessage(KindCalculation, "Performance", body, map[string]string{
		"trades":    strconv.Itoa(m.Trades),
		"win_rate":  strconv.FormatFloat(m.WinRate, 'f', 2, 64),
		"total_pnl": strconv.FormatFloat(m.TotalPnL, 'f', 2, 64),
	})
}

// Signal is the subset of a trading signal needed for an alert.
type Signal struct {
	ID         string
	Pair       market.Pair
	Direction  risk.Direction
	EntryPrice float64
	Status     string // "active", "closed", ...
}

// SignalAlert builds the push text for a new or updated signal.
func SignalAlert(s Signal) (Message, error) {
	meta, err := s.Pair.Meta()
	if err != nil {
		return Message{}, err
	}
	status := strings.ToLower(s.Status)

	title := "Updated Signal Alert"
	if status == "active" {
		title = "New Signal Alert"
	}
	body := fmt.Sprintf("%s %s signal %s! Entry: $%s",
		meta.Symbol, s.Direction, status, FormatPrice(meta, s.EntryPrice))

	return newMessage(KindSignal, title, body, map[string]string{
		"signal_id":   s.ID,
		"pair":        meta.Symbol,
		"type":        string(s.Direction),
		"entry_price": FormatPrice(meta, s.EntryPrice),
		"status":      status,
	}), nil
}

// groupThousands prints whole units with comma separators.
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
