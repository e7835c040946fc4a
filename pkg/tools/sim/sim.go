// Package sim provides deterministic in-process tool handlers for the
// market, backtest, intelligence, trading and meeting categories. They stand
// in for external providers: same inputs produce same outputs, which keeps
// agent behavior and experiment ids reproducible.
package sim

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/tools"
	"github.com/NoAme666/aiquant/pkg/version"
)

// shortHash returns the first 12 hex chars of sha256 over the parts.
func shortHash(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h[:])[:12]
}

func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func failure(started time.Time, format string, a ...any) *tools.Result {
	return &tools.Result{
		Success:     false,
		Error:       fmt.Sprintf(format, a...),
		StartedAt:   started,
		CompletedAt: time.Now(),
	}
}

// Candle is one OHLCV row.
type Candle struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// MarketHandler serves market.* tools with synthetic price series.
type MarketHandler struct{}

// NewMarketHandler creates the market handler.
func NewMarketHandler() *MarketHandler { return &MarketHandler{} }

// Execute implements tools.Handler.
func (h *MarketHandler) Execute(ctx context.Context, req tools.Request) (*tools.Result, error) {
	started := time.Now()
	switch req.Tool {
	case "market.get_ohlcv":
		return h.ohlcv(req, started), nil
	case "market.get_ticker":
		return h.ticker(req, started), nil
	default:
		return failure(started, "unknown market tool %q", req.Tool), nil
	}
}

func (h *MarketHandler) ohlcv(req tools.Request, started time.Time) *tools.Result {
	symbol := stringArg(req.Args, "symbol")
	if symbol == "" {
		return failure(started, "symbol is required")
	}
	timeframe := stringArg(req.Args, "timeframe")
	if timeframe == "" {
		timeframe = "1d"
	}
	limit := intArg(req.Args, "limit", 100)

	candles := syntheticSeries(symbol, timeframe, limit)
	return &tools.Result{
		Success:         true,
		Data:            candles,
		DataVersionHash: shortHash(symbol, timeframe, fmt.Sprint(limit)),
		StartedAt:       started,
		CompletedAt:     time.Now(),
	}
}

func (h *MarketHandler) ticker(req tools.Request, started time.Time) *tools.Result {
	symbol := stringArg(req.Args, "symbol")
	if symbol == "" {
		return failure(started, "symbol is required")
	}
	series := syntheticSeries(symbol, "1m", 1)
	return &tools.Result{
		Success:         true,
		Data:            map[string]any{"symbol": symbol, "price": series[0].Close},
		DataVersionHash: shortHash(symbol, "ticker"),
		StartedAt:       started,
		CompletedAt:     time.Now(),
	}
}

// syntheticSeries generates a random walk seeded by symbol and timeframe, so
// repeated calls see the same data.
func syntheticSeries(symbol, timeframe string, limit int) []Candle {
	if limit <= 0 {
		limit = 1
	}
	seed := int64(0)
	for _, b := range sha256.Sum256([]byte(symbol + "|" + timeframe)) {
		seed = seed*31 + int64(b)
	}
	rng := rand.New(rand.NewSource(seed))

	price := 100 + rng.Float64()*900
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	step := timeframeStep(timeframe)

	out := make([]Candle, 0, limit)
	for i := 0; i < limit; i++ {
		open := price
		change := (rng.Float64() - 0.5) * 0.04 * price
		price = math.Max(price+change, 0.01)
		high := math.Max(open, price) * (1 + rng.Float64()*0.01)
		low := math.Min(open, price) * (1 - rng.Float64()*0.01)
		out = append(out, Candle{
			Time:   base.Add(time.Duration(i) * step).Unix(),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  price,
			Volume: 1000 + rng.Float64()*9000,
		})
	}
	return out
}

func timeframeStep(tf string) time.Duration {
	switch tf {
	case "1m":
		return time.Minute
	case "5m":
		return 5 * time.Minute
	case "1h":
		return time.Hour
	case "4h":
		return 4 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// BacktestHandler serves backtest.run with deterministic experiment ids.
type BacktestHandler struct{}

// NewBacktestHandler creates the backtest handler.
func NewBacktestHandler() *BacktestHandler { return &BacktestHandler{} }

// Execute implements tools.Handler. The experiment id is a hash over the
// strategy spec, the data reference and the code commit, so re-running the
// same configuration lands in the same experiment directory.
func (h *BacktestHandler) Execute(ctx context.Context, req tools.Request) (*tools.Result, error) {
	started := time.Now()
	if req.Tool != "backtest.run" {
		return failure(started, "unknown backtest tool %q", req.Tool), nil
	}

	spec, err := json.Marshal(req.Args["strategy_spec"])
	if err != nil || string(spec) == "null" {
		return failure(started, "strategy_spec is required"), nil
	}
	dataRef := stringArg(req.Args, "data_ref")
	if dataRef == "" {
		return failure(started, "data_ref is required"), nil
	}

	expID := "exp-" + shortHash(string(spec), dataRef, version.GitCommit)
	rng := rand.New(rand.NewSource(int64(len(spec))))
	metrics := map[string]any{
		"sharpe":       round2(0.2 + rng.Float64()*2.3),
		"max_drawdown": round2(0.05 + rng.Float64()*0.3),
		"total_return": round2(rng.Float64()*0.8 - 0.2),
		"trades":       50 + rng.Intn(950),
	}

	return &tools.Result{
		Success:         true,
		Data:            metrics,
		DataVersionHash: dataRef,
		ExperimentID:    expID,
		ArtifactIDs: []string{
			expID + "/report.json",
			expID + "/equity_curve.csv",
		},
		StartedAt:   started,
		CompletedAt: time.Now(),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IntelligenceHandler serves intelligence.search_news with a canned feed.
type IntelligenceHandler struct{}

// NewIntelligenceHandler creates the intelligence handler.
func NewIntelligenceHandler() *IntelligenceHandler { return &IntelligenceHandler{} }

var cannedHeadlines = []string{
	"Exchange volumes hit a three-month high as volatility returns",
	"Regulator opens consultation on leverage limits for derivatives",
	"Stablecoin issuer publishes attestation, reserves fully backed",
	"Major fund rotates from momentum into carry strategies",
	"Network upgrade scheduled, historical data revision expected",
}

// Execute implements tools.Handler.
func (h *IntelligenceHandler) Execute(ctx context.Context, req tools.Request) (*tools.Result, error) {
	started := time.Now()
	if req.Tool != "intelligence.search_news" {
		return failure(started, "unknown intelligence tool %q", req.Tool), nil
	}
	query := strings.ToLower(stringArg(req.Args, "query"))

	var hits []string
	for _, headline := range cannedHeadlines {
		if query == "" || strings.Contains(strings.ToLower(headline), query) {
			hits = append(hits, headline)
		}
	}
	return &tools.Result{
		Success:         true,
		Data:            map[string]any{"headlines": hits},
		DataVersionHash: shortHash("news", query),
		StartedAt:       started,
		CompletedAt:     time.Now(),
	}, nil
}

// TradingHandler serves trading.paper_order with immediate synthetic fills.
type TradingHandler struct{}

// NewTradingHandler creates the trading handler.
func NewTradingHandler() *TradingHandler { return &TradingHandler{} }

// Execute implements tools.Handler.
func (h *TradingHandler) Execute(ctx context.Context, req tools.Request) (*tools.Result, error) {
	started := time.Now()
	if req.Tool != "trading.paper_order" {
		return failure(started, "unknown trading tool %q", req.Tool), nil
	}
	symbol := stringArg(req.Args, "symbol")
	side := stringArg(req.Args, "side")
	if symbol == "" || (side != "buy" && side != "sell") {
		return failure(started, "symbol and side (buy|sell) are required"), nil
	}

	last := syntheticSeries(symbol, "1m", 1)[0].Close
	slippageBps := 2.0
	fill := last * (1 + slippageBps/10000)
	if side == "sell" {
		fill = last * (1 - slippageBps/10000)
	}
	return &tools.Result{
		Success: true,
		Data: map[string]any{
			"order_id":     uuid.NewString(),
			"symbol":       symbol,
			"side":         side,
			"fill_price":   round2(fill),
			"slippage_bps": slippageBps,
			"status":       "filled",
		},
		StartedAt:   started,
		CompletedAt: time.Now(),
	}, nil
}

// MeetingHandler serves meeting.present by attaching the card to the active
// room as a table artifact.
type MeetingHandler struct {
	bus *bus.MessageBus
}

// NewMeetingHandler creates the meeting handler over the shared bus.
func NewMeetingHandler(b *bus.MessageBus) *MeetingHandler {
	return &MeetingHandler{bus: b}
}

// Execute implements tools.Handler.
func (h *MeetingHandler) Execute(ctx context.Context, req tools.Request) (*tools.Result, error) {
	started := time.Now()
	if req.Tool != "meeting.present" {
		return failure(started, "unknown meeting tool %q", req.Tool), nil
	}
	roomID := req.MeetingID
	if roomID == "" {
		roomID = stringArg(req.Args, "meeting_id")
	}
	title := stringArg(req.Args, "title")
	if roomID == "" || title == "" {
		return failure(started, "meeting_id and title are required"), nil
	}
	if !h.bus.AddMeetingArtifact(roomID, bus.ArtifactTable, req.Args["card"], title, req.Agent) {
		return failure(started, "meeting %q is not active", roomID), nil
	}
	return &tools.Result{
		Success:     true,
		Data:        map[string]any{"meeting_id": roomID, "title": title},
		StartedAt:   started,
		CompletedAt: time.Now(),
	}, nil
}
