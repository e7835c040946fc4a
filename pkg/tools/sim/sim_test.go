package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoAme666/aiquant/pkg/bus"
	"github.com/NoAme666/aiquant/pkg/tools"
)

func TestOHLCVDeterministic(t *testing.T) {
	h := NewMarketHandler()
	req := tools.Request{Agent: "quant_1", Tool: "market.get_ohlcv",
		Args: map[string]any{"symbol": "BTC/USDT", "timeframe": "1h", "limit": 50}}

	r1, err := h.Execute(t.Context(), req)
	require.NoError(t, err)
	require.True(t, r1.Success)
	r2, err := h.Execute(t.Context(), req)
	require.NoError(t, err)

	assert.Equal(t, r1.Data, r2.Data, "same inputs yield the same series")
	assert.Equal(t, r1.DataVersionHash, r2.DataVersionHash)
	assert.NotEmpty(t, r1.DataVersionHash)

	candles, ok := r1.Data.([]Candle)
	require.True(t, ok)
	assert.Len(t, candles, 50)
	for _, c := range candles {
		assert.GreaterOrEqual(t, c.High, c.Low)
		assert.Positive(t, c.Volume)
	}
}

func TestOHLCVValidation(t *testing.T) {
	h := NewMarketHandler()
	r, err := h.Execute(t.Context(), tools.Request{Tool: "market.get_ohlcv", Args: map[string]any{}})
	require.NoError(t, err)
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "symbol")
}

func TestDifferentSymbolsDiffer(t *testing.T) {
	h := NewMarketHandler()
	a, _ := h.Execute(t.Context(), tools.Request{Tool: "market.get_ohlcv",
		Args: map[string]any{"symbol": "BTC/USDT", "limit": 10}})
	b, _ := h.Execute(t.Context(), tools.Request{Tool: "market.get_ohlcv",
		Args: map[string]any{"symbol": "ETH/USDT", "limit": 10}})
	assert.NotEqual(t, a.DataVersionHash, b.DataVersionHash)
	assert.NotEqual(t, a.Data, b.Data)
}

func TestBacktestExperimentID(t *testing.T) {
	h := NewBacktestHandler()
	req := tools.Request{Agent: "quant_1", Tool: "backtest.run", Args: map[string]any{
		"strategy_spec": map[string]any{"kind": "momentum", "lookback": 20},
		"data_ref":      "abc123def456",
	}}

	r1, err := h.Execute(t.Context(), req)
	require.NoError(t, err)
	require.True(t, r1.Success)
	r2, _ := h.Execute(t.Context(), req)

	assert.Equal(t, r1.ExperimentID, r2.ExperimentID, "experiment id is reproducible")
	assert.Contains(t, r1.ExperimentID, "exp-")
	assert.Equal(t, "abc123def456", r1.DataVersionHash)
	require.Len(t, r1.ArtifactIDs, 2)
	assert.Contains(t, r1.ArtifactIDs[0], r1.ExperimentID)

	// A different spec produces a different experiment.
	req.Args["strategy_spec"] = map[string]any{"kind": "momentum", "lookback": 40}
	r3, _ := h.Execute(t.Context(), req)
	assert.NotEqual(t, r1.ExperimentID, r3.ExperimentID)
}

func TestBacktestValidation(t *testing.T) {
	h := NewBacktestHandler()
	r, err := h.Execute(t.Context(), tools.Request{Tool: "backtest.run",
		Args: map[string]any{"strategy_spec": map[string]any{"kind": "momentum"}}})
	require.NoError(t, err)
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "data_ref")
}

func TestNewsSearch(t *testing.T) {
	h := NewIntelligenceHandler()

	r, err := h.Execute(t.Context(), tools.Request{Tool: "intelligence.search_news",
		Args: map[string]any{"query": "leverage"}})
	require.NoError(t, err)
	require.True(t, r.Success)
	data := r.Data.(map[string]any)
	assert.Len(t, data["headlines"], 1)

	r, _ = h.Execute(t.Context(), tools.Request{Tool: "intelligence.search_news",
		Args: map[string]any{}})
	data = r.Data.(map[string]any)
	assert.Len(t, data["headlines"], len(cannedHeadlines))
}

func TestPaperOrder(t *testing.T) {
	h := NewTradingHandler()

	r, err := h.Execute(t.Context(), tools.Request{Tool: "trading.paper_order",
		Args: map[string]any{"symbol": "BTC/USDT", "side": "buy"}})
	require.NoError(t, err)
	require.True(t, r.Success)
	data := r.Data.(map[string]any)
	assert.Equal(t, "filled", data["status"])
	assert.Positive(t, data["fill_price"])

	// Sell fills below buy for the same symbol.
	sell, _ := h.Execute(t.Context(), tools.Request{Tool: "trading.paper_order",
		Args: map[string]any{"symbol": "BTC/USDT", "side": "sell"}})
	assert.Less(t, sell.Data.(map[string]any)["fill_price"], data["fill_price"])

	r, _ = h.Execute(t.Context(), tools.Request{Tool: "trading.paper_order",
		Args: map[string]any{"symbol": "BTC/USDT", "side": "hold"}})
	assert.False(t, r.Success)
}

func TestMeetingPresent(t *testing.T) {
	b := bus.New()
	b.CreateMeetingRoom("room-1", "IC review", "lead_1", []string{"quant_1"})
	h := NewMeetingHandler(b)

	r, err := h.Execute(t.Context(), tools.Request{
		Agent: "quant_1", Tool: "meeting.present", MeetingID: "room-1",
		Args: map[string]any{"title": "Backtest results", "card": map[string]any{"sharpe": 1.4}},
	})
	require.NoError(t, err)
	require.True(t, r.Success)

	room, ok := b.GetMeetingRoom("room-1")
	require.True(t, ok)
	require.Len(t, room.Artifacts, 1)
	assert.Equal(t, "Backtest results", room.Artifacts[0].Title)
	assert.Equal(t, "quant_1", room.Artifacts[0].Presenter)

	r, _ = h.Execute(t.Context(), tools.Request{Agent: "quant_1", Tool: "meeting.present",
		MeetingID: "gone", Args: map[string]any{"title": "x"}})
	assert.False(t, r.Success)
}
