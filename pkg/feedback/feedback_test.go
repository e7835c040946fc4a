package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRouting(t *testing.T) {
	c := NewChannel()

	var routed []Item
	c.OnCategory(CategoryProcessImprovement, func(it Item) { routed = append(routed, it) })

	c.Submit("quant_1", CategoryProcessImprovement, "reviews take too long")
	c.Submit("quant_1", CategoryOrgIssue, "team is understaffed")

	require.Len(t, routed, 1)
	assert.Equal(t, "reviews take too long", routed[0].Content)
	assert.Len(t, c.Items(""), 2)
	assert.Len(t, c.Items(CategoryOrgIssue), 1)
}

func TestDuplicateToolRequestIncrements(t *testing.T) {
	c := NewChannel()

	first := c.RequestTool("quant_1", "market.get_orderbook", "need depth data", 0.5, 0.8)
	assert.Equal(t, 1, first.RequestCount)

	second := c.RequestTool("quant_2", "market.get_orderbook", "also need depth", 0.9, 0.8)
	assert.Equal(t, first.ID, second.ID, "same undeployed tool reuses the row")
	assert.Equal(t, 2, second.RequestCount)
	assert.Equal(t, 0.9, second.Urgency, "higher urgency wins")
	assert.ElementsMatch(t, []string{"quant_1", "quant_2"}, second.Requesters)

	open := c.ToolRequests()
	require.Len(t, open, 1)
}

func TestDeployedToolGetsFreshRow(t *testing.T) {
	c := NewChannel()
	c.RequestTool("quant_1", "market.get_orderbook", "", 0.5, 0.5)
	require.True(t, c.MarkDeployed("market.get_orderbook"))

	again := c.RequestTool("quant_1", "market.get_orderbook", "v2 please", 0.5, 0.5)
	assert.Equal(t, 1, again.RequestCount)
	assert.False(t, again.Deployed)
}

func TestPriorityScore(t *testing.T) {
	r := &ToolRequest{RequestCount: 5, Urgency: 0.5, Feasibility: 1.0}
	// 0.5*0.3 + 0.5*0.3 + 1.0*0.4
	assert.InDelta(t, 0.7, r.PriorityScore(), 1e-9)

	saturated := &ToolRequest{RequestCount: 50, Urgency: 1, Feasibility: 1}
	assert.InDelta(t, 1.0, saturated.PriorityScore(), 1e-9, "demand term caps at 1")
}

func TestToolRequestsSortedByPriority(t *testing.T) {
	c := NewChannel()
	c.RequestTool("a", "low", "", 0.1, 0.1)
	c.RequestTool("a", "high", "", 0.9, 0.9)

	open := c.ToolRequests()
	require.Len(t, open, 2)
	assert.Equal(t, "high", open[0].ToolName)
}

func TestGapReport(t *testing.T) {
	c := NewChannel()
	c.RequestTool("quant_1", "market.get_orderbook", "", 0.8, 0.9)

	report := c.BuildGapReport(map[string]int{
		"market.get_ohlcv":    140,
		"backtest.run":        21,
		"trading.paper_order": 0,
	}, 7)

	assert.Equal(t, 7, report.PeriodDays)
	require.Len(t, report.Usage, 3)
	assert.Equal(t, "market.get_ohlcv", report.Usage[0].Tool, "sorted by call volume")
	assert.InDelta(t, 20.0, report.Usage[0].CallsPerDay, 1e-9)

	assert.Equal(t, []string{"trading.paper_order"}, report.DeprecationCandidates)
	require.Len(t, report.MostRequested, 1)
	require.Len(t, report.Priorities, 1)
	assert.Contains(t, report.Priorities[0], "market.get_orderbook")
}
