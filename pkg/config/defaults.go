package config

import "time"

// DefaultSchedulerConfig returns the scheduler timing defaults. User values
// from aiquant.yaml are merged on top.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		AgentInterval:     2 * time.Second,
		TickInterval:      10 * time.Second,
		MailboxTimeout:    100 * time.Millisecond,
		MailboxBatch:      10,
		LLMTimeout:        60 * time.Second,
		HealthIdleAfter:   5 * time.Minute,
		ApprovalExpiry:    24 * time.Hour,
		MaxTaskRetries:    3,
		ActivityLogSize:   100,
		ConversationSize:  50,
		WorkCooldown:      5 * time.Minute,
		ChairmanID:        "chairman",
		ChiefOfStaffID:    "chief_of_staff",
		GovernanceAgentID: "governance_officer",
	}
}

// DefaultGovernance returns the default vote weights and approval rate.
func DefaultGovernance() GovernanceYAML {
	return GovernanceYAML{
		RequiredApprovalRate: 0.6,
		VoteWeights: VoteWeights{
			"chairman":           3.0,
			"risk_officer":       2.0,
			"investment_officer": 2.0,
			"portfolio_manager":  1.5,
			"director":           1.5,
			"lead":               1.2,
			"default":            1.0,
		},
	}
}

// DefaultKeywords returns the built-in intention-detector tables. The tables
// mix Chinese and English tokens; keywords.yaml entries are merged on top.
func DefaultKeywords() *KeywordsConfig {
	return &KeywordsConfig{
		Topics: map[string][]string{
			"strategy": {
				"策略", "因子", "信号", "回测", "alpha",
				"strategy", "factor", "signal", "backtest", "momentum", "mean reversion",
			},
			"risk": {
				"风险", "回撤", "止损", "敞口", "杠杆",
				"risk", "drawdown", "stop loss", "exposure", "leverage", "var",
			},
			"data": {
				"数据", "行情", "数据源", "清洗", "缺失",
				"data", "dataset", "feed", "ohlcv", "missing", "quality",
			},
			"trading": {
				"交易", "下单", "滑点", "成交", "仓位",
				"trading", "order", "slippage", "execution", "position", "fill",
			},
			"governance": {
				"治理", "规则", "投票", "审批", "合规",
				"governance", "rule", "vote", "approval", "compliance", "policy",
			},
			"process": {
				"流程", "效率", "协作", "评审",
				"process", "workflow", "efficiency", "review", "handoff",
			},
			"organization": {
				"组织", "招聘", "团队", "晋升",
				"organization", "hiring", "team", "promotion", "headcount",
			},
			"emergency": {
				"紧急", "事故", "崩溃", "爆仓", "熔断",
				"emergency", "incident", "crash", "liquidation", "halt", "outage",
			},
		},
		Urgency: []string{
			"紧急", "立即", "马上", "尽快", "严重",
			"urgent", "immediately", "asap", "critical", "severe", "now",
		},
		RequiredSeconds: map[string]int{
			"risk":         1,
			"emergency":    0,
			"strategy":     2,
			"governance":   3,
			"data":         2,
			"trading":      2,
			"process":      2,
			"organization": 3,
		},
		DefaultThreshold: 2,
	}
}

// BuiltinTools returns the default tool contract table. tools.yaml entries
// override or extend it.
func BuiltinTools() map[string]ToolSchemaConfig {
	return map[string]ToolSchemaConfig{
		"market.get_ohlcv": {
			Description: "Fetch OHLCV candles for a symbol and timeframe",
			Category:    CategoryMarket,
			BaseCost:    1,
			CostPerUnit: 0.01,
			CostUnit:    "rows",
			Parameters: map[string]any{
				"symbol":    "string",
				"timeframe": "string",
				"limit":     "int",
			},
		},
		"market.get_ticker": {
			Description: "Fetch the latest ticker for a symbol",
			Category:    CategoryMarket,
			BaseCost:    1,
		},
		"backtest.run": {
			Description: "Run a backtest for a strategy specification",
			Category:    CategoryBacktest,
			BaseCost:    10,
			CostPerUnit: 0.5,
			CostUnit:    "params",
			Parameters: map[string]any{
				"strategy_spec": "object",
				"data_ref":      "string",
			},
		},
		"memory.write": {
			Description: "Write a memory record with provenance references",
			Category:    CategoryMemory,
			BaseCost:    1,
		},
		"memory.search": {
			Description: "Semantic search over memory records",
			Category:    CategoryMemory,
			BaseCost:    2,
		},
		"meeting.present": {
			Description: "Present a card inside an active meeting room",
			Category:    CategoryMeeting,
			BaseCost:    1,
		},
		"intelligence.search_news": {
			Description: "Search external news and paper feeds",
			Category:    CategoryIntelligence,
			BaseCost:    3,
			CostPerUnit: 0.05,
			CostUnit:    "rows",
		},
		"trading.paper_order": {
			Description: "Submit a paper trading order",
			Category:    CategoryTrading,
			BaseCost:    5,
		},
	}
}
