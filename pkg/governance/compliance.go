package governance

import "fmt"

// Warning bands relative to the hard limits.
const (
	concentrationWarnRatio = 0.9
	lossWarnRatio          = 0.8
)

// CheckCompliance evaluates the position snapshot against every active
// rule's kind-specific predicate. The result is compliant only when no rule
// produced a violation; warnings do not break compliance.
func (g *Governance) CheckCompliance(pos Position) ComplianceResult {
	rules := g.ActiveRules()

	res := ComplianceResult{Compliant: true, CheckedAt: g.now(), RuleCount: len(rules)}
	for _, r := range rules {
		violations, warnings := evaluateRule(r, pos)
		res.Violations = append(res.Violations, violations...)
		res.Warnings = append(res.Warnings, warnings...)
	}
	res.Compliant = len(res.Violations) == 0
	return res
}

func evaluateRule(r Rule, pos Position) (violations, warnings []Violation) {
	switch r.Kind {
	case KindConcentration, KindPosition, KindExposure, KindAllocation:
		return checkConcentration(r, pos)
	case KindLoss:
		return checkLoss(r, pos)
	case KindRisk, KindTrading, KindLiquidity:
		return checkLeverage(r, pos)
	}
	return nil, nil
}

// checkConcentration flags any asset whose portfolio share exceeds the
// configured cap; shares within 90% of the cap produce a warning.
func checkConcentration(r Rule, pos Position) (violations, warnings []Violation) {
	maxPct, ok := r.Parameters["max_single_asset_pct"]
	if !ok {
		return nil, nil
	}
	limit := maxPct / 100

	for asset, share := range pos.AssetShares {
		v := Violation{
			RuleID: r.ID, Kind: r.Kind, Metric: "asset_share", Value: share, Limit: limit,
		}
		switch {
		case share > limit:
			v.Severity = "high"
			v.Message = fmt.Sprintf("%s holds %.1f%% of portfolio, cap is %.1f%%", asset, share*100, maxPct)
			violations = append(violations, v)
		case share > limit*concentrationWarnRatio:
			v.Severity = "warning"
			v.Message = fmt.Sprintf("%s holds %.1f%% of portfolio, approaching cap %.1f%%", asset, share*100, maxPct)
			warnings = append(warnings, v)
		}
	}
	return violations, warnings
}

// checkLoss flags a daily loss beyond the configured maximum as a critical
// violation; losses within 80% of the maximum produce a warning.
func checkLoss(r Rule, pos Position) (violations, warnings []Violation) {
	maxLossPct, ok := r.Parameters["max_daily_loss_pct"]
	if !ok {
		return nil, nil
	}
	limit := -maxLossPct / 100

	v := Violation{
		RuleID: r.ID, Kind: r.Kind, Metric: "daily_pnl_pct", Value: pos.DailyPnLPct, Limit: limit,
	}
	switch {
	case pos.DailyPnLPct < limit:
		v.Severity = "critical"
		v.Message = fmt.Sprintf("daily PnL %.2f%% breaches max loss %.2f%%", pos.DailyPnLPct*100, maxLossPct)
		violations = append(violations, v)
	case pos.DailyPnLPct < limit*lossWarnRatio:
		v.Severity = "warning"
		v.Message = fmt.Sprintf("daily PnL %.2f%% approaching max loss %.2f%%", pos.DailyPnLPct*100, maxLossPct)
		warnings = append(warnings, v)
	}
	return violations, warnings
}

// checkLeverage flags leverage above the hard cap; leverage between the
// margin-call level and the cap produces a warning.
func checkLeverage(r Rule, pos Position) (violations, warnings []Violation) {
	maxLev, ok := r.Parameters["max_leverage"]
	if !ok {
		return nil, nil
	}
	marginCall, hasMargin := r.Parameters["margin_call_leverage"]

	v := Violation{
		RuleID: r.ID, Kind: r.Kind, Metric: "leverage", Value: pos.Leverage, Limit: maxLev,
	}
	switch {
	case pos.Leverage > maxLev:
		v.Severity = "high"
		v.Message = fmt.Sprintf("leverage %.2fx exceeds limit %.2fx", pos.Leverage, maxLev)
		violations = append(violations, v)
	case hasMargin && pos.Leverage > marginCall:
		v.Severity = "warning"
		v.Message = fmt.Sprintf("leverage %.2fx above margin-call level %.2fx", pos.Leverage, marginCall)
		warnings = append(warnings, v)
	}
	return violations, warnings
}
