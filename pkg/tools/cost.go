package tools

import "math"

// EstimateCost computes the compute-point cost of a call:
// baseCost + ceil(args[costUnit] * costPerUnit). Pure in (schema, args).
func EstimateCost(schema *Schema, args map[string]any) int {
	cost := schema.BaseCost
	if schema.CostUnit == "" || schema.CostPerUnit == 0 {
		return cost
	}
	units, ok := numericArg(args, schema.CostUnit)
	if !ok && schema.CostUnit == "rows" {
		// Row-counted tools pass the requested row count as "limit".
		units, ok = numericArg(args, "limit")
	}
	if !ok {
		return cost
	}
	cost += int(math.Ceil(units * schema.CostPerUnit))
	return cost
}

// numericArg extracts a numeric argument regardless of the decoded Go type
// (JSON gives float64, YAML and literals give int).
func numericArg(args map[string]any, key string) (float64, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
