// Package performance tracks per-agent KPI samples and computes role-based
// scorecards used for reputation, promotion and demotion decisions.
package performance

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/NoAme666/aiquant/pkg/config"
)

// KPI is one metric in a role template. Target is the value at which the
// metric scores 1.0; LowerBetter inverts the scale (rejections, violations).
type KPI struct {
	Metric      string
	Weight      float64
	Target      float64
	LowerBetter bool
}

// roleTemplates maps each role to its weighted KPI set.
var roleTemplates = map[config.RoleKind][]KPI{
	config.RoleResearcher: {
		{Metric: "ideas_validated", Weight: 0.3, Target: 5},
		{Metric: "backtests_run", Weight: 0.3, Target: 10},
		{Metric: "cycle_rejections", Weight: 0.2, Target: 2, LowerBetter: true},
		{Metric: "memories_written", Weight: 0.2, Target: 5},
	},
	config.RoleRisk: {
		{Metric: "compliance_reviews", Weight: 0.4, Target: 7},
		{Metric: "triggers_handled", Weight: 0.3, Target: 5},
		{Metric: "missed_violations", Weight: 0.3, Target: 1, LowerBetter: true},
	},
	config.RoleTrader: {
		{Metric: "orders_planned", Weight: 0.4, Target: 10},
		{Metric: "slippage_bps", Weight: 0.3, Target: 10, LowerBetter: true},
		{Metric: "plan_approvals", Weight: 0.3, Target: 5},
	},
	config.RoleIntelligence: {
		{Metric: "scans_completed", Weight: 0.5, Target: 20},
		{Metric: "notable_findings", Weight: 0.5, Target: 3},
	},
	config.RoleLead: {
		{Metric: "reviews_completed", Weight: 0.5, Target: 10},
		{Metric: "review_latency_hours", Weight: 0.3, Target: 12, LowerBetter: true},
		{Metric: "team_ideas_advanced", Weight: 0.2, Target: 3},
	},
}

// Promotion and demotion score bands.
const (
	promoteThreshold = 0.75
	demoteThreshold  = 0.30
	minSamples       = 3
)

// ErrNoTemplate marks a role without a KPI template.
var ErrNoTemplate = errors.New("no KPI template for role")

// MetricScore is one KPI line on a scorecard.
type MetricScore struct {
	Metric  string  `json:"metric"`
	Samples int     `json:"samples"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	P50     float64 `json:"p50"`
	Score   float64 `json:"score"` // [0,1]
	Weight  float64 `json:"weight"`
}

// Scorecard is one agent's weighted KPI summary for a period.
type Scorecard struct {
	Agent       string          `json:"agent"`
	Role        config.RoleKind `json:"role"`
	Metrics     []MetricScore   `json:"metrics"`
	Overall     float64         `json:"overall"` // [0,1]
	SampleCount int             `json:"sample_count"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// PromotionEligible reports whether the scorecard clears the promotion band
// with enough evidence.
func (s Scorecard) PromotionEligible() bool {
	return s.SampleCount >= minSamples && s.Overall >= promoteThreshold
}

// DemotionCandidate reports whether the scorecard falls below the demotion
// band with enough evidence.
func (s Scorecard) DemotionCandidate() bool {
	return s.SampleCount >= minSamples && s.Overall <= demoteThreshold
}

// System accumulates KPI samples and builds scorecards.
type System struct {
	mu      sync.Mutex
	samples map[string]map[string][]float64 // agent → metric → values
	now     func() time.Time
}

// NewSystem creates an empty performance system.
func NewSystem() *System {
	return &System{
		samples: make(map[string]map[string][]float64),
		now:     time.Now,
	}
}

// Record appends one KPI sample for an agent.
func (s *System) Record(agent, metric string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.samples[agent] == nil {
		s.samples[agent] = make(map[string][]float64)
	}
	s.samples[agent][metric] = append(s.samples[agent][metric], value)
}

// Increment adds 1 to a counting metric.
func (s *System) Increment(agent, metric string) {
	s.Record(agent, metric, 1)
}

// Reset clears an agent's samples, starting a new review period.
func (s *System) Reset(agent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.samples, agent)
}

// Scorecard computes the weighted KPI summary for an agent under its role
// template. Counting metrics score on their sum against the target;
// magnitude metrics (latency, slippage) score on their mean.
func (s *System) Scorecard(agent string, role config.RoleKind) (Scorecard, error) {
	tmpl, ok := roleTemplates[role]
	if !ok {
		return Scorecard{}, fmt.Errorf("%w: %s", ErrNoTemplate, role)
	}

	s.mu.Lock()
	agentSamples := make(map[string][]float64, len(s.samples[agent]))
	for metric, values := range s.samples[agent] {
		agentSamples[metric] = append([]float64(nil), values...)
	}
	s.mu.Unlock()

	card := Scorecard{Agent: agent, Role: role, GeneratedAt: s.now()}
	var weighted, totalWeight float64
	for _, kpi := range tmpl {
		values := agentSamples[kpi.Metric]
		ms := MetricScore{Metric: kpi.Metric, Samples: len(values), Weight: kpi.Weight}
		if len(values) > 0 {
			ms.Mean, _ = stats.Mean(values)
			ms.StdDev, _ = stats.StandardDeviation(values)
			ms.P50, _ = stats.Percentile(values, 50)
			ms.Score = kpiScore(kpi, values, ms.Mean)
			card.SampleCount += len(values)
		} else if kpi.LowerBetter {
			// No samples of a lower-is-better metric is zero occurrences.
			ms.Score = kpiScore(kpi, nil, 0)
		}
		card.Metrics = append(card.Metrics, ms)
		weighted += ms.Score * kpi.Weight
		totalWeight += kpi.Weight
	}
	if totalWeight > 0 {
		card.Overall = weighted / totalWeight
	}
	return card, nil
}

// kpiScore maps observed values onto [0,1] against the template target.
func kpiScore(kpi KPI, values []float64, mean float64) float64 {
	observed := mean
	if !kpi.LowerBetter {
		observed, _ = stats.Sum(values)
	}

	if kpi.LowerBetter {
		if observed <= kpi.Target {
			return 1
		}
		return clamp01(kpi.Target / observed)
	}
	if kpi.Target <= 0 {
		return 0
	}
	return clamp01(observed / kpi.Target)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
