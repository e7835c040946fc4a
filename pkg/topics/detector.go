package topics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NoAme666/aiquant/pkg/config"
)

const (
	titleMaxLen       = 50
	descriptionMaxLen = 500
	minKeywordMatches = 2

	// ProposeMarker makes a topic proposal explicit, bypassing keyword
	// detection.
	ProposeMarker = "[PROPOSE_TOPIC]"
)

// Detector scans free text for discussion-worthy intentions using the
// configured keyword tables. Tables are swappable for hot reload.
type Detector struct {
	mu       sync.RWMutex
	keywords *config.KeywordsConfig
}

// NewDetector creates a detector over the loaded keyword tables.
func NewDetector(keywords *config.KeywordsConfig) *Detector {
	if keywords == nil {
		keywords = config.DefaultKeywords()
	}
	return &Detector{keywords: keywords}
}

// Swap atomically replaces the keyword tables (config hot reload).
func (d *Detector) Swap(keywords *config.KeywordsConfig) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keywords = keywords
}

// Detect scans text for an implicit topic proposal. Returns nil when no
// topic kind reaches the match threshold.
func (d *Detector) Detect(text, proposer string) *Topic {
	d.mu.RLock()
	kw := d.keywords
	d.mu.RUnlock()

	lower := strings.ToLower(text)

	bestKind, bestMatches := "", 0
	for kind, words := range kw.Topics {
		matches := 0
		for _, w := range words {
			if w != "" && strings.Contains(lower, strings.ToLower(w)) {
				matches++
			}
		}
		if matches > bestMatches || (matches == bestMatches && matches > 0 && kind < bestKind) {
			bestKind, bestMatches = kind, matches
		}
	}
	if bestMatches < minKeywordMatches {
		return nil
	}

	kind := Kind(bestKind)
	priority := defaultPriority(kind)
	if containsAny(lower, kw.Urgency) && priority < PriorityUrgent {
		priority = PriorityUrgent
	}

	return d.newTopic(kind, makeTitle(kind, text), truncate(text, descriptionMaxLen), priority, proposer, kw)
}

// DetectExplicit parses a [PROPOSE_TOPIC] block of key:value lines. Returns
// nil when the marker is absent, an error when the block is malformed.
func (d *Detector) DetectExplicit(text, proposer string) (*Topic, error) {
	idx := strings.Index(text, ProposeMarker)
	if idx < 0 {
		return nil, nil
	}

	d.mu.RLock()
	kw := d.keywords
	d.mu.RUnlock()

	fields := map[string]string{}
	for _, line := range strings.Split(text[idx+len(ProposeMarker):], "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	title := fields["title"]
	if title == "" {
		return nil, ErrEmptyTitle
	}

	kind := Kind(fields["kind"])
	if kind == "" {
		kind = KindProcess
	}
	if _, ok := kw.Topics[string(kind)]; !ok && !knownKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopicKind, kind)
	}

	priority := defaultPriority(kind)
	if urgency := strings.ToLower(fields["urgency"]); urgency == "high" || urgency == "urgent" {
		if priority < PriorityUrgent {
			priority = PriorityUrgent
		}
	}

	return d.newTopic(kind, fmt.Sprintf("[%s] %s", kind, truncate(title, titleMaxLen)),
		fields["description"], priority, proposer, kw), nil
}

func (d *Detector) newTopic(kind Kind, title, description string, priority Priority, proposer string, kw *config.KeywordsConfig) *Topic {
	required, ok := kw.RequiredSeconds[string(kind)]
	if !ok {
		required = kw.DefaultThreshold
	}
	now := time.Now()
	return &Topic{
		ID:              uuid.New().String(),
		Kind:            kind,
		Title:           title,
		Description:     description,
		Priority:        priority,
		Status:          StatusProposed,
		Proposer:        proposer,
		RequiredSeconds: required,
		ExpiresAt:       now.Add(expiryWindow(priority)),
		CreatedAt:       now,
	}
}

// defaultPriority assigns the per-kind baseline: emergencies are critical,
// risk topics high, everything else normal.
func defaultPriority(kind Kind) Priority {
	switch kind {
	case KindEmergency:
		return PriorityCritical
	case KindRisk:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}

// expiryWindow is how long a topic may collect seconds before expiring.
func expiryWindow(p Priority) time.Duration {
	switch p {
	case PriorityCritical:
		return 4 * time.Hour
	case PriorityUrgent:
		return 12 * time.Hour
	case PriorityHigh:
		return 24 * time.Hour
	default:
		return 48 * time.Hour
	}
}

// makeTitle takes the first sentence, truncated, and prefixes the kind tag.
func makeTitle(kind Kind, text string) string {
	sentence := strings.TrimSpace(text)
	for _, sep := range []string{"。", ".", "!", "！", "?", "？", "\n"} {
		if i := strings.Index(sentence, sep); i >= 0 {
			sentence = sentence[:i]
		}
	}
	return fmt.Sprintf("[%s] %s", kind, truncate(sentence, titleMaxLen))
}

func truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func knownKind(k Kind) bool {
	switch k {
	case KindStrategy, KindRisk, KindData, KindTrading, KindGovernance,
		KindProcess, KindOrganization, KindEmergency:
		return true
	}
	return false
}
