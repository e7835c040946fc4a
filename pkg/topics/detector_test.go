package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRiskTopic(t *testing.T) {
	d := NewDetector(nil)

	topic := d.Detect("Our drawdown is approaching the limit and leverage keeps rising.", "risk_1")
	require.NotNil(t, topic)
	assert.Equal(t, KindRisk, topic.Kind)
	assert.Equal(t, PriorityHigh, topic.Priority)
	assert.Equal(t, 1, topic.RequiredSeconds)
	assert.Equal(t, "risk_1", topic.Proposer)
	assert.True(t, strings.HasPrefix(topic.Title, "[risk] "))
	assert.Equal(t, StatusProposed, topic.Status)
}

func TestDetectRequiresTwoMatches(t *testing.T) {
	d := NewDetector(nil)
	assert.Nil(t, d.Detect("I looked at the drawdown chart today.", "quant_1"))
	assert.Nil(t, d.Detect("Nothing interesting happened.", "quant_1"))
}

func TestDetectUrgencyPromotes(t *testing.T) {
	d := NewDetector(nil)

	topic := d.Detect("We need a new momentum factor signal, urgent review please.", "quant_1")
	require.NotNil(t, topic)
	assert.Equal(t, KindStrategy, topic.Kind)
	assert.Equal(t, PriorityUrgent, topic.Priority)
}

func TestDetectEmergencyIsCritical(t *testing.T) {
	d := NewDetector(nil)

	topic := d.Detect("Exchange outage caused a liquidation incident.", "trader_1")
	require.NotNil(t, topic)
	assert.Equal(t, KindEmergency, topic.Kind)
	assert.Equal(t, PriorityCritical, topic.Priority)
	assert.Equal(t, 0, topic.RequiredSeconds)
}

func TestDetectTitleTruncation(t *testing.T) {
	d := NewDetector(nil)

	long := strings.Repeat("strategy factor ", 20)
	topic := d.Detect(long, "quant_1")
	require.NotNil(t, topic)

	body := strings.TrimPrefix(topic.Title, "[strategy] ")
	assert.True(t, strings.HasSuffix(body, "..."))
	assert.LessOrEqual(t, len([]rune(strings.TrimSuffix(body, "..."))), titleMaxLen)
}

func TestDetectChineseKeywords(t *testing.T) {
	d := NewDetector(nil)

	topic := d.Detect("当前回撤过大，需要调整止损线", "risk_1")
	require.NotNil(t, topic)
	assert.Equal(t, KindRisk, topic.Kind)
}

func TestDetectExplicitProposal(t *testing.T) {
	d := NewDetector(nil)

	text := "Some preamble.\n" + ProposeMarker + "\n" +
		"title: Rework the data pipeline\n" +
		"description: Feed gaps are hurting backtests\n" +
		"kind: data\n" +
		"urgency: high\n"
	topic, err := d.DetectExplicit(text, "quant_2")
	require.NoError(t, err)
	require.NotNil(t, topic)
	assert.Equal(t, KindData, topic.Kind)
	assert.Equal(t, "[data] Rework the data pipeline", topic.Title)
	assert.Equal(t, "Feed gaps are hurting backtests", topic.Description)
	assert.Equal(t, PriorityUrgent, topic.Priority)
	assert.Equal(t, 2, topic.RequiredSeconds)
}

func TestDetectExplicitMissingMarker(t *testing.T) {
	d := NewDetector(nil)
	topic, err := d.DetectExplicit("no marker here", "quant_1")
	assert.NoError(t, err)
	assert.Nil(t, topic)
}

func TestDetectExplicitValidation(t *testing.T) {
	d := NewDetector(nil)

	_, err := d.DetectExplicit(ProposeMarker+"\ndescription: no title\n", "quant_1")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = d.DetectExplicit(ProposeMarker+"\ntitle: x\nkind: nonsense\n", "quant_1")
	assert.ErrorIs(t, err, ErrUnknownTopicKind)
}
