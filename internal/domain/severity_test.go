package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/flightlint/flightlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity_AllValues(t *testing.T) {
	cases := map[string]domain.Severity{
		"NEVER":    domain.SeverityNever,
		"MUST":     domain.SeverityMust,
		"SHOULD":   domain.SeverityShould,
		"GUIDANCE": domain.SeverityGuidance,
	}
	for input, want := range cases {
		got, err := domain.ParseSeverity(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, input, got.String())
	}
}

func TestParseSeverity_RejectsUnknown(t *testing.T) {
	_, err := domain.ParseSeverity("CRITICAL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRITICAL")
}

func TestSeverity_Ordering(t *testing.T) {
	assert.True(t, domain.SeverityNever.AtLeast(domain.SeverityMust))
	assert.True(t, domain.SeverityMust.AtLeast(domain.SeverityShould))
	assert.True(t, domain.SeverityShould.AtLeast(domain.SeverityGuidance))
	assert.False(t, domain.SeverityGuidance.AtLeast(domain.SeverityShould))
	assert.False(t, domain.SeverityShould.AtLeast(domain.SeverityMust))
}

func TestSeverity_Blocking(t *testing.T) {
	assert.True(t, domain.SeverityNever.Blocking())
	assert.True(t, domain.SeverityMust.Blocking())
	assert.False(t, domain.SeverityShould.Blocking())
	assert.False(t, domain.SeverityGuidance.Blocking())
}

func TestHasBlocking_FlipsWithMustResult(t *testing.T) {
	results := []domain.Result{
		{RuleID: "S1", Severity: domain.SeverityShould},
		{RuleID: "S2", Severity: domain.SeverityShould},
	}
	assert.False(t, domain.HasBlocking(results))

	results = append(results, domain.Result{RuleID: "M1", Severity: domain.SeverityMust})
	assert.True(t, domain.HasBlocking(results))

	assert.False(t, domain.HasBlocking(results[:2]))
}

func TestFilterBySeverity_DefaultSuppressesGuidance(t *testing.T) {
	results := []domain.Result{
		{RuleID: "N1", Severity: domain.SeverityNever},
		{RuleID: "G1", Severity: domain.SeverityGuidance},
		{RuleID: "S1", Severity: domain.SeverityShould},
	}

	filtered := domain.FilterBySeverity(results, domain.SeverityShould)
	require.Len(t, filtered, 2)
	assert.Equal(t, "N1", filtered[0].RuleID)
	assert.Equal(t, "S1", filtered[1].RuleID)
}

func TestFilterBySeverity_GuidanceKeepsEverything(t *testing.T) {
	results := []domain.Result{
		{RuleID: "G1", Severity: domain.SeverityGuidance},
		{RuleID: "S1", Severity: domain.SeverityShould},
	}
	assert.Len(t, domain.FilterBySeverity(results, domain.SeverityGuidance), 2)
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(domain.SeverityMust)
	require.NoError(t, err)
	assert.Equal(t, `"MUST"`, string(data))

	var s domain.Severity
	require.NoError(t, json.Unmarshal([]byte(`"NEVER"`), &s))
	assert.Equal(t, domain.SeverityNever, s)

	assert.Error(t, json.Unmarshal([]byte(`"WHATEVER"`), &s))
}
