package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectViolations_MealOverLimit(t *testing.T) {
	vs := DetectViolations("Lunch with Dr. Johnson cost $95 total.")
	require.Len(t, vs, 1)
	assert.Equal(t, SeverityHigh, vs[0].Severity)
	assert.Equal(t, "PhRMA Code Violation", vs[0].Type)
	assert.Contains(t, vs[0].Issue, "$95")
	assert.Contains(t, vs[0].Issue, "$75")
}

func TestDetectViolations_MealAtLimitDoesNotFire(t *testing.T) {
	assert.Empty(t, DetectViolations("Dinner ran exactly $75 for the group."))
}

func TestDetectViolations_AmountWithoutMealContext(t *testing.T) {
	// A dollar amount alone is not a meal.
	assert.Empty(t, DetectViolations("Parking was $95 at the garage."))
}

func TestDetectViolations_UnverifiedClaim(t *testing.T) {
	vs := DetectViolations("I told her yes it works for that population, though I'm not totally sure about the specific indication.")
	require.Len(t, vs, 1)
	assert.Equal(t, SeverityCritical, vs[0].Severity)
	assert.Equal(t, "Data Integrity Violation", vs[0].Type)
}

func TestDetectViolations_UndocumentedSample(t *testing.T) {
	vs := DetectViolations("Left samples at the desk.")
	require.Len(t, vs, 1)
	assert.Equal(t, SeverityMedium, vs[0].Severity)
	assert.Equal(t, "Documentation Violation", vs[0].Type)
}

func TestDetectViolations_SampleWithSignature(t *testing.T) {
	assert.Empty(t, DetectViolations("Left samples at the desk with the paperwork signed."))
}

func TestDetectViolations_OffChannelPricing(t *testing.T) {
	t.Run("rebate matching", func(t *testing.T) {
		vs := DetectViolations("Said we could probably match their rebate structure if she switches.")
		require.Len(t, vs, 1)
		assert.Equal(t, SeverityCritical, vs[0].Severity)
		assert.Equal(t, "Anti-Kickback / Compliance Violation", vs[0].Type)
	})
	t.Run("explicit off-channel phrasing", func(t *testing.T) {
		vs := DetectViolations("We can do this not through official channels.")
		require.Len(t, vs, 1)
		assert.Equal(t, SeverityCritical, vs[0].Severity)
	})
	t.Run("internal special pricing", func(t *testing.T) {
		vs := DetectViolations("Offered a special pricing arrangement we handle internal on a case by case basis.")
		require.Len(t, vs, 1)
		assert.Equal(t, SeverityCritical, vs[0].Severity)
	})
}

func TestDetectViolations_SpeakerBureauIncentive(t *testing.T) {
	vs := DetectViolations("Suggested the speaker bureau - it would be good extra income for her.")
	require.Len(t, vs, 1)
	assert.Equal(t, SeverityHigh, vs[0].Severity)

	// Speaker bureau without income framing is fine.
	assert.Empty(t, DetectViolations("She asked how our speaker bureau selects educational topics."))
}

func TestDetectViolations_ExperimentalSampleUse(t *testing.T) {
	vs := DetectViolations("Left samples with her, told her to just try it and see what happens, got the signature.")
	require.Len(t, vs, 1)
	assert.Equal(t, "FDA Compliance Violation", vs[0].Type)
	assert.Equal(t, SeverityMedium, vs[0].Severity)
}

func TestDetectViolations_WeakDataDisclosure(t *testing.T) {
	vs := DetectViolations("I mentioned the data is not great for that population.")
	require.Len(t, vs, 1)
	assert.Equal(t, "Transparency Violation", vs[0].Type)
}

func TestDetectViolations_MultipleRulesCoOccur(t *testing.T) {
	note := "Lunch cost $120. Left samples and told her to just try it and see what happens."
	vs := DetectViolations(note)
	require.Len(t, vs, 3)

	// Order follows rule-evaluation order, not severity.
	assert.Equal(t, "PhRMA Code Violation", vs[0].Type)
	assert.Equal(t, "FDA Compliance Violation", vs[1].Type)
	assert.Equal(t, "Documentation Violation", vs[2].Type)
}

func TestDetectViolations_NoTriggers(t *testing.T) {
	assert.Empty(t, DetectViolations("Quick hallway chat about the conference schedule."))
	assert.Empty(t, DetectViolations(""))
}

func TestDetectViolations_Idempotent(t *testing.T) {
	note := "Lunch was $95 at the restaurant. Left samples. I said yes but I'm not sure."
	first := DetectViolations(note)
	second := DetectViolations(note)
	assert.Equal(t, first, second)
}
