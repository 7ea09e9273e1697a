package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAssessment(t *testing.T) {
	note := "Felt okay today. Assessment: Energy: high, Stress: low, Sleep: excellent, Social: connected"
	factors := ParseAssessment(note)

	assert.Equal(t, "high", factors[FactorEnergy])
	assert.Equal(t, "low", factors[FactorStress])
	assert.Equal(t, "excellent", factors[FactorSleep])
	assert.Equal(t, "connected", factors[FactorSocial])
}

func TestParseAssessmentUsesLastMarker(t *testing.T) {
	note := "Assessment: Energy: low Assessment: Energy: high, Stress: moderate"
	factors := ParseAssessment(note)

	assert.Equal(t, "high", factors[FactorEnergy])
	assert.Equal(t, "moderate", factors[FactorStress])
}

func TestParseAssessmentNoMarker(t *testing.T) {
	assert.Empty(t, ParseAssessment("just a plain note"))
	assert.Empty(t, ParseAssessment(""))
}

func TestParseAssessmentSkipsMalformedSegments(t *testing.T) {
	note := "Assessment: Energy: high, nonsense, Sleep: poor"
	factors := ParseAssessment(note)

	assert.Equal(t, "high", factors[FactorEnergy])
	assert.Equal(t, "poor", factors[FactorSleep])
	assert.Len(t, factors, 2)
}

func TestParseAssessmentKeysAreCaseSensitive(t *testing.T) {
	factors := ParseAssessment("Assessment: energy: high, Stress: low")

	assert.NotContains(t, factors, FactorEnergy)
	assert.Equal(t, "low", factors[FactorStress])
}

func TestParseAssessmentEmotionAndPhysical(t *testing.T) {
	factors := ParseAssessment("Assessment: Emotion: calm, Physical: rested")

	assert.Equal(t, "calm", factors[FactorEmotion])
	assert.Equal(t, "rested", factors[FactorPhysical])
}

func TestHasAssessment(t *testing.T) {
	assert.True(t, HasAssessment("note with Assessment: Energy: high"))
	assert.False(t, HasAssessment("note without marker"))
}

func TestFactorScore(t *testing.T) {
	assert.Equal(t, 3, FactorScore(FactorEnergy, "high"))
	assert.Equal(t, 2, FactorScore(FactorEnergy, "moderate"))
	assert.Equal(t, 1, FactorScore(FactorEnergy, "low"))

	// stress is inverted: low stress is best
	assert.Equal(t, 3, FactorScore(FactorStress, "low"))
	assert.Equal(t, 1, FactorScore(FactorStress, "high"))

	assert.Equal(t, 3, FactorScore(FactorSleep, "excellent"))
	assert.Equal(t, 1, FactorScore(FactorSleep, "poor"))

	assert.Equal(t, 3, FactorScore(FactorSocial, "connected"))
	assert.Equal(t, 1, FactorScore(FactorSocial, "isolated"))
}

func TestFactorScoreUnknownValueIsNeutral(t *testing.T) {
	assert.Equal(t, 2, FactorScore(FactorEnergy, "supercharged"))
	assert.Equal(t, 2, FactorScore(FactorEmotion, "calm"))
}
