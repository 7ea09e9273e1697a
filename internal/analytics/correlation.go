package analytics

import (
	"math"

	"github.com/solaceapp/solace-backend/internal/models"
)

// Correlation is a qualitative pairwise factor correlation finding.
type Correlation struct {
	Factors  []string `json:"factors"`
	Strength string   `json:"strength"`
	Message  string   `json:"message"`
}

// correlationRules lists the factor pairs inspected, with their
// pair-specific coefficient thresholds.
var correlationRules = []struct {
	a, b      string
	threshold float64
	strength  string
	message   string
}{
	{FactorSleep, FactorEnergy, 0.6, "strong", "🌙 Strong correlation: Better sleep significantly improves energy levels"},
	{FactorStress, FactorEnergy, 0.5, "moderate", "⚖️ Moderate correlation: Lower stress levels boost energy"},
	{FactorSocial, FactorStress, 0.4, "moderate", "🤝 Social connections help reduce stress levels"},
}

// Pearson returns the absolute Pearson correlation coefficient of two
// equal-length ordinal series. Unequal lengths, fewer than two points, or
// zero variance in either series yield 0.
func Pearson(a, b []int) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}
	n := float64(len(a))
	var sumA, sumB, sumAA, sumBB, sumAB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		sumA += x
		sumB += y
		sumAA += x * x
		sumBB += y * y
		sumAB += x * y
	}
	denom := math.Sqrt((n*sumAA - sumA*sumA) * (n*sumBB - sumB*sumB))
	if denom == 0 {
		return 0
	}
	return math.Abs((n*sumAB - sumA*sumB) / denom)
}

// CorrelateFactors inspects pairwise factor correlations over up to the 10
// most recent samples that carry a parsed assessment. A finding is emitted
// when both series have at least three points and the coefficient clears
// the pair's threshold.
func CorrelateFactors(samples []models.MoodLog) []Correlation {
	series := make(map[string][]int)
	seen := 0
	for i := range samples {
		if seen >= 10 {
			break
		}
		factors := ParseAssessment(samples[i].Note)
		if len(factors) == 0 {
			continue
		}
		seen++
		for factor, raw := range factors {
			if _, ok := factorOrdinals[factor]; ok {
				series[factor] = append(series[factor], FactorScore(factor, raw))
			}
		}
	}

	results := make([]Correlation, 0, len(correlationRules))
	for _, rule := range correlationRules {
		a, b := series[rule.a], series[rule.b]
		if len(a) < 3 || len(b) < 3 {
			continue
		}
		if Pearson(a, b) > rule.threshold {
			results = append(results, Correlation{
				Factors:  []string{rule.a, rule.b},
				Strength: rule.strength,
				Message:  rule.message,
			})
		}
	}
	return results
}
