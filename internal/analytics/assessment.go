package analytics

import "strings"

// Assessment factor names. Energy, stress, sleep and social carry ordinal
// direction tables; emotion and physical are categorical only.
const (
	FactorEnergy   = "energy"
	FactorStress   = "stress"
	FactorSleep    = "sleep"
	FactorSocial   = "social"
	FactorEmotion  = "emotion"
	FactorPhysical = "physical"
)

// assessmentMarker introduces the structured assessment sub-grammar inside
// a mood note: "Assessment: Energy: high, Stress: low, ...". Segments are
// comma-space delimited key/value pairs; keys are matched case-sensitively.
const assessmentMarker = "Assessment:"

var factorKeys = map[string]string{
	"Energy":   FactorEnergy,
	"Stress":   FactorStress,
	"Sleep":    FactorSleep,
	"Social":   FactorSocial,
	"Emotion":  FactorEmotion,
	"Physical": FactorPhysical,
}

// factorOrdinals converts raw factor values to 1..3 scores. Direction is
// per factor: low stress is better, so the stress table is inverted.
var factorOrdinals = map[string]map[string]int{
	FactorEnergy: {"high": 3, "moderate": 2, "low": 1},
	FactorStress: {"low": 3, "moderate": 2, "high": 1},
	FactorSleep:  {"excellent": 3, "okay": 2, "poor": 1},
	FactorSocial: {"connected": 3, "somewhat": 2, "isolated": 1},
}

// HasAssessment reports whether the note carries an assessment segment.
func HasAssessment(note string) bool {
	return strings.Contains(note, assessmentMarker)
}

// ParseAssessment extracts factor values from a mood note. It never fails:
// a missing marker, malformed segments and unrecognized keys all simply
// contribute nothing, so the worst case is an empty map.
func ParseAssessment(note string) map[string]string {
	factors := make(map[string]string)
	idx := strings.LastIndex(note, assessmentMarker)
	if idx < 0 {
		return factors
	}
	rest := strings.TrimSpace(note[idx+len(assessmentMarker):])
	for _, segment := range strings.Split(rest, ", ") {
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		name, known := factorKeys[strings.TrimSpace(key)]
		if !known {
			continue
		}
		factors[name] = strings.TrimSpace(value)
	}
	return factors
}

// FactorScore converts a raw factor value to its ordinal score.
// Unrecognized values (and factors without an ordinal table) are neutral.
func FactorScore(factor, raw string) int {
	if table, ok := factorOrdinals[factor]; ok {
		if s, ok := table[raw]; ok {
			return s
		}
	}
	return 2
}
