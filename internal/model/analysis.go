package model

import (
	"fmt"
	"strings"
)

// Category is one of the three coarse buckets that decide which static
// reference table applies to a case.
type Category string

const (
	CategoryCommercialCivil     Category = "commercial_civil"
	CategoryCriminal            Category = "criminal"
	CategoryOtherAdministrative Category = "other_administrative"
)

// Categories returns the closed category set in its fixed order.
func Categories() []Category {
	return []Category{CategoryCommercialCivil, CategoryCriminal, CategoryOtherAdministrative}
}

func (c Category) String() string {
	switch c {
	case CategoryCommercialCivil:
		return "Commercial/Civil"
	case CategoryCriminal:
		return "Criminal"
	case CategoryOtherAdministrative:
		return "Other/Administrative"
	default:
		return string(c)
	}
}

// ParseCategory maps a wire or display name onto the closed set.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "commercial_civil", "commercial/civil", "commercial", "civil":
		return CategoryCommercialCivil, nil
	case "criminal":
		return CategoryCriminal, nil
	case "other_administrative", "other/administrative", "administrative", "other":
		return CategoryOtherAdministrative, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// ReferenceCase is a static precedent-like example record attached to a
// category, not discovered at runtime.
type ReferenceCase struct {
	ID         string  `json:"id"`         // External case identifier
	Court      string  `json:"court"`      // Issuing body
	Outcome    string  `json:"outcome"`    // Outcome label
	Similarity float64 `json:"similarity"` // Coarse similarity estimate in [0,1]
}

// AnalysisResult is derived from a CaseRecord and never persisted on its
// own; callers recompute it whenever they need it.
type AnalysisResult struct {
	Category         Category        `json:"category"`
	ReferenceCases   []ReferenceCase `json:"reference_cases"`
	LegalNorms       []string        `json:"legal_norms"`
	RiskScore        float64         `json:"risk_score"` // Keyword heuristic in [0,1], not a probability
	Recommendations  []string        `json:"recommendations"`
	Contradictions   []string        `json:"contradictions"` // 0–2 messages in detection order
	PredictedOutcome string          `json:"predicted_outcome"`
}
