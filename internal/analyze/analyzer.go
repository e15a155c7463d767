// Package analyze implements the case-analysis core: category
// classification, risk scoring and contradiction detection. Everything in
// this package is a pure function of the case record and the rule tables;
// there is no I/O and no shared mutable state, so an Analyzer can be used
// from any number of goroutines at once.
package analyze

import (
	"strings"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/rules"
)

// Analyzer classifies a case, selects its reference data, scores the risk
// and detects evidence contradictions.
type Analyzer struct {
	rules *rules.RuleSet
}

// New creates an analyzer over the given rule tables. A nil rule set
// selects the built-in tables.
func New(rs *rules.RuleSet) *Analyzer {
	if rs == nil {
		rs = rules.Default()
	}
	return &Analyzer{rules: rs}
}

// Analyze derives the full analysis for a structurally valid case record.
// It is total: any record passes through classification, reference-data
// selection, risk scoring and contradiction detection and comes out with
// a complete result. Results own their slices; the shared rule tables are
// never handed out directly.
func (a *Analyzer) Analyze(rec model.CaseRecord) model.AnalysisResult {
	category := a.classify(rec.CaseType)

	// Validate guarantees a profile for every category in the closed set.
	profile, _ := a.rules.Profile(category)

	return model.AnalysisResult{
		Category:         category,
		ReferenceCases:   append([]model.ReferenceCase{}, profile.ReferenceCases...),
		LegalNorms:       append([]string{}, profile.LegalNorms...),
		RiskScore:        a.scoreRisk(rec.Claims),
		Recommendations:  append([]string{}, a.rules.Recommendations...),
		Contradictions:   a.findContradictions(rec.Claims, rec.Documents),
		PredictedOutcome: profile.PredictedOutcome,
	}
}

// classify walks the classification rules in order and returns the first
// category whose keyword set matches the lower-cased case type, falling
// back to the configured default category.
func (a *Analyzer) classify(caseType string) model.Category {
	hint := strings.ToLower(caseType)
	for _, rule := range a.rules.Classification {
		if containsAny(hint, rule.Keywords) {
			return rule.Category
		}
	}
	return a.rules.Fallback
}

// scoreRisk starts from the baseline and applies the keyword-group
// overrides in their fixed order. A later matching group overwrites an
// earlier one: the final score is whichever group matched last, never a
// combination.
func (a *Analyzer) scoreRisk(claims []string) float64 {
	text := strings.ToLower(strings.Join(claims, " "))
	score := a.rules.Risk.Baseline
	for _, group := range a.rules.Risk.Groups {
		if containsAny(text, group.Keywords) {
			score = group.Score
		}
	}
	return score
}

// findContradictions runs the two evidence-consistency checks. Both checks
// always run, each appends at most one message, and the order of messages
// is fixed: document sufficiency first, contract attachment second.
func (a *Analyzer) findContradictions(claims, documents []string) []string {
	rule := a.rules.Contradiction
	found := make([]string, 0, 2)

	if len(documents) < rule.MinDocuments {
		found = append(found, rule.InsufficientMessage)
	}

	claimsText := strings.ToLower(strings.Join(claims, " "))
	if strings.Contains(claimsText, rule.ContractKeyword) && !anyLabelContains(documents, rule.ContractKeyword) {
		found = append(found, rule.MissingContractMessage)
	}

	return found
}

// containsAny reports whether text contains at least one of the keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// anyLabelContains reports whether any document label mentions the
// keyword, ignoring case.
func anyLabelContains(labels []string, keyword string) bool {
	for _, label := range labels {
		if strings.Contains(strings.ToLower(label), keyword) {
			return true
		}
	}
	return false
}
