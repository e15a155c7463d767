// Package personalize turns a raw analysis result into a report shaped
// for one of the consumer roles. It performs string interpolation only;
// all domain reasoning happens in the analyze package.
package personalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/rules"
)

// noData is substituted for template fields the analysis could not fill.
const noData = "no data"

// Personalizer renders role-specific reports from analysis results.
type Personalizer struct {
	rules *rules.RuleSet

	// now is swapped out in tests to make generated reports reproducible.
	now func() time.Time
}

// New creates a personalizer over the given rule tables. A nil rule set
// selects the built-in tables.
func New(rs *rules.RuleSet) *Personalizer {
	if rs == nil {
		rs = rules.Default()
	}
	return &Personalizer{rules: rs, now: time.Now}
}

// Personalize builds the report for one role. It is deterministic given
// (role, record, analysis) apart from the generation timestamp, and fails
// only when the role is outside the closed set.
func (p *Personalizer) Personalize(role model.Role, rec model.CaseRecord, analysis model.AnalysisResult) (model.PersonalizedReport, error) {
	playbook, ok := p.rules.Playbook(role)
	if !ok {
		return model.PersonalizedReport{}, fmt.Errorf("unknown role %q", role)
	}

	vars := p.templateVars(analysis)

	return model.PersonalizedReport{
		Role:        role,
		GeneratedAt: p.now().UTC(),
		CaseID:      rec.ID,
		KeyInsights: p.keyInsights(analysis),
		Actions:     expandAll(playbook.Actions, vars),
		Warnings:    expandAll(playbook.Warnings, vars),
		Analysis:    analysis,
	}, nil
}

// keyInsights produces the four insight lines every report carries,
// regardless of role: reference-case count, leading norms, risk
// percentage and the predicted outcome.
func (p *Personalizer) keyInsights(analysis model.AnalysisResult) []string {
	norms := analysis.LegalNorms
	if len(norms) > 3 {
		norms = norms[:3]
	}
	normsLine := joinReadable(norms)
	if normsLine == "" {
		normsLine = noData
	}

	outcome := analysis.PredictedOutcome
	if outcome == "" {
		outcome = noData
	}

	return []string{
		fmt.Sprintf("%d comparable reference cases identified.", len(analysis.ReferenceCases)),
		fmt.Sprintf("Key applicable norms: %s.", normsLine),
		fmt.Sprintf("Estimated adverse-outcome risk: %s.", riskPercent(analysis.RiskScore)),
		fmt.Sprintf("Reference outcome pattern: %s.", outcome),
	}
}

// templateVars builds the replacer that fills playbook templates. The
// placeholders cover the top reference case, the contradiction count and
// the risk percentage with its complement.
func (p *Personalizer) templateVars(analysis model.AnalysisResult) *strings.Replacer {
	topCase := noData
	if len(analysis.ReferenceCases) > 0 {
		topCase = analysis.ReferenceCases[0].ID
	}

	pct := int(math.Round(analysis.RiskScore * 100))

	return strings.NewReplacer(
		"{{top_case}}", topCase,
		"{{contradictions}}", strconv.Itoa(len(analysis.Contradictions)),
		"{{risk}}", strconv.Itoa(pct)+"%",
		"{{risk_complement}}", strconv.Itoa(100-pct)+"%",
	)
}

// riskPercent renders a [0,1] score as a whole percentage.
func riskPercent(score float64) string {
	return strconv.Itoa(int(math.Round(score*100))) + "%"
}

// expandAll applies the replacer to every template, returning a fresh
// slice so reports never alias the shared rule tables.
func expandAll(templates []string, vars *strings.Replacer) []string {
	out := make([]string, len(templates))
	for i, tpl := range templates {
		out[i] = vars.Replace(tpl)
	}
	return out
}

// joinReadable joins items as an English list: "a", "a and b",
// "a, b and c".
func joinReadable(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
