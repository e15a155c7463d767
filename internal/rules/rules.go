// Package rules holds every static table the analysis core consults:
// classification keywords, risk overrides, per-category reference data,
// contradiction checks and per-role report playbooks. The tables are plain
// data; the core walks them and never branches on category or role names,
// so the whole rule set can be audited, tested and overridden from a YAML
// file without touching control flow.
package rules

import (
	"fmt"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
)

// CategoryRule maps a keyword set onto a category. Rules are evaluated in
// slice order against the lower-cased case type; the first match wins.
type CategoryRule struct {
	Category model.Category `yaml:"category"`
	Keywords []string       `yaml:"keywords"`
}

// RiskGroup is one keyword-group override for the risk score. Groups are
// evaluated in slice order and a later match overwrites an earlier one,
// so the final score belongs to the last group that matched.
type RiskGroup struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Score    float64  `yaml:"score"`
}

// RiskRule is the complete risk heuristic: a baseline plus the ordered
// override groups. It is a deliberate simplification, not a probability
// model.
type RiskRule struct {
	Baseline float64     `yaml:"baseline"`
	Groups   []RiskGroup `yaml:"groups"`
}

// CategoryProfile is the static reference table for one category: the
// precedent-like reference cases, the applicable norm citations and the
// default predicted outcome.
type CategoryProfile struct {
	Category         model.Category        `yaml:"category"`
	ReferenceCases   []model.ReferenceCase `yaml:"reference_cases"`
	LegalNorms       []string              `yaml:"legal_norms"`
	PredictedOutcome string                `yaml:"predicted_outcome"`
}

// ContradictionRule parameterizes the two evidence-consistency checks.
type ContradictionRule struct {
	MinDocuments           int    `yaml:"min_documents"`
	InsufficientMessage    string `yaml:"insufficient_message"`
	ContractKeyword        string `yaml:"contract_keyword"`
	MissingContractMessage string `yaml:"missing_contract_message"`
}

// RolePlaybook lists the action and warning templates for one role.
// Templates may interpolate {{top_case}}, {{contradictions}}, {{risk}}
// and {{risk_complement}}; nothing else is computed per role.
type RolePlaybook struct {
	Role     model.Role `yaml:"role"`
	Actions  []string   `yaml:"actions"`
	Warnings []string   `yaml:"warnings"`
}

// RuleSet is the full rule-table bundle. It is built once at startup and
// treated as read-only afterwards; the analysis core copies whatever it
// hands out.
type RuleSet struct {
	Classification  []CategoryRule    `yaml:"classification"`
	Fallback        model.Category    `yaml:"fallback"`
	Risk            RiskRule          `yaml:"risk"`
	Profiles        []CategoryProfile `yaml:"profiles"`
	Contradiction   ContradictionRule `yaml:"contradiction"`
	Recommendations []string          `yaml:"recommendations"`
	Playbooks       []RolePlaybook    `yaml:"playbooks"`
}

// Profile returns the reference table for a category. Validate guarantees
// every category in the closed set has one.
func (rs *RuleSet) Profile(cat model.Category) (CategoryProfile, bool) {
	for _, p := range rs.Profiles {
		if p.Category == cat {
			return p, true
		}
	}
	return CategoryProfile{}, false
}

// Playbook returns the action/warning templates for a role.
func (rs *RuleSet) Playbook(role model.Role) (RolePlaybook, bool) {
	for _, p := range rs.Playbooks {
		if p.Role == role {
			return p, true
		}
	}
	return RolePlaybook{}, false
}

// Validate rejects rule sets that would leave the core partial: missing
// profiles or playbooks, scores outside [0,1], empty keyword lists, or
// categories and roles outside the closed sets.
func (rs *RuleSet) Validate() error {
	if len(rs.Classification) == 0 {
		return fmt.Errorf("rules: classification table is empty")
	}
	for i, rule := range rs.Classification {
		if _, err := model.ParseCategory(string(rule.Category)); err != nil {
			return fmt.Errorf("rules: classification[%d]: %w", i, err)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("rules: classification[%d] (%s) has no keywords", i, rule.Category)
		}
	}
	if _, err := model.ParseCategory(string(rs.Fallback)); err != nil {
		return fmt.Errorf("rules: fallback: %w", err)
	}

	if rs.Risk.Baseline < 0 || rs.Risk.Baseline > 1 {
		return fmt.Errorf("rules: risk baseline %v outside [0,1]", rs.Risk.Baseline)
	}
	for i, g := range rs.Risk.Groups {
		if g.Score < 0 || g.Score > 1 {
			return fmt.Errorf("rules: risk group %q score %v outside [0,1]", g.Name, g.Score)
		}
		if len(g.Keywords) == 0 {
			return fmt.Errorf("rules: risk group[%d] (%s) has no keywords", i, g.Name)
		}
	}

	for _, cat := range model.Categories() {
		p, ok := rs.Profile(cat)
		if !ok {
			return fmt.Errorf("rules: no profile for category %s", cat)
		}
		if p.PredictedOutcome == "" {
			return fmt.Errorf("rules: profile %s has no predicted outcome", cat)
		}
		for _, ref := range p.ReferenceCases {
			if ref.Similarity < 0 || ref.Similarity > 1 {
				return fmt.Errorf("rules: profile %s reference %s similarity %v outside [0,1]", cat, ref.ID, ref.Similarity)
			}
		}
	}

	if rs.Contradiction.MinDocuments < 0 {
		return fmt.Errorf("rules: contradiction min_documents must not be negative")
	}
	if rs.Contradiction.InsufficientMessage == "" || rs.Contradiction.MissingContractMessage == "" {
		return fmt.Errorf("rules: contradiction messages must not be empty")
	}
	if rs.Contradiction.ContractKeyword == "" {
		return fmt.Errorf("rules: contradiction contract keyword must not be empty")
	}

	if len(rs.Recommendations) == 0 {
		return fmt.Errorf("rules: recommendations list is empty")
	}

	for _, role := range model.Roles() {
		p, ok := rs.Playbook(role)
		if !ok {
			return fmt.Errorf("rules: no playbook for role %s", role)
		}
		if len(p.Actions) == 0 || len(p.Warnings) == 0 {
			return fmt.Errorf("rules: playbook %s needs at least one action and one warning", role)
		}
	}

	return nil
}
