package model

import (
	"fmt"
	"strings"
	"time"
)

// Role is the consumer persona a report is shaped for.
type Role string

const (
	RoleAdjudicator Role = "adjudicator"
	RoleAdvocate    Role = "advocate"
	RoleProsecutor  Role = "prosecutor"
)

// Roles returns the closed role set in its fixed order.
func Roles() []Role {
	return []Role{RoleAdjudicator, RoleAdvocate, RoleProsecutor}
}

func (r Role) String() string {
	switch r {
	case RoleAdjudicator:
		return "Adjudicator"
	case RoleAdvocate:
		return "Advocate"
	case RoleProsecutor:
		return "Prosecutor"
	default:
		return string(r)
	}
}

// ParseRole maps user input onto the closed role set. Anything outside
// the set is an error; there is no default role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjudicator", "judge":
		return RoleAdjudicator, nil
	case "advocate", "lawyer", "counsel":
		return RoleAdvocate, nil
	case "prosecutor":
		return RoleProsecutor, nil
	default:
		return "", fmt.Errorf("unknown role %q (expected adjudicator, advocate or prosecutor)", s)
	}
}

// PersonalizedReport is the role-tailored advisory output. It embeds the
// full analysis so a stored report can be audited without recomputation.
type PersonalizedReport struct {
	Role        Role           `json:"role"`
	GeneratedAt time.Time      `json:"generated_at"`
	CaseID      string         `json:"case_id"`
	KeyInsights []string       `json:"key_insights"` // Always exactly 4 entries
	Actions     []string       `json:"actions"`
	Warnings    []string       `json:"warnings"`
	Analysis    AnalysisResult `json:"analysis"`
	Disclaimer  string         `json:"disclaimer,omitempty"`
}
