package rules

import "github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"

// Default returns the built-in rule tables. The data mirrors the original
// advisory rule book: three categories, a 0.65 risk baseline with three
// override groups, two contradiction checks and one playbook per role.
func Default() *RuleSet {
	return &RuleSet{
		Classification: []CategoryRule{
			{
				Category: model.CategoryCommercialCivil,
				Keywords: []string{"arbitration", "civil"},
			},
			{
				Category: model.CategoryCriminal,
				Keywords: []string{"criminal"},
			},
		},
		Fallback: model.CategoryOtherAdministrative,

		Risk: RiskRule{
			Baseline: 0.65,
			Groups: []RiskGroup{
				{
					Name:     "penalty",
					Keywords: []string{"penalty", "fine", "forfeit"},
					Score:    0.82,
				},
				{
					Name:     "compensation",
					Keywords: []string{"compensation", "moral harm", "non-pecuniary"},
					Score:    0.75,
				},
				{
					Name:     "losses",
					Keywords: []string{"losses", "damages", "lost profit"},
					Score:    0.70,
				},
			},
		},

		Profiles: []CategoryProfile{
			{
				Category: model.CategoryCommercialCivil,
				ReferenceCases: []model.ReferenceCase{
					{ID: "COM-2021-0457", Court: "Commercial Court of Appeal", Outcome: "claim granted in part", Similarity: 0.87},
					{ID: "COM-2019-1123", Court: "Arbitration Tribunal", Outcome: "claim granted", Similarity: 0.81},
					{ID: "CIV-2020-0089", Court: "City Civil Court", Outcome: "settled by the parties", Similarity: 0.74},
				},
				LegalNorms: []string{
					"Civil Code art. 309 (obligations must be performed properly)",
					"Civil Code art. 330 (contractual penalty)",
					"Commercial Procedure Code art. 125 (form of the statement of claim)",
					"Commercial Procedure Code art. 65 (burden of proof)",
				},
				PredictedOutcome: "claim granted in part",
			},
			{
				Category: model.CategoryCriminal,
				ReferenceCases: []model.ReferenceCase{
					{ID: "CRM-2022-0314", Court: "District Criminal Court", Outcome: "conviction on the lesser count", Similarity: 0.79},
					{ID: "CRM-2020-0771", Court: "Court of Cassation", Outcome: "remanded for retrial", Similarity: 0.72},
				},
				LegalNorms: []string{
					"Criminal Code art. 159 (fraud)",
					"Criminal Procedure Code art. 73 (facts subject to proof)",
					"Criminal Procedure Code art. 88 (assessment of evidence)",
				},
				PredictedOutcome: "conviction on the lesser count",
			},
			{
				Category: model.CategoryOtherAdministrative,
				ReferenceCases: []model.ReferenceCase{
					{ID: "ADM-2023-0042", Court: "Administrative Chamber", Outcome: "decision of the authority upheld", Similarity: 0.68},
					{ID: "ADM-2021-0918", Court: "Regional Administrative Court", Outcome: "authority decision set aside", Similarity: 0.64},
				},
				LegalNorms: []string{
					"Administrative Procedure Code art. 218 (challenging decisions of public bodies)",
					"Administrative Offences Code art. 4.5 (limitation periods)",
				},
				PredictedOutcome: "decision of the authority upheld",
			},
		},

		Contradiction: ContradictionRule{
			MinDocuments:           2,
			InsufficientMessage:    "submitted documents are insufficient for full analysis",
			ContractKeyword:        "contract",
			MissingContractMessage: "claims reference a contract, but no contract document is attached",
		},

		Recommendations: []string{
			"Collect and notarize all documentary evidence before the first hearing.",
			"Verify limitation periods and procedural deadlines applicable to the claim.",
			"Consider a negotiated settlement before escalating to a contested hearing.",
		},

		Playbooks: []RolePlaybook{
			{
				Role: model.RoleAdjudicator,
				Actions: []string{
					"Compare the submitted claims against reference ruling {{top_case}} before the first hearing.",
					"Direct the parties to cure the {{contradictions}} recorded evidence inconsistencies.",
					"Weigh the {{risk}} adverse-outcome estimate when considering interim measures.",
				},
				Warnings: []string{
					"The {{risk}} estimate is keyword-derived advisory material, not a probability.",
					"{{contradictions}} contradiction(s) remain unresolved in the case file.",
				},
			},
			{
				Role: model.RoleAdvocate,
				Actions: []string{
					"Review reference case {{top_case}} for arguments that favored the respondent.",
					"Resolve the {{contradictions}} detected inconsistencies before filing.",
					"Prepare the client for a {{risk}} chance of an adverse ruling.",
				},
				Warnings: []string{
					"Estimated success likelihood is roughly {{risk_complement}}; manage client expectations.",
					"Opposing counsel can exploit each of the {{contradictions}} recorded contradictions.",
				},
			},
			{
				Role: model.RoleProsecutor,
				Actions: []string{
					"Cite reference case {{top_case}} when drafting the submission.",
					"Close the {{contradictions}} evidence gaps before the defense raises them.",
					"Treat the {{risk}} estimate as the likelihood the claim prevails.",
				},
				Warnings: []string{
					"Contested evidence leaves a {{risk_complement}} counter-probability.",
					"Unattached exhibits invite dismissal; {{contradictions}} issue(s) flagged.",
				},
			},
		},
	}
}
