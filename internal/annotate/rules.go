package annotate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// mealLimit is the per-person cap for educational meals with HCPs, in
// dollars, per the PhRMA Code.
const mealLimit = 75

var (
	mealContextRe  = regexp.MustCompile(`lunch|dinner|meal|restaurant|food`)
	dollarAmountRe = regexp.MustCompile(`\$(\d+)`)
)

// rule is one independent compliance check. eval receives the
// lower-cased note and the original text (needed for amount extraction)
// and reports at most one violation. Rules never consume text: every
// rule sees the whole note.
type rule struct {
	name string
	eval func(lower, original string) (Violation, bool)
}

// complianceRules is evaluated in order; the order of the returned
// violations follows this table, not severity.
var complianceRules = []rule{
	{
		name: "meal-limit",
		eval: func(lower, original string) (Violation, bool) {
			if !mealContextRe.MatchString(lower) {
				return Violation{}, false
			}
			m := dollarAmountRe.FindStringSubmatch(original)
			if m == nil {
				return Violation{}, false
			}
			amount, err := strconv.Atoi(m[1])
			if err != nil || amount <= mealLimit {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityHigh,
				Type:           "PhRMA Code Violation",
				Issue:          fmt.Sprintf("Meal expense of $%d exceeds the $%d PhRMA Code limit for educational meals with healthcare professionals.", amount, mealLimit),
				Recommendation: "Meals must not exceed $75 per person per PhRMA Code guidelines. Reimburse only the allowable amount and document accordingly.",
			}, true
		},
	},
	{
		name: "speaker-bureau-incentive",
		eval: func(lower, _ string) (Violation, bool) {
			if !containsAny(lower, "speaker bureau", "speaker fee") {
				return Violation{}, false
			}
			if !containsAny(lower, "extra income", "good income", "payment", "per talk", "earns", "it's about", "income for") {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityHigh,
				Type:           "PhRMA Code Violation",
				Issue:          `Offering speaker bureau participation as a financial incentive ("extra income", "per talk fee") violates PhRMA Code provisions against providing financial benefits to influence prescribing behavior.`,
				Recommendation: "Speaker bureau discussions must be separated from sales calls. Engagements must be based on legitimate educational need, not used as financial incentives.",
			}, true
		},
	},
	{
		name: "off-channel-pricing",
		eval: func(lower, _ string) (Violation, bool) {
			matchPricing := strings.Contains(lower, "match") &&
				containsAny(lower, "rebate", "pricing", "price")
			internalPricing := strings.Contains(lower, "special pricing") &&
				strings.Contains(lower, "internal")
			if !matchPricing && !internalPricing && !strings.Contains(lower, "not through official channels") {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityCritical,
				Type:           "Anti-Kickback / Compliance Violation",
				Issue:          "Committing to informal pricing arrangements, rebate matching, or off-channel pricing discussions violates Anti-Kickback statutes and company pricing policy.",
				Recommendation: "All pricing discussions must be handled through the official contracting team. Never make pricing commitments outside of approved channels.",
			}, true
		},
	},
	{
		name: "experimental-sample-use",
		eval: func(lower, _ string) (Violation, bool) {
			if !strings.Contains(lower, "sample") {
				return Violation{}, false
			}
			if !containsAny(lower, "try it", "just try", "see what happens") {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityMedium,
				Type:           "FDA Compliance Violation",
				Issue:          `Language suggesting samples be used experimentally ("try it and see what happens") implies off-label or unapproved exploratory use.`,
				Recommendation: "Samples must be provided within approved indications with appropriate documentation. Avoid language suggesting experimental use.",
			}, true
		},
	},
	{
		name: "unverified-claim",
		eval: func(lower, _ string) (Violation, bool) {
			if !containsAny(lower, "i said yes", "i said it", "i told her yes") {
				return Violation{}, false
			}
			if !containsAny(lower, "not sure", "not totally sure", "don't know", "need to verify") {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityCritical,
				Type:           "Data Integrity Violation",
				Issue:          "Confirming clinical information as accurate when uncertain or later noting it needs verification represents a critical data integrity issue that could mislead prescribing decisions.",
				Recommendation: `Never confirm clinical information you are unsure of. Respond with "I'll verify and follow up in writing within 24 hours." All clinical claims must be backed by approved label or trial data.`,
			}, true
		},
	},
	{
		name: "weak-data-disclosure",
		eval: func(lower, _ string) (Violation, bool) {
			if !containsAny(lower, "data is not great", "data is not strong", "not the strongest data", "data isn't great") {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityMedium,
				Type:           "Transparency Violation",
				Issue:          `Informally characterizing your product's clinical data as "not great" or weak without proper context misrepresents the evidence base and could undermine physician confidence inappropriately.`,
				Recommendation: "Discuss data limitations only within approved clinical context. Use medically accurate language that reflects the totality of evidence.",
			}, true
		},
	},
	{
		name: "undocumented-sample",
		eval: func(lower, _ string) (Violation, bool) {
			if !strings.Contains(lower, "sample") {
				return Violation{}, false
			}
			if containsAny(lower, "signature", "documentation", "paperwork signed", "signed") {
				return Violation{}, false
			}
			return Violation{
				Severity:       SeverityMedium,
				Type:           "Documentation Violation",
				Issue:          "Sample distribution without proper signature documentation violates FDA sampling regulations (Prescription Drug Marketing Act) and company SOPs.",
				Recommendation: "All sample distributions require HCP signature, documentation of lot number, quantity, and proper chain of custody per PDMA requirements.",
			}, true
		},
	},
}

// DetectViolations runs the full rule battery over one call note and
// returns the violations in rule order. Checks are purely lexical; a
// note can trigger any subset of the rules.
func DetectViolations(note string) []Violation {
	lower := strings.ToLower(note)

	violations := []Violation{}
	for _, r := range complianceRules {
		if v, ok := r.eval(lower, note); ok {
			violations = append(violations, v)
		}
	}
	return violations
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
