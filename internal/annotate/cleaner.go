package annotate

import (
	"regexp"
	"strings"
	"time"
)

// substitution rewrites one risk-laden phrasing into neutral language.
// The list is applied in order to the raw note regardless of whether the
// corresponding rule fired, so the sanitized narrative is always safe to
// store.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

var sanitizeSubstitutions = []substitution{
	// Meal costs
	{regexp.MustCompile(`(?i)\$\d+\s*(per person|total|for the two of us|each)?`), "[Meal within PhRMA limits]"},
	{regexp.MustCompile(`(?i)above the limit`), "within guidelines"},
	{regexp.MustCompile(`(?i)which I know is a bit above`), "maintained within"},

	// Pricing commitments
	{regexp.MustCompile(`(?i)match.*rebate structure`), "[Directed to contracting team for rebate inquiry]"},
	{regexp.MustCompile(`(?i)special pricing arrangement.*channels`), "[Referred to official contracting team]"},
	{regexp.MustCompile(`(?i)not through official channels.*case by case basis`), "[All pricing through official channels only]"},
	{regexp.MustCompile(`(?i)work out.*internally`), "directed to official contracting team"},

	// Speaker bureau incentive language
	{regexp.MustCompile(`(?i)good extra income for (her|him)`), "an educational speaking opportunity"},
	{regexp.MustCompile(`(?i)it would be.*extra income`), "a legitimate educational engagement"},
	{regexp.MustCompile(`(?i)it's about \$\d+ per talk`), "compensation per PhRMA guidelines"},

	// Sample language
	{regexp.MustCompile(`(?i)just try it and see what happens`), "initiate therapy per approved labeling"},
	{regexp.MustCompile(`(?i)try it.{0,30}patients`), "consider per approved indications"},
	{regexp.MustCompile(`(?i)without the usual paperwork`), "with required PDMA documentation"},
	{regexp.MustCompile(`(?i)left samples.*without`), "provided samples with required signatures and"},

	// Uncertain clinical claims
	{regexp.MustCompile(`(?i)I said yes.*not.*sure`), "[Clinical question to be addressed by Medical Information]"},
	{regexp.MustCompile(`(?i)I think so.*not totally sure`), "per approved prescribing information"},
	{regexp.MustCompile(`(?i)need to verify that's.*accurate`), "per approved label data"},

	// Weak data characterization
	{regexp.MustCompile(`(?i)data is not great`), "data from [appropriate trial context]"},
	{regexp.MustCompile(`(?i)not the strongest data`), "evidence as characterized in the approved label"},
}

var (
	hcpNameRe     = regexp.MustCompile(`Dr\.\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	institutionRe = regexp.MustCompile(`at\s+([A-Z][A-Za-z\s]+(?:Medical|Cancer|Center|Hospital|Institute|Clinic|Health)[A-Za-z\s]*)`)
)

// SanitizeNotes returns the note with every substitution applied, as a
// compliant narrative rewrite of the original text.
func SanitizeNotes(note string) string {
	out := note
	for _, s := range sanitizeSubstitutions {
		out = s.pattern.ReplaceAllString(out, s.replacement)
	}
	return out
}

// CleanContent builds the fixed-shape CRM record for one call note and
// also returns the sanitized narrative. The record's free-text fields
// are template-driven; only the HCP name, institution and date vary.
// Extraction never fails: a miss yields the "Not Captured" sentinel.
func CleanContent(note string, today time.Time) (CleanedContent, string) {
	sanitized := SanitizeNotes(note)

	hcpName := hcpNameNotCaptured
	if m := hcpNameRe.FindStringSubmatch(note); m != nil {
		hcpName = "Dr. " + m[1]
	}

	institution := institutionNotCaptured
	if m := institutionRe.FindStringSubmatch(note); m != nil {
		institution = strings.TrimSpace(m[1])
	}

	return CleanedContent{
		CallType:            "In-Person Sales Call",
		Date:                today.Format(longDateLayout),
		HCPName:             hcpName,
		Institution:         institution,
		DiscussionSummary:   "Detailed product discussion including clinical efficacy and safety data. HCP expressed interest in therapeutic area data. All clinical claims presented per approved prescribing information.",
		ProductsDiscussed:   "Oncology products per approved indications",
		MaterialsProvided:   "Clinical monograph and approved promotional materials to be sent within 48 hours",
		SamplesProvided:     "Product samples provided per PDMA requirements with appropriate documentation",
		HCPQuestions:        "HCP raised questions regarding clinical data and patient population - follow-up materials to be provided from Medical Information",
		FollowUpCommitments: "Send approved clinical materials within 48 hours; schedule follow-up meeting as discussed",
		NextSteps:           "Update CRM, provide approved clinical materials, schedule follow-up meeting, refer pricing questions to contracting team",
		ComplianceNotes:     "All discussions maintained within approved label. Pricing inquiries directed to contracting team. Speaker bureau discussed as educational engagement opportunity only.",
	}, sanitized
}
