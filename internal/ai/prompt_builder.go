package ai

import (
	"strings"
	"time"
)

const promptDateLayout = "Monday, January 2, 2006"

// BuildAnnotationPrompt embeds one call note in the compliance-review
// instruction. The response contract (three keys, closed enums, actions
// never empty) must match what the rule engine produces so the two
// annotators stay interchangeable.
func BuildAnnotationPrompt(note string, today time.Time) string {
	day := today.Format(promptDateLayout)

	var b strings.Builder

	b.WriteString("You are a pharmaceutical compliance expert specializing in PhRMA Code, FDA regulations, and Anti-Kickback statutes. Analyze the following pharma sales call notes and return a JSON object.\n\n")

	b.WriteString("Today's date: ")
	b.WriteString(day)
	b.WriteString("\n\n")

	b.WriteString("Call Notes:\n\"\"\"\n")
	b.WriteString(note)
	b.WriteString("\n\"\"\"\n\n")

	b.WriteString(`Return ONLY a valid JSON object with exactly this structure (no markdown, no extra text):
{
  "violations": [
    {
      "severity": "critical" | "high" | "medium",
      "type": "string (e.g. PhRMA Code Violation, FDA Compliance Violation, Anti-Kickback Violation, Data Integrity Violation, Documentation Violation)",
      "issue": "string - specific description of the compliance problem found in the notes",
      "recommendation": "string - specific corrective action the rep should take"
    }
  ],
  "actions": [
    {
      "priority": "urgent" | "high" | "medium" | "low",
      "category": "string (e.g. CRM, Materials, Engagement, Medical Education, Contracting, Medical Information, Clinical Evidence)",
      "action": "string - concise action title",
      "dueDate": "string - date in format 'Mon DD, YYYY' based on today (` + day + `)",
      "notes": "string - specific detail about what to do and why"
    }
  ],
  "cleaned": {
    "callType": "string (e.g. In-Person Sales Call, Virtual Call, Phone Call)",
    "date": "` + day + `",
    "hcpName": "string - extracted from notes or 'HCP Name Not Captured'",
    "institution": "string - extracted from notes or 'Institution Not Captured'",
    "discussionSummary": "string - compliant rewrite of what was discussed, removing all violations",
    "productsDiscussed": "string - products mentioned, within approved indications only",
    "materialsProvided": "string - materials shared or to be shared",
    "samplesProvided": "string - compliant sample documentation statement",
    "hcpQuestions": "string - compliant summary of HCP questions and how they were addressed",
    "followUpCommitments": "string - compliant follow-up commitments made",
    "nextSteps": "string - action items for the rep",
    "complianceNotes": "string - brief compliance attestation statement"
  }
}

Rules:
- Identify ALL PhRMA Code violations (meals >$75, speaker bureau as financial incentive, off-label promotion, etc.)
- Identify ALL FDA violations (unapproved indications, off-label promotion, misrepresenting safety/efficacy)
- Identify ALL Anti-Kickback violations (improper financial arrangements, unofficial pricing)
- Identify documentation violations (samples without signatures, undocumented commitments)
- Identify data integrity violations (confirming uncertain clinical information)
- For actions: always include a CRM update action (urgent, due today). Add other actions based on what was discussed.
- For cleaned content: rewrite in compliant language, removing all violations. Extract the HCP name and institution directly from the notes.
- Return an empty array for violations if none are found.
- The actions array must have at least 1 item (CRM update).`)

	return b.String()
}
