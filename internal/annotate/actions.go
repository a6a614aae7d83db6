package annotate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var weeksOutRe = regexp.MustCompile(`(\d+)\s*week`)

// defaultFollowUpWeeks applies when the note asks for a follow-up but
// never says how far out.
const defaultFollowUpWeeks = 2

// PlanFollowUps derives the follow-up worklist for one call note. The
// list always starts (before sorting) with the mandatory CRM update due
// on the reference day; the six conditional categories append in fixed
// order, then the list is stably sorted urgent-first so ties keep that
// emission order. today is injected so due dates are deterministic.
func PlanFollowUps(note string, today time.Time) []FollowUpAction {
	lower := strings.ToLower(note)

	due := func(days int) string {
		return today.AddDate(0, 0, days).Format(shortDateLayout)
	}

	actions := []FollowUpAction{{
		Priority: PriorityUrgent,
		Category: "CRM",
		Action:   "Update CRM System",
		DueDate:  due(0),
		Notes:    "Log this call with compliant language, corrected content, and all follow-up commitments in the CRM same day.",
	}}

	if containsAny(lower, "send", "provide", "monograph", "material") {
		actions = append(actions, FollowUpAction{
			Priority: PriorityHigh,
			Category: "Materials",
			Action:   "Send Clinical Monograph",
			DueDate:  due(2),
			Notes:    "Provide approved clinical monograph and supporting materials as discussed during the call. Include only label-approved indications.",
		})
	}

	if containsAny(lower, "follow up", "follow-up", "see me again", "next meeting") {
		weeks := defaultFollowUpWeeks
		if m := weeksOutRe.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				weeks = n
			}
		}
		plural := ""
		if weeks > 1 {
			plural = "s"
		}
		actions = append(actions, FollowUpAction{
			Priority: PriorityHigh,
			Category: "Engagement",
			Action:   "Schedule Follow-Up Meeting",
			DueDate:  due(weeks * 7),
			Notes:    fmt.Sprintf("Schedule follow-up visit in approximately %d week%s as agreed during this call.", weeks, plural),
		})
	}

	if containsAny(lower, "tumor board", "present", "presentation") {
		actions = append(actions, FollowUpAction{
			Priority: PriorityUrgent,
			Category: "Medical Education",
			Action:   "Prepare Tumor Board Presentation Support",
			DueDate:  due(3),
			Notes:    "Prepare approved presentation materials, clinical slides, and case study support for HCP tumor board presentation. Coordinate with MSL if needed.",
		})
	}

	if containsAny(lower, "pricing", "rebate", "contract", "formulary") {
		actions = append(actions, FollowUpAction{
			Priority: PriorityMedium,
			Category: "Contracting",
			Action:   "Refer to Contracting Team",
			DueDate:  due(3),
			Notes:    "Do not discuss pricing directly. Refer all pricing/rebate/contract inquiries to the official contracting team and provide them with the account details.",
		})
	}

	if containsAny(lower, "safety", "adverse", "side effect", "cardiotoxicity", "toxicity") {
		actions = append(actions, FollowUpAction{
			Priority: PriorityHigh,
			Category: "Medical Information",
			Action:   "Provide Safety Information Package",
			DueDate:  due(1),
			Notes:    "Provide approved safety data, adverse event monitoring protocols, and refer to Medical Information line for clinical safety questions beyond label.",
		})
	}

	if containsAny(lower, "study", "trial", "research", "data") {
		actions = append(actions, FollowUpAction{
			Priority: PriorityMedium,
			Category: "Clinical Evidence",
			Action:   "Share Clinical Trial Information",
			DueDate:  due(3),
			Notes:    "Provide approved clinical study summaries and trial data referenced during the discussion. Ensure all materials are fair-balanced and within approved label.",
		})
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return priorityRank[actions[i].Priority] < priorityRank[actions[j].Priority]
	})
	return actions
}
