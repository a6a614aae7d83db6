package annotate

// Severity levels for a detected compliance violation.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// Priority levels for a follow-up action.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// priorityRank orders actions for the stable sort. Unknown values sink
// to the bottom rather than panicking.
var priorityRank = map[string]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// Violation is one detected compliance problem in a call note.
type Violation struct {
	Severity       string `json:"severity"`
	Type           string `json:"type"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
}

// FollowUpAction is one follow-up work item derived from a call note.
type FollowUpAction struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Action   string `json:"action"`
	DueDate  string `json:"dueDate"`
	Notes    string `json:"notes"`
}

// CleanedContent is the fixed-shape CRM record. Every field is always
// populated; name/institution fall back to sentinel values when
// extraction finds nothing.
type CleanedContent struct {
	CallType            string `json:"callType"`
	Date                string `json:"date"`
	HCPName             string `json:"hcpName"`
	Institution         string `json:"institution"`
	DiscussionSummary   string `json:"discussionSummary"`
	ProductsDiscussed   string `json:"productsDiscussed"`
	MaterialsProvided   string `json:"materialsProvided"`
	SamplesProvided     string `json:"samplesProvided"`
	HCPQuestions        string `json:"hcpQuestions"`
	FollowUpCommitments string `json:"followUpCommitments"`
	NextSteps           string `json:"nextSteps"`
	ComplianceNotes     string `json:"complianceNotes"`
}

// Result is the full annotation output for one call note. Violations may
// be empty; Actions never is. SanitizedNotes is the raw note with the
// risk-laden phrasing rewritten in place, for integrators that want the
// narrative variant instead of the templated CRM fields.
type Result struct {
	Violations     []Violation      `json:"violations"`
	Actions        []FollowUpAction `json:"actions"`
	Cleaned        CleanedContent   `json:"cleaned"`
	SanitizedNotes string           `json:"sanitizedNotes,omitempty"`
}

const (
	hcpNameNotCaptured     = "HCP Name Not Captured"
	institutionNotCaptured = "Institution Not Captured"
)

// Date formats matching the suite's en-US presentation.
const (
	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "Monday, January 2, 2006"
)
