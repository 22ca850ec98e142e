// Package types defines the data records shared across the BRD pipeline stages.
package types

// AnalysisRecord is the structured business analysis returned by the AI
// service. The schema is soft: the record is guaranteed to be a keyed JSON
// object, but category values may be strings, lists, or nested objects
// depending on the source document.
type AnalysisRecord map[string]any

// BRDRecord is the generated Business Requirements Document, keyed by
// section. Same soft-schema contract as AnalysisRecord, except that the
// fourteen canonical sections are always present after generation.
type BRDRecord map[string]any

// PersistedBRD is the durable form of a completed pipeline run. Records are
// write-once: created at pipeline completion, identified by ID, never
// updated or deleted.
type PersistedBRD struct {
	ID             string    `json:"id"`
	OriginalSource string    `json:"original_source"`
	CreatedAt      string    `json:"created_at"`
	BRD            BRDRecord `json:"brd"`
}

// AnalysisCategories lists the ten categories the analysis stage asks the AI
// service to populate.
var AnalysisCategories = []string{
	"business_objectives",
	"current_processes",
	"pain_points",
	"stakeholders",
	"success_metrics",
	"technical_constraints",
	"timeline",
	"budget",
	"compliance_requirements",
	"integration_needs",
}

// BRDSections lists the fourteen canonical BRD sections in document order.
var BRDSections = []string{
	"executive_summary",
	"project_background",
	"business_objectives",
	"scope",
	"current_process_analysis",
	"requirements",
	"stakeholders",
	"success_criteria",
	"constraints",
	"assumptions",
	"risks_and_mitigation",
	"timeline",
	"budget",
	"approval",
}

// IsEmpty reports whether the record has no categories at all.
func (a AnalysisRecord) IsEmpty() bool {
	return len(a) == 0
}

// HasSection reports whether the BRD contains the given section key.
func (b BRDRecord) HasSection(key string) bool {
	_, ok := b[key]
	return ok
}
