package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// UntitledPlan is stored as the project name when a generated plan has none.
const UntitledPlan = "Untitled Plan"

// Plan is one persisted generation result. PlanData holds the full plan
// document exactly as it was returned to the client.
type Plan struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectName string         `gorm:"not null" json:"project_name"`
	PlanData    datatypes.JSON `gorm:"not null" json:"plan_data"`
	CreatedAt   time.Time      `json:"created_at"`
}

// PlanSummary is the listing projection of a Plan.
type PlanSummary struct {
	ID          uint      `json:"id"`
	ProjectName string    `json:"project_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task is one unit of work inside a plan document. Field types are not
// enforced on generated plans; this is the shape the model is asked for.
type Task struct {
	TaskID       json.RawMessage   `json:"task_id"`
	TaskName     string            `json:"task_name"`
	Description  string            `json:"description"`
	TimelineDays float64           `json:"timeline_days"`
	Dependencies []json.RawMessage `json:"dependencies"`
}

// GeneratedPlan is a successfully parsed model response.
type GeneratedPlan struct {
	// ProjectName is empty when the document did not carry one.
	ProjectName string
	TaskCount   int
	// Document is the compacted JSON object returned by the model.
	Document json.RawMessage
}

// StoredName returns the project name to persist, falling back to UntitledPlan.
func (p *GeneratedPlan) StoredName() string {
	if p.ProjectName == "" {
		return UntitledPlan
	}
	return p.ProjectName
}
