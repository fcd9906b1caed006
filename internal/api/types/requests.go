package types

// CreatePlanRequest is the body of POST /create-plan.
type CreatePlanRequest struct {
	Goal string `json:"goal" validate:"required"`
}
