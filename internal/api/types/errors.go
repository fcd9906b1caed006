package types

import appErr "github.com/goalplan/engine/pkg/errors"

// Client-facing messages of the plan routes.
const (
	MsgMissingJSON  = "Missing JSON in request"
	MsgPlanNotFound = "Plan not found"
	MsgInternal     = "Internal server error"
)

// FromAppError converts err into the HTTP status and body sent to clients.
// Causes never leak; only AppError messages are exposed.
func FromAppError(err error) (int, ErrorResponse) {
	return appErr.StatusOf(err), ErrorResponse{Error: appErr.Message(err, MsgInternal)}
}
