// Package planner turns a free-text goal into a structured project plan.
package planner

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goalplan/engine/internal/llm"
	"github.com/goalplan/engine/internal/models"
	appErr "github.com/goalplan/engine/pkg/errors"
	"github.com/goalplan/engine/pkg/logger"
)

// GenerationFailedMessage is the only message clients see for generation failures.
const GenerationFailedMessage = "Failed to generate a valid plan from the AI model."

// GoalRequiredMessage is returned for an empty goal.
const GoalRequiredMessage = "The 'goal' field is required."

// PlanGenerator is what the service layer needs from a generator.
type PlanGenerator interface {
	Generate(ctx context.Context, goal string) (*models.GeneratedPlan, error)
}

// Generator asks the model for a plan once per call: no retry, no cache.
type Generator struct {
	llm llm.Completer
	log *zap.Logger
}

func NewGenerator(c llm.Completer, log *zap.Logger) *Generator {
	if log == nil {
		log = logger.L()
	}
	return &Generator{llm: c, log: log}
}

// Generate returns the parsed plan for goal. Every failure is an
// *errors.AppError carrying GenerationFailedMessage; the cause is logged and
// kept in Err.
func (g *Generator) Generate(ctx context.Context, goal string) (*models.GeneratedPlan, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, appErr.New(appErr.CodeInvalid, GoalRequiredMessage)
	}

	start := time.Now()
	text, err := g.llm.Complete(ctx, BuildPrompt(goal))
	if err != nil {
		g.log.Error("plan generation call failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, appErr.Wrap(err, appErr.CodeUnavailable, GenerationFailedMessage)
	}

	plan, err := ParsePlan(text)
	if err != nil {
		g.log.Error("plan generation returned unusable output",
			zap.Error(err),
			zap.Int("response_bytes", len(text)),
		)
		return nil, appErr.Wrap(err, appErr.CodeInternal, GenerationFailedMessage)
	}

	g.log.Info("plan generated",
		zap.String("project_name", plan.ProjectName),
		zap.Int("tasks", plan.TaskCount),
		zap.Duration("duration", time.Since(start)),
	)
	return plan, nil
}
