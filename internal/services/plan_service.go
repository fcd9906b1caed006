package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/goalplan/engine/internal/models"
	"github.com/goalplan/engine/internal/planner"
	"github.com/goalplan/engine/internal/repository"
	"github.com/goalplan/engine/pkg/logger"
)

// PlanService orchestrates generation and persistence of plans.
type PlanService interface {
	// CreatePlan generates a plan for goal and tries to store it. A storage
	// failure is logged and does not fail the call; the returned id is then 0.
	CreatePlan(ctx context.Context, goal string) (*CreatedPlan, error)
	GetPlan(ctx context.Context, id uint) (json.RawMessage, error)
	ListPlans(ctx context.Context) ([]models.PlanSummary, error)
}

// CreatedPlan is the outcome of CreatePlan.
type CreatedPlan struct {
	ID   uint
	Plan *models.GeneratedPlan
}

type planService struct {
	generator planner.PlanGenerator
	plans     repository.PlanRepository
	log       *zap.Logger
}

func NewPlanService(generator planner.PlanGenerator, plans repository.PlanRepository, log *zap.Logger) PlanService {
	if log == nil {
		log = logger.L()
	}
	return &planService{generator: generator, plans: plans, log: log}
}

func (s *planService) CreatePlan(ctx context.Context, goal string) (*CreatedPlan, error) {
	s.log.Info("received goal", zap.Int("goal_length", len(goal)))

	plan, err := s.generator.Generate(ctx, goal)
	if err != nil {
		return nil, err
	}

	id, err := s.plans.Insert(ctx, plan.StoredName(), plan.Document)
	if err != nil {
		s.log.Error("plan save failed", zap.Error(err), zap.String("project_name", plan.StoredName()))
		return &CreatedPlan{Plan: plan}, nil
	}

	s.log.Info("plan saved", zap.Uint("id", id), zap.String("project_name", plan.StoredName()))
	return &CreatedPlan{ID: id, Plan: plan}, nil
}

func (s *planService) GetPlan(ctx context.Context, id uint) (json.RawMessage, error) {
	return s.plans.GetData(ctx, id)
}

func (s *planService) ListPlans(ctx context.Context) ([]models.PlanSummary, error) {
	return s.plans.ListSummaries(ctx)
}
