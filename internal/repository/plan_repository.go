package repository

import (
	"context"
	"encoding/json"

	"github.com/goalplan/engine/internal/models"
	appErr "github.com/goalplan/engine/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlanRepository is the plan store.
type PlanRepository interface {
	// Insert appends a row and returns its id.
	Insert(ctx context.Context, projectName string, planData json.RawMessage) (uint, error)
	// GetData returns the stored plan document for id.
	GetData(ctx context.Context, id uint) (json.RawMessage, error)
	// ListSummaries returns every plan, newest first.
	ListSummaries(ctx context.Context) ([]models.PlanSummary, error)
}

type planRepository struct {
	BaseRepository[models.Plan]
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{BaseRepository: NewBaseRepository[models.Plan](db), db: db}
}

func (r *planRepository) Insert(ctx context.Context, projectName string, planData json.RawMessage) (uint, error) {
	p := models.Plan{ProjectName: projectName, PlanData: datatypes.JSON(planData)}
	if err := r.Create(ctx, &p); err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "insert plan failed")
	}
	return p.ID, nil
}

func (r *planRepository) GetData(ctx context.Context, id uint) (json.RawMessage, error) {
	var p models.Plan
	if err := r.GetByID(ctx, id, &p); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, appErr.New(appErr.CodeNotFound, "Plan not found").WithMeta("id", id)
		}
		return nil, err
	}
	return json.RawMessage(p.PlanData), nil
}

func (r *planRepository) ListSummaries(ctx context.Context) ([]models.PlanSummary, error) {
	out := []models.PlanSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.Plan{}).
		Select("id", "project_name", "created_at").
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list plans failed")
	}
	return out, nil
}
