package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalplan/engine/internal/models"
	"github.com/goalplan/engine/internal/planner"
	appErr "github.com/goalplan/engine/pkg/errors"
)

type stubGenerator struct {
	plan *models.GeneratedPlan
	err  error
}

func (g stubGenerator) Generate(context.Context, string) (*models.GeneratedPlan, error) {
	return g.plan, g.err
}

type insertCall struct {
	name string
	data json.RawMessage
}

type memRepo struct {
	inserts   []insertCall
	insertErr error
}

func (r *memRepo) Insert(_ context.Context, name string, data json.RawMessage) (uint, error) {
	if r.insertErr != nil {
		return 0, r.insertErr
	}
	r.inserts = append(r.inserts, insertCall{name: name, data: data})
	return uint(len(r.inserts)), nil
}

func (r *memRepo) GetData(_ context.Context, id uint) (json.RawMessage, error) {
	if id == 0 || int(id) > len(r.inserts) {
		return nil, appErr.New(appErr.CodeNotFound, "Plan not found")
	}
	return r.inserts[id-1].data, nil
}

func (r *memRepo) ListSummaries(context.Context) ([]models.PlanSummary, error) {
	return nil, nil
}

func generated(name string) *models.GeneratedPlan {
	return &models.GeneratedPlan{
		ProjectName: name,
		Document:    json.RawMessage(`{"project_name":"` + name + `","tasks":[]}`),
	}
}

func TestCreatePlanPersists(t *testing.T) {
	repo := &memRepo{}
	svc := NewPlanService(stubGenerator{plan: generated("Bakery Launch")}, repo, nil)

	out, err := svc.CreatePlan(context.Background(), "Launch a bakery")
	require.NoError(t, err)
	assert.Equal(t, uint(1), out.ID)
	require.Len(t, repo.inserts, 1)
	assert.Equal(t, "Bakery Launch", repo.inserts[0].name)

	data, err := svc.GetPlan(context.Background(), out.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(out.Plan.Document), string(data))
}

func TestCreatePlanUsesPlaceholderName(t *testing.T) {
	repo := &memRepo{}
	svc := NewPlanService(stubGenerator{plan: &models.GeneratedPlan{Document: json.RawMessage(`{"tasks":[]}`)}}, repo, nil)

	_, err := svc.CreatePlan(context.Background(), "Launch a bakery")
	require.NoError(t, err)
	require.Len(t, repo.inserts, 1)
	assert.Equal(t, models.UntitledPlan, repo.inserts[0].name)
}

func TestCreatePlanSwallowsStoreFailure(t *testing.T) {
	repo := &memRepo{insertErr: errors.New("disk full")}
	svc := NewPlanService(stubGenerator{plan: generated("Bakery Launch")}, repo, nil)

	out, err := svc.CreatePlan(context.Background(), "Launch a bakery")
	require.NoError(t, err)
	assert.Zero(t, out.ID)
	assert.Equal(t, "Bakery Launch", out.Plan.ProjectName)
}

func TestCreatePlanGenerationFailureSkipsStore(t *testing.T) {
	repo := &memRepo{}
	genErr := appErr.New(appErr.CodeInternal, planner.GenerationFailedMessage)
	svc := NewPlanService(stubGenerator{err: genErr}, repo, nil)

	_, err := svc.CreatePlan(context.Background(), "Launch a bakery")
	assert.ErrorIs(t, err, genErr)
	assert.Empty(t, repo.inserts)
}
