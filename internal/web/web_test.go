package web

import (
	"bytes"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalplan/engine/internal/models"
)

func TestRenderIndex(t *testing.T) {
	pages, err := NewPages()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pages.RenderIndex(&buf))
	assert.Contains(t, buf.String(), `id="goal-input"`)
	assert.Contains(t, buf.String(), `/static/script.js`)
}

func TestRenderPlansEscapesNames(t *testing.T) {
	pages, err := NewPages()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pages.RenderPlans(&buf, []models.PlanSummary{
		{ID: 2, ProjectName: "<b>Bakery</b>", CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
	}))
	out := buf.String()
	assert.Contains(t, out, "&lt;b&gt;Bakery&lt;/b&gt;")
	assert.Contains(t, out, `data-plan-id="2"`)
	assert.Contains(t, out, "2026-01-02 03:04:05")
}

func TestRenderPlansEmpty(t *testing.T) {
	pages, err := NewPages()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pages.RenderPlans(&buf, nil))
	assert.Contains(t, buf.String(), "No plans saved yet.")
}

func TestStaticContainsScript(t *testing.T) {
	_, err := fs.Stat(Static(), "script.js")
	assert.NoError(t, err)
}
