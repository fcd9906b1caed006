package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bakeryPlan = `{"project_name": "Bakery Launch", "tasks": [
	{"task_id": 1, "task_name": "Find location", "description": "Scout", "timeline_days": 14, "dependencies": []},
	{"task_id": 2, "task_name": "Buy ovens", "description": "Order", "timeline_days": 7, "dependencies": [1]}
]}`

func TestParsePlan_Accepts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bare", input: bakeryPlan},
		{name: "surrounding whitespace", input: "\n\n  " + bakeryPlan + "\t\n"},
		{name: "json fence", input: "```json\n" + bakeryPlan + "\n```"},
		{name: "plain fence", input: "```\n" + bakeryPlan + "\n```"},
		{name: "fence without newlines", input: "```json" + bakeryPlan + "```"},
		{name: "upper case tag", input: "```JSON\n" + bakeryPlan + "\n```"},
		{name: "trailing fence only", input: bakeryPlan + "\n```"},
		{name: "fence with padding", input: "  ```json  \n" + bakeryPlan + "\n```  \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ParsePlan(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "Bakery Launch", plan.ProjectName)
			assert.Equal(t, 2, plan.TaskCount)
			assert.JSONEq(t, bakeryPlan, string(plan.Document))
		})
	}
}

func TestParsePlan_DocumentIsCompacted(t *testing.T) {
	plan, err := ParsePlan("{\n  \"project_name\": \"A\",\n  \"tasks\": []\n}")
	require.NoError(t, err)
	assert.Equal(t, `{"project_name":"A","tasks":[]}`, string(plan.Document))
}

func TestParsePlan_KeepsUnknownFields(t *testing.T) {
	plan, err := ParsePlan(`{"project_name":"A","tasks":[{"task_id":"t1","owner":"me"}],"budget":1200}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"project_name":"A","tasks":[{"task_id":"t1","owner":"me"}],"budget":1200}`, string(plan.Document))
}

func TestParsePlan_MissingProjectName(t *testing.T) {
	for _, input := range []string{`{"tasks":[]}`, `{"project_name":null,"tasks":[]}`, `{"project_name":"  ","tasks":[]}`} {
		plan, err := ParsePlan(input)
		require.NoError(t, err, input)
		assert.Empty(t, plan.ProjectName)
		assert.Equal(t, "Untitled Plan", plan.StoredName())
	}
}

func TestParsePlan_DoesNotValidateTaskFields(t *testing.T) {
	// dependency points at a task that does not exist and forms no checked graph
	input := `{"project_name":"A","tasks":[{"task_id":1,"timeline_days":"two weeks","dependencies":[99,1]}]}`
	plan, err := ParsePlan(input)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.TaskCount)
}

func TestParsePlan_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		empty bool
	}{
		{name: "empty", input: "", empty: true},
		{name: "whitespace", input: " \n\t ", empty: true},
		{name: "fences only", input: "```json\n```", empty: true},
		{name: "prose", input: "Sure! Here is your plan."},
		{name: "prose before json", input: "Here you go: " + bakeryPlan},
		{name: "prose after fence", input: "```json\n" + bakeryPlan + "\n```\nHope this helps!"},
		{name: "truncated", input: `{"project_name": "A", "tasks": [{"task_id": 1`},
		{name: "trailing comma", input: `{"project_name": "A", "tasks": [],}`},
		{name: "single quotes", input: `{'project_name': 'A', 'tasks': []}`},
		{name: "two objects", input: `{"tasks": []} {"tasks": []}`},
		{name: "array top level", input: `[{"task_id": 1}]`},
		{name: "string top level", input: `"plan"`},
		{name: "null top level", input: `null`},
		{name: "missing tasks", input: `{"project_name": "A"}`},
		{name: "null tasks", input: `{"project_name": "A", "tasks": null}`},
		{name: "object tasks", input: `{"project_name": "A", "tasks": {}}`},
		{name: "string tasks", input: `{"project_name": "A", "tasks": "none"}`},
		{name: "scalar task", input: `{"project_name": "A", "tasks": [1, 2]}`},
		{name: "null task", input: `{"project_name": "A", "tasks": [null]}`},
		{name: "numeric project name", input: `{"project_name": 7, "tasks": []}`},
		{name: "invalid utf8", input: "{\"project_name\": \"Caf\xe9\", \"tasks\": []}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ParsePlan(tt.input)
			require.Error(t, err)
			assert.Nil(t, plan)
			if tt.empty {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			} else {
				assert.ErrorIs(t, err, ErrInvalidOutput)
			}
		})
	}
}
