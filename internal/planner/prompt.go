package planner

import "fmt"

const promptTemplate = `Break down the following goal into a detailed plan.
The goal is: "%s"

Provide a valid JSON object as output. Do not include any text or markdown formatting before or after the JSON.
The object must have a key "project_name" with a creative name for the project, and a key "tasks" which is a list of task objects.
Each task object must have these keys: "task_id", "task_name", "description", "timeline_days", and "dependencies".
"timeline_days" is the estimated number of days the task takes.
"dependencies" must be a list of "task_id"s. If there are no dependencies, it must be an empty list [].`

// BuildPrompt returns the instruction sent to the model for goal. The goal is embedded verbatim.
func BuildPrompt(goal string) string {
	return fmt.Sprintf(promptTemplate, goal)
}
