package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goalplan/engine/internal/models"
)

var (
	// ErrEmptyResponse is returned when the model answered with nothing but whitespace or fences.
	ErrEmptyResponse = errors.New("empty model response")
	// ErrInvalidOutput is returned when the answer is not a plan object.
	ErrInvalidOutput = errors.New("invalid plan output")
)

const fence = "```"

// ParsePlan recovers a plan from a raw model answer. Surrounding whitespace
// and a single pair of code fences (with an optional language tag) are
// removed, then the rest must strictly parse as a JSON object holding a
// "tasks" array of objects and, optionally, a string "project_name".
// Task fields and dependency ids are not checked.
func ParsePlan(text string) (*models.GeneratedPlan, error) {
	body := stripFences(strings.TrimSpace(text))
	if body == "" {
		return nil, ErrEmptyResponse
	}

	if !utf8.ValidString(body) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidOutput)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: top level is null", ErrInvalidOutput)
	}

	rawTasks, ok := top["tasks"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"tasks\"", ErrInvalidOutput)
	}
	var tasks []json.RawMessage
	if err := json.Unmarshal(rawTasks, &tasks); err != nil || tasks == nil {
		return nil, fmt.Errorf("%w: \"tasks\" is not a list", ErrInvalidOutput)
	}
	for i, t := range tasks {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(t, &obj); err != nil || obj == nil {
			return nil, fmt.Errorf("%w: task %d is not an object", ErrInvalidOutput, i)
		}
	}

	var name string
	if rawName, ok := top["project_name"]; ok && !isNull(rawName) {
		if err := json.Unmarshal(rawName, &name); err != nil {
			return nil, fmt.Errorf("%w: \"project_name\" is not a string", ErrInvalidOutput)
		}
	}

	var doc bytes.Buffer
	if err := json.Compact(&doc, []byte(body)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	return &models.GeneratedPlan{
		ProjectName: strings.TrimSpace(name),
		TaskCount:   len(tasks),
		Document:    json.RawMessage(doc.Bytes()),
	}, nil
}

// stripFences removes a leading ``` (plus language tag) and a trailing ```.
func stripFences(s string) string {
	if strings.HasPrefix(s, fence) {
		s = strings.TrimPrefix(s, fence)
		s = trimLanguageTag(s)
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), fence)
	return strings.TrimSpace(s)
}

// trimLanguageTag drops an info string such as "json" that directly follows an opening fence.
func trimLanguageTag(s string) string {
	i := 0
	for i < len(s) && isTagByte(s[i]) {
		i++
	}
	return s[i:]
}

func isTagByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
