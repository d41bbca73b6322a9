package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OptionalTask is either a TaskType or no task at all. The zero value is None.
type OptionalTask struct {
	task TaskType
	set  bool
}

// Some wraps a task type.
func Some(t TaskType) OptionalTask {
	return OptionalTask{task: t, set: true}
}

// None returns the empty OptionalTask.
func None() OptionalTask {
	return OptionalTask{}
}

// Get returns the task type and whether one is present.
func (o OptionalTask) Get() (TaskType, bool) {
	return o.task, o.set
}

// IsNone reports whether no task is present.
func (o OptionalTask) IsNone() bool {
	return !o.set
}

// Label returns the task label, or "None".
func (o OptionalTask) Label() string {
	if !o.set {
		return "None"
	}
	return o.task.Label()
}

// String returns the wire form: the task key or NONE.
func (o OptionalTask) String() string {
	if !o.set {
		return NoneKey
	}
	return string(o.task)
}

// ParseOptionalTask resolves a task key or NONE. An empty string is None.
func ParseOptionalTask(s string) (OptionalTask, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, NoneKey) {
		return None(), nil
	}
	t, err := ParseTaskType(trimmed)
	if err != nil {
		return None(), err
	}
	return Some(t), nil
}

// MarshalJSON encodes the wire form.
func (o OptionalTask) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON accepts a task key, "NONE", an empty string or null.
func (o *OptionalTask) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("optional task must be a string: %w", err)
	}
	parsed, err := ParseOptionalTask(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// TaskTypesWithNone returns the secondary-task choices: None first, then every task type.
func TaskTypesWithNone() []OptionalTaskOption {
	out := make([]OptionalTaskOption, 0, len(taskTypes)+1)
	out = append(out, OptionalTaskOption{Value: None(), Label: "None (No Secondary Task)"})
	for _, opt := range taskTypes {
		out = append(out, OptionalTaskOption{Value: Some(opt.Value), Label: opt.Label})
	}
	return out
}

// OptionalTaskOption pairs an OptionalTask with its label.
type OptionalTaskOption struct {
	Value OptionalTask `json:"value"`
	Label string       `json:"label"`
}
