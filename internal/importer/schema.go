package importer

// HouseholdFile is the top-level structure of a household import file.
// The same shape is accepted as YAML or JSON.
type HouseholdFile struct {
	Defaults *DefaultsImport `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Rooms    []RoomImport    `yaml:"rooms" json:"rooms"`
}

// DefaultsImport holds file-wide values that cascade to tasks.
type DefaultsImport struct {
	FrequencyDays *int `yaml:"frequency_days,omitempty" json:"frequency_days,omitempty"`
}

type RoomImport struct {
	Name  string       `yaml:"name" json:"name"`
	Areas []AreaImport `yaml:"areas" json:"areas"`
}

type AreaImport struct {
	Name  string       `yaml:"name" json:"name"`
	Tasks []TaskImport `yaml:"tasks" json:"tasks"`
}

// TaskImport defines a recurring task. LastCompleted accepts YYYY-MM-DD
// (local midnight) or RFC3339. A ForcedStatus marks the task as forced
// incomplete.
type TaskImport struct {
	Name          string  `yaml:"name" json:"name"`
	FrequencyDays *int    `yaml:"frequency_days,omitempty" json:"frequency_days,omitempty"`
	LastCompleted *string `yaml:"last_completed,omitempty" json:"last_completed,omitempty"`
	ForcedStatus  *string `yaml:"forced_status,omitempty" json:"forced_status,omitempty"`
}
