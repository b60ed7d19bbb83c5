package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

const kitchenYAML = `
defaults:
  frequency_days: 10
rooms:
  - name: Kitchen
    areas:
      - name: Counters
        tasks:
          - name: Wipe counters
            frequency_days: 1
            last_completed: 2025-03-14
          - name: Descale kettle
      - name: Floor
        tasks:
          - name: Mop
            forced_status: due
`

const bathroomJSON = `{
  "rooms": [
    {"name": "Bathroom", "areas": [
      {"name": "Sink", "tasks": [
        {"name": "Scrub sink", "frequency_days": 3, "last_completed": "2025-03-12T08:30:00Z"}
      ]}
    ]}
  ]
}`

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "households/kitchen.yaml", []byte(kitchenYAML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "households/upstairs/bathroom.json", []byte(bathroomJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, "households/README.md", []byte("# notes"), 0o644))
	return fs
}

func TestLoader_LoadYAML(t *testing.T) {
	l := NewLoader(newTestFs(t))

	file, err := l.Load("households/kitchen.yaml")
	require.NoError(t, err)

	require.Len(t, file.Rooms, 1)
	assert.Equal(t, "Kitchen", file.Rooms[0].Name)
	require.Len(t, file.Rooms[0].Areas, 2)
	tasks := file.Rooms[0].Areas[0].Tasks
	require.Len(t, tasks, 2)
	require.NotNil(t, tasks[0].LastCompleted)
	assert.Equal(t, "2025-03-14", *tasks[0].LastCompleted)
	assert.Nil(t, tasks[1].FrequencyDays)
	require.NotNil(t, file.Defaults)
	assert.Equal(t, 10, *file.Defaults.FrequencyDays)
}

func TestLoader_LoadJSON(t *testing.T) {
	l := NewLoader(newTestFs(t))

	file, err := l.Load("households/upstairs/bathroom.json")
	require.NoError(t, err)
	require.Len(t, file.Rooms, 1)
	assert.Equal(t, "Bathroom", file.Rooms[0].Name)
	assert.Equal(t, 3, *file.Rooms[0].Areas[0].Tasks[0].FrequencyDays)
}

func TestLoader_LoadRejectsUnknownFieldsAndTypes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("rooms: []\ncolour: blue\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "bad.toml", []byte("rooms = []"), 0o644))
	l := NewLoader(fs)

	_, err := l.Load("bad.yaml")
	assert.Error(t, err)

	_, err = l.Load("bad.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported import file type")

	_, err = l.Load("missing.yaml")
	assert.Error(t, err)
}

func TestLoader_ExpandGlobs(t *testing.T) {
	l := NewLoader(newTestFs(t))

	paths, err := l.Expand("households/**/*.{yaml,json}")
	require.NoError(t, err)
	assert.Equal(t, []string{"households/kitchen.yaml", "households/upstairs/bathroom.json"}, paths)
}

func TestLoader_ExpandDeduplicatesAndKeepsOrder(t *testing.T) {
	l := NewLoader(newTestFs(t))

	paths, err := l.Expand("households/upstairs/bathroom.json", "households/**/*.json", "households/kitchen.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"households/upstairs/bathroom.json", "households/kitchen.yaml"}, paths)
}

func TestLoader_ExpandErrors(t *testing.T) {
	l := NewLoader(newTestFs(t))

	_, err := l.Expand("households/nope.yaml")
	assert.ErrorContains(t, err, "does not exist")

	_, err = l.Expand("households/**/*.toml")
	assert.ErrorContains(t, err, "matched no files")

	_, err = l.Expand("households/[.yaml")
	assert.ErrorContains(t, err, "invalid glob pattern")
}

func validFile() *HouseholdFile {
	return &HouseholdFile{
		Rooms: []RoomImport{{
			Name: "Kitchen",
			Areas: []AreaImport{{
				Name:  "Counters",
				Tasks: []TaskImport{{Name: "Wipe"}},
			}},
		}},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate(validFile()))
}

func TestValidate_CollectsEveryError(t *testing.T) {
	file := &HouseholdFile{
		Defaults: &DefaultsImport{FrequencyDays: ptrInt(0)},
		Rooms: []RoomImport{
			{Name: "Kitchen", Areas: []AreaImport{
				{Name: "Counters", Tasks: []TaskImport{
					{Name: ""},
					{Name: "Wipe", FrequencyDays: ptrInt(-2)},
					{Name: "Mop", LastCompleted: ptrStr("last tuesday")},
					{Name: "Oven", ForcedStatus: ptrStr("complete")},
				}},
				{Name: "counters"},
			}},
			{Name: " "},
		},
	}

	errs := Validate(file)
	require.Len(t, errs, 7)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	assert.Contains(t, msgs, "defaults.frequency_days must be positive, got 0")
	assert.Contains(t, msgs, "rooms[0].areas[0].tasks[0].name is required")
	assert.Contains(t, msgs, "rooms[0].areas[0].tasks[1].frequency_days must be positive, got -2")
	assert.Contains(t, msgs, "rooms[0].areas[1].name: duplicate name \"counters\"")
	assert.Contains(t, msgs, "rooms[1].name is required")
}

func TestValidate_RequiresRooms(t *testing.T) {
	errs := Validate(&HouseholdFile{})
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "rooms: at least one room is required")
}

func TestConvert_BuildsRecordsWithDefaults(t *testing.T) {
	file, err := NewLoader(newTestFs(t)).Load("households/kitchen.yaml")
	require.NoError(t, err)
	require.Empty(t, Validate(file))

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	h, err := Convert(file, now)
	require.NoError(t, err)

	require.Len(t, h.Rooms, 1)
	require.Len(t, h.Areas, 2)
	require.Len(t, h.Tasks, 3)

	room := h.Rooms[0]
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, now, room.CreatedAt)
	for _, a := range h.Areas {
		assert.Equal(t, room.ID, a.RoomID)
	}

	wipe, kettle, mop := h.Tasks[0], h.Tasks[1], h.Tasks[2]
	assert.Equal(t, h.Areas[0].ID, wipe.AreaID)
	assert.Equal(t, 1, wipe.FrequencyDays)
	require.NotNil(t, wipe.LastCompleted)
	assert.Equal(t, "2025-03-14", wipe.LastCompleted.In(time.Local).Format(time.DateOnly))

	assert.Equal(t, 10, kettle.FrequencyDays, "file default applies")
	assert.Nil(t, kettle.LastCompleted)

	assert.Equal(t, h.Areas[1].ID, mop.AreaID)
	assert.True(t, mop.ForcedIncomplete)
	require.NotNil(t, mop.ForcedStatus)
	assert.Equal(t, domain.StatusDue, *mop.ForcedStatus)
}

func TestConvert_FallsBackToDomainDefaultFrequency(t *testing.T) {
	h, err := Convert(validFile(), time.Now())
	require.NoError(t, err)
	require.Len(t, h.Tasks, 1)
	assert.Equal(t, domain.DefaultFrequencyDays, h.Tasks[0].FrequencyDays)
}

func TestConvert_RFC3339Completion(t *testing.T) {
	file, err := NewLoader(newTestFs(t)).Load("households/upstairs/bathroom.json")
	require.NoError(t, err)

	h, err := Convert(file, time.Now())
	require.NoError(t, err)
	require.NotNil(t, h.Tasks[0].LastCompleted)
	assert.True(t, time.Date(2025, 3, 12, 8, 30, 0, 0, time.UTC).Equal(*h.Tasks[0].LastCompleted))
}
