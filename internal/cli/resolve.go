package cli

import (
	"context"
	"fmt"
	"strings"

	homekeepapp "github.com/alexanderramin/homekeep/internal/app"
)

// candidate is one resolvable entity. path is the slash-joined name chain,
// e.g. "Kitchen/Counters/Wipe".
type candidate struct {
	id   string
	name string
	path string
}

// resolveID matches input against candidates in order: exact ID, exact path,
// exact name, ID prefix. Name and path matches are case-insensitive.
func resolveID(kind, input string, cands []candidate) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s is required", kind)
	}

	for _, c := range cands {
		if c.id == input {
			return c.id, nil
		}
	}
	for _, c := range cands {
		if strings.EqualFold(c.path, input) {
			return c.id, nil
		}
	}

	var byName []candidate
	for _, c := range cands {
		if strings.EqualFold(c.name, input) {
			byName = append(byName, c)
		}
	}
	switch len(byName) {
	case 0:
	case 1:
		return byName[0].id, nil
	default:
		paths := make([]string, len(byName))
		for i, c := range byName {
			paths[i] = c.path
		}
		return "", fmt.Errorf("%s name %q is ambiguous, use one of: %s", kind, input, strings.Join(paths, ", "))
	}

	var matches []string
	for _, c := range cands {
		if strings.HasPrefix(c.id, input) {
			matches = append(matches, c.id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveRoomID(ctx context.Context, app *App, input string) (string, error) {
	rooms, err := app.Rooms.List(ctx)
	if err != nil {
		return "", err
	}
	cands := make([]candidate, 0, len(rooms))
	for _, r := range rooms {
		cands = append(cands, candidate{id: r.ID, name: r.Name, path: r.Name})
	}
	return resolveID("room", input, cands)
}

// household loads the whole room/area/task tree in one status request.
// Area and task resolution works off it so "Kitchen/Counters" style paths
// cost three queries regardless of household size.
func household(ctx context.Context, app *App) (*homekeepapp.StatusResponse, error) {
	return app.Status.GetStatus(ctx, homekeepapp.NewStatusRequest())
}

func resolveAreaID(ctx context.Context, app *App, input string) (string, error) {
	resp, err := household(ctx, app)
	if err != nil {
		return "", err
	}
	return resolveID("area", input, areaCandidates(resp))
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	resp, err := household(ctx, app)
	if err != nil {
		return "", err
	}
	return resolveID("task", input, taskCandidates(resp))
}

func areaCandidates(resp *homekeepapp.StatusResponse) []candidate {
	var cands []candidate
	for _, r := range resp.Rooms {
		for _, a := range r.Areas {
			cands = append(cands, candidate{id: a.AreaID, name: a.AreaName, path: r.RoomName + "/" + a.AreaName})
		}
	}
	return cands
}

func taskCandidates(resp *homekeepapp.StatusResponse) []candidate {
	var cands []candidate
	for _, r := range resp.Rooms {
		for _, a := range r.Areas {
			for _, t := range a.Tasks {
				cands = append(cands, candidate{
					id:   t.TaskID,
					name: t.TaskName,
					path: r.RoomName + "/" + a.AreaName + "/" + t.TaskName,
				})
			}
		}
	}
	return cands
}

// findArea locates an area's status view inside a status response.
func findArea(resp *homekeepapp.StatusResponse, areaID string) (homekeepapp.AreaStatusView, bool) {
	for _, r := range resp.Rooms {
		for _, a := range r.Areas {
			if a.AreaID == areaID {
				return a, true
			}
		}
	}
	return homekeepapp.AreaStatusView{}, false
}

func findTask(resp *homekeepapp.StatusResponse, taskID string) (homekeepapp.TaskStatusView, bool) {
	for _, r := range resp.Rooms {
		for _, a := range r.Areas {
			for _, t := range a.Tasks {
				if t.TaskID == taskID {
					return t, true
				}
			}
		}
	}
	return homekeepapp.TaskStatusView{}, false
}
