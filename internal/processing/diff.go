package processing

import (
	"time"

	"github.com/pterobot/pterobot/internal/domain/entity"
)

// Observation is the live status of one listed server.
type Observation struct {
	Server entity.Server
	Status entity.Status
}

// Diff applies observations, in order, on top of previous.
// It returns the next state, whether any entry changed and the reportable transitions.
// previous is not modified.
func Diff(previous entity.MonitorState, observations []Observation, observedAt time.Time) (entity.MonitorState, bool, []entity.ChangeEvent) {
	next := make(entity.MonitorState, len(previous)+len(observations))
	for id, status := range previous {
		next[id] = status
	}

	changed := false

	var events []entity.ChangeEvent

	for _, obs := range observations {
		id := obs.Server.ID()
		if id == "" {
			continue
		}

		last, existed := next[id]
		if existed && last == obs.Status {
			continue
		}

		next[id] = obs.Status
		changed = true

		if !DetectTransition(last, obs.Status, existed) {
			continue
		}

		server := obs.Server
		server.Status = obs.Status

		events = append(events, entity.ChangeEvent{
			Server:     server,
			Previous:   last,
			Current:    obs.Status,
			ObservedAt: observedAt,
		})
	}

	return next, changed, events
}

// DetectTransition reports whether a status change is worth a notification.
// Changes from or to unknown usually are panel hiccups and are not reported.
func DetectTransition(previous, current entity.Status, hadPrevious bool) bool {
	switch {
	case !hadPrevious:
		return false
	case previous == current:
		return false
	case previous == entity.StatusUnknown, current == entity.StatusUnknown:
		return false
	default:
		return true
	}
}
