package models

import "time"

type ActionType string

const (
	ActionMoved        ActionType = "moved"
	ActionRenamed      ActionType = "renamed"
	ActionColorChanged ActionType = "color_changed"
	ActionRemoved      ActionType = "removed"
	ActionStatusUpdate ActionType = "status_update"
)

// HistoryEntry records one change applied to an object. Only the before/after
// pair matching ActionType is set; the others stay nil.
type HistoryEntry struct {
	ID             string
	ObjectID       string
	ActionType     ActionType
	PerformedBy    string
	Timestamp      time.Time
	Notes          string
	OldCoordinates *Coordinates
	NewCoordinates *Coordinates
	OldColor       *string
	NewColor       *string
	OldName        *string
	NewName        *string
}
