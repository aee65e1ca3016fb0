package models

import "time"

type CameraMeta struct {
	Device   string      `json:"device"`
	FOV      int         `json:"fov"`
	Position Coordinates `json:"position"`
}

// Scan is one detection pass over a residence. ObjectsDetectedCount is set
// once, after the scan's objects have been resolved.
type Scan struct {
	ID                   string
	ResidenceID          string
	UserID               string
	Timestamp            time.Time
	CameraMeta           CameraMeta
	ObjectsDetectedCount int
}
