package models

import "time"

type ObjectStatus string

const (
	StatusActive  ObjectStatus = "ativo"
	StatusRemoved ObjectStatus = "removido"
)

// Object is a physical item detected in a residence. VisionHash is unique
// within a residence and identifies repeat sightings. ScanID is nil for
// catalog objects that were never detected.
type Object struct {
	ID          string
	ResidenceID string
	Name        string
	Type        string
	Color       string
	Coordinates Coordinates
	ScanID      *string
	FirstSeen   time.Time
	LastSeen    time.Time
	Status      ObjectStatus
	Confidence  float64
	VisionHash  string
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	c := *o
	if o.ScanID != nil {
		id := *o.ScanID
		c.ScanID = &id
	}
	return &c
}
