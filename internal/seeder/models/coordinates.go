// Package models holds the documents written by the seeder. JSON tags name the
// nested JSONB fields read by the dashboard.
package models

import "fmt"

// Coordinates is a position inside a residence, in metres.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// String renders the position the way it is fed to the vision hash.
func (c Coordinates) String() string {
	return fmt.Sprintf("{'x': %g, 'y': %g, 'z': %g}", c.X, c.Y, c.Z)
}
