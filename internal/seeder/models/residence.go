package models

import "time"

type ResidenceMetadata struct {
	AreaM2 int `json:"area_m2"`
}

type Residence struct {
	ID          string
	UserID      string
	Name        string
	Address     string
	Description string
	CreatedAt   time.Time
	Metadata    ResidenceMetadata
}
