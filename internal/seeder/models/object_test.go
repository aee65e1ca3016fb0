package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectClone_CopiesScanID(t *testing.T) {
	scan := "scan-1"
	o := &Object{ID: "o-1", Name: "Sofá #1", ScanID: &scan}

	c := o.Clone()
	*c.ScanID = "scan-2"
	c.Name = "Sofá #1 (renomeado)"

	assert.Equal(t, "scan-1", *o.ScanID)
	assert.Equal(t, "Sofá #1", o.Name)
}

func TestObjectClone_NilScanID(t *testing.T) {
	o := &Object{ID: "o-1"}
	assert.Nil(t, o.Clone().ScanID)
}

func TestCoordinatesString(t *testing.T) {
	c := Coordinates{X: 1.25, Y: 0, Z: -0.5}
	assert.Equal(t, "{'x': 1.25, 'y': 0, 'z': -0.5}", c.String())
}
