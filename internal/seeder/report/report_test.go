package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRunID(t *testing.T, id string) {
	t.Helper()
	orig := newRunID
	newRunID = func() string { return id }
	t.Cleanup(func() { newRunID = orig })
}

func sampleReport(t *testing.T) *Report {
	fixedRunID(t, "2Ab3dEfGhIjKlMnOpQrStUvWxYz")
	start := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	r := New(42, start)
	r.Users = 2
	r.Residences = 7
	r.Scans = 90
	r.ObjectsInserted = 210
	r.ObjectsUpdated = 95
	r.ObjectsDropped = 1
	r.CatalogMaterialized = 4
	r.History = 480
	r.EmailConflicts = 1
	r.Finish(start.Add(1500 * time.Millisecond))
	return r
}

func TestNew_UsesKsuid(t *testing.T) {
	r := New(1, time.Now())
	assert.Len(t, r.RunID, 27)
}

func TestReport_Totals(t *testing.T) {
	r := sampleReport(t)
	assert.Equal(t, 214, r.Objects())
	assert.Equal(t, 1500*time.Millisecond, r.Duration())
	assert.Equal(t, "2Ab3dEfGhIjKlMnOpQrStUvWxYz.json", r.FileName())

	unfinished := New(1, time.Now())
	assert.Zero(t, unfinished.Duration())
}

func TestReport_Print(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport(t).Print(&buf))

	out := buf.String()
	assert.Contains(t, out, "seeding finished")
	assert.Regexp(t, `users\s+2\n`, out)
	assert.Regexp(t, `objects created\s+214\n`, out)
	assert.Regexp(t, `re-sightings\s+95\n`, out)
	assert.Regexp(t, `duration\s+1\.5s\n`, out)
}

func TestReport_WriteFile(t *testing.T) {
	r := sampleReport(t)
	dir := t.TempDir()

	path, err := r.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, r.FileName()), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, r.RunID, got["run_id"])
	assert.EqualValues(t, 42, got["seed"])
	assert.EqualValues(t, 480, got["history"])
}
