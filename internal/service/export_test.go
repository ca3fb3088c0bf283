// SPDX-License-Identifier: Apache-2.0

package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateProfileRecord(state string) models.MetadataRecord {
	return models.MetadataRecord{
		"name":        "COVID-19 State Profile Report - " + state,
		"id":          "abcd-0000",
		"tags":        []any{"covid-19", "report"},
		"master_tags": []any{"health"},
		"attribution": "White House COVID-19 Team",
	}
}

func TestFilterExport_KeepsOnlyMarkerMatches(t *testing.T) {
	svc := NewExportService(logger.Nop())

	records := []models.MetadataRecord{
		stateProfileRecord("Alabama"),
		{"name": "Hospital Capacity Timeseries", "id": "efgh-1111"},
		stateProfileRecord("North Carolina"),
		{"id": "no-name-at-all"},
	}

	out := svc.FilterExport(records, DefaultExportMarker, DefaultExportStripPrefix)

	require.Len(t, out, 2)
	assert.Equal(t, "Alabama", out[0].Name())
	assert.Equal(t, "North_Carolina", out[1].Name())
}

func TestFilterExport_RemovesTagFields(t *testing.T) {
	svc := NewExportService(logger.Nop())

	out := svc.FilterExport([]models.MetadataRecord{stateProfileRecord("Texas")}, DefaultExportMarker, DefaultExportStripPrefix)

	require.Len(t, out, 1)
	assert.NotContains(t, out[0], models.ExportFieldTags)
	assert.NotContains(t, out[0], models.ExportFieldMasterTags)
	assert.Equal(t, "White House COVID-19 Team", out[0]["attribution"], "unrelated fields survive")
}

func TestFilterExport_ToleratesMissingTagFields(t *testing.T) {
	svc := NewExportService(logger.Nop())

	record := models.MetadataRecord{"name": "COVID-19 State Profile Report - Ohio"}
	out := svc.FilterExport([]models.MetadataRecord{record}, DefaultExportMarker, DefaultExportStripPrefix)

	require.Len(t, out, 1)
	assert.Equal(t, "Ohio", out[0].Name())
}

func TestFilterExport_InputNotMutated(t *testing.T) {
	svc := NewExportService(logger.Nop())

	record := stateProfileRecord("Alaska")
	_ = svc.FilterExport([]models.MetadataRecord{record}, DefaultExportMarker, DefaultExportStripPrefix)

	assert.Equal(t, "COVID-19 State Profile Report - Alaska", record.Name())
	assert.Contains(t, record, models.ExportFieldTags)
}

func TestTransformRecord_Idempotent(t *testing.T) {
	once := transformRecord(stateProfileRecord("North Carolina"), DefaultExportStripPrefix)
	twice := transformRecord(once, DefaultExportStripPrefix)

	assert.Equal(t, once, twice)
	assert.Equal(t, "North_Carolina", twice.Name())
}

func TestTransformFile(t *testing.T) {
	svc := NewExportService(logger.Nop())
	dir := t.TempDir()
	inPath := filepath.Join(dir, "export.json")
	outPath := filepath.Join(dir, "filtered.json")

	input, err := json.Marshal([]models.MetadataRecord{
		stateProfileRecord("Alabama"),
		{"name": "Vaccination Trends", "id": "efgh-1111"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(inPath, input, 0o600))

	// pre-existing output must be fully overwritten, not merged
	require.NoError(t, os.WriteFile(outPath, []byte(`[{"name":"stale"}]`), 0o600))

	kept, err := svc.TransformFile(inPath, outPath, DefaultExportMarker, DefaultExportStripPrefix)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var out []models.MetadataRecord
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Alabama", out[0].Name())
}

func TestTransformFile_BadInput(t *testing.T) {
	svc := NewExportService(logger.Nop())
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.TransformFile(filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json"), DefaultExportMarker, DefaultExportStripPrefix)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read export file")
	})

	t.Run("not a json array", func(t *testing.T) {
		inPath := filepath.Join(dir, "object.json")
		require.NoError(t, os.WriteFile(inPath, []byte(`{"name":"x"}`), 0o600))

		_, err := svc.TransformFile(inPath, filepath.Join(dir, "out.json"), DefaultExportMarker, DefaultExportStripPrefix)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode export file")
	})
}
