package projection

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIncidents() []*models.Incident {
	return []*models.Incident{
		{
			ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Type:      "fire",
			Severity:  models.SeverityHigh,
			Status:    models.StatusOpen,
			Latitude:  37.7749,
			Longitude: -122.4194,
			CreatedAt: time.Date(2024, time.May, 10, 10, 2, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, time.May, 10, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Type:      `He said "hi", ok`,
			Severity:  models.SeverityCritical,
			Status:    models.StatusTriaged,
			Latitude:  35.6895,
			Longitude: 139.6917,
			CreatedAt: time.Date(2024, time.May, 10, 10, 1, 0, 500000000, time.UTC),
		},
	}
}

func TestToItem_CoordsAreLonLat(t *testing.T) {
	item := ToItem(sampleIncidents()[0])

	assert.Equal(t, [2]float64{-122.4194, 37.7749}, item.Coords)
	assert.Equal(t, "2024-05-10T10:02:00Z", item.CreatedAt)
	assert.Equal(t, "high", item.Severity)
	assert.Equal(t, "open", item.Status)
}

func TestToPage_JSONShape(t *testing.T) {
	incidents := sampleIncidents()
	cursor := incidents[1].CreatedAt
	cursorID := incidents[1].ID

	page := ToPage(&models.IncidentPage{Items: incidents, NextCursor: &cursor, NextCursorID: &cursorID})
	data, err := json.Marshal(page)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2024-05-10T10:01:00.5Z", decoded["nextCursor"])
	assert.Equal(t, cursorID.String(), decoded["nextCursorId"])

	items := decoded["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.ElementsMatch(t, []string{"id", "type", "severity", "status", "coords", "createdAt"}, keys(first))
	assert.Equal(t, []any{-122.4194, 37.7749}, first["coords"])
}

func TestToPage_EmptyPage(t *testing.T) {
	data, err := json.Marshal(ToPage(&models.IncidentPage{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"items":[],"nextCursor":null,"nextCursorId":null}`, string(data))
}

func TestToDetail(t *testing.T) {
	inc := sampleIncidents()[0]
	inc.Description = "smoke over the ridge"

	detail := ToDetail(inc)

	assert.Equal(t, "smoke over the ridge", detail.Description)
	assert.Equal(t, "2024-05-10T11:00:00Z", detail.UpdatedAt)
	assert.Equal(t, inc.ID, detail.ID)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, sampleIncidents()))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,type,severity,status,lon,lat,createdAt", lines[0])
	assert.Equal(t, "11111111-1111-1111-1111-111111111111,fire,high,open,-122.4194,37.7749,2024-05-10T10:02:00Z", lines[1])
	assert.Equal(t, `22222222-2222-2222-2222-222222222222,"He said ""hi"", ok",critical,triaged,139.6917,35.6895,2024-05-10T10:01:00.5Z`, lines[2])
	assert.False(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestWriteCSV_NewlineInValueIsQuoted(t *testing.T) {
	inc := sampleIncidents()[0]
	inc.Type = "line one\nline two"
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, []*models.Incident{inc}))

	assert.Contains(t, buf.String(), "\"line one\nline two\"")
	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "line one\nline two", records[1][1])
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "id,type,severity,status,lon,lat,createdAt", buf.String())
}

func TestCSVAndJSONSameIDs(t *testing.T) {
	incidents := sampleIncidents()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, incidents))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	var csvIDs []string
	for _, r := range records[1:] {
		csvIDs = append(csvIDs, r[0])
	}

	var jsonIDs []string
	for _, item := range ToPage(&models.IncidentPage{Items: incidents}).Items {
		jsonIDs = append(jsonIDs, item.ID.String())
	}

	assert.ElementsMatch(t, jsonIDs, csvIDs)
}

func TestToFeatureCollection(t *testing.T) {
	fc := ToFeatureCollection(sampleIncidents())

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)
	f := fc.Features[1]
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "Point", f.Geometry.Type)
	assert.Equal(t, [2]float64{139.6917, 35.6895}, f.Geometry.Coordinates)
	assert.Equal(t, "critical", f.Properties.Severity)
	assert.Equal(t, "2024-05-10T10:01:00.5Z", f.Properties.CreatedAt)
}

func TestToFeatureCollection_EmptyFeaturesArray(t *testing.T) {
	data, err := json.Marshal(ToFeatureCollection(nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
