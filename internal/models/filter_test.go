package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBBoxContains_ClosedRectangle(t *testing.T) {
	b := BBox{MinLon: -10, MinLat: -5, MaxLon: 10, MaxLat: 5}

	assert.True(t, b.Contains(0, 0))
	assert.True(t, b.Contains(-10, -5))
	assert.True(t, b.Contains(10, 5))
	assert.False(t, b.Contains(10.0001, 0))
	assert.False(t, b.Contains(0, -5.0001))
}

func TestIncidentFilterMatches(t *testing.T) {
	base := time.Date(2024, time.May, 10, 10, 0, 0, 0, time.UTC)
	inc := &Incident{
		ID:        uuid.MustParse("00000000-0000-0000-0000-000000000005"),
		Severity:  SeverityHigh,
		Status:    StatusTriaged,
		Latitude:  37.7,
		Longitude: -122.4,
		CreatedAt: base,
	}
	before := base
	after := base.Add(-time.Minute)
	lowerID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	higherID := uuid.MustParse("00000000-0000-0000-0000-000000000009")

	tests := []struct {
		name   string
		filter IncidentFilter
		want   bool
	}{
		{"empty filter", IncidentFilter{}, true},
		{"status member", IncidentFilter{Statuses: []Status{StatusOpen, StatusTriaged}}, true},
		{"status not member", IncidentFilter{Statuses: []Status{StatusClosed}}, false},
		{"severity not member", IncidentFilter{Severities: []Severity{SeverityLow}}, false},
		{"created before is exclusive", IncidentFilter{CreatedBefore: &before}, false},
		{"created after is inclusive", IncidentFilter{CreatedAfter: &base}, true},
		{"created after excludes older", IncidentFilter{CreatedAfter: &[]time.Time{base.Add(time.Second)}[0]}, false},
		{"tie broken by higher id", IncidentFilter{CreatedBefore: &before, BeforeID: &higherID}, true},
		{"tie broken by lower id", IncidentFilter{CreatedBefore: &before, BeforeID: &lowerID}, false},
		{"window", IncidentFilter{CreatedAfter: &after}, true},
		{"inside bbox", IncidentFilter{BBox: &BBox{MinLon: -123, MinLat: 37, MaxLon: -122, MaxLat: 38}}, true},
		{"outside bbox", IncidentFilter{BBox: &BBox{MinLon: 0, MinLat: 0, MaxLon: 1, MaxLat: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(inc))
		})
	}
}

func TestEnumsValid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.IsValid())
	}
	for _, s := range Severities {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("resolved").IsValid())
	assert.False(t, Severity("").IsValid())
}
