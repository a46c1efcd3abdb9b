// Package filter разбирает параметры запроса списка/экспорта в models.IncidentFilter.
// Некорректные значения не считаются ошибкой: фильтр просто не применяется,
// а лимит приводится к допустимому диапазону.
package filter

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_reporting/internal/models"
)

// Limits - лимит по умолчанию и верхняя граница для одного вида выборки
type Limits struct {
	Default int
	Max     int
}

var (
	// ListLimits применяются к JSON-списку
	ListLimits = Limits{Default: 50, Max: 200}
	// ExportLimits применяются к CSV/GeoJSON экспорту
	ExportLimits = Limits{Default: 500, Max: 1000}
)

const (
	paramStatus        = "status"
	paramSeverity      = "severity"
	paramCreatedBefore = "created_before"
	paramCreatedAfter  = "created_after"
	paramCursorID      = "cursor_id"
	paramSince         = "since"
	paramBBox          = "bbox"
	paramLimit         = "limit"
)

// Parse строит фильтр из query-параметров. now нужен для относительных окон (since).
func Parse(values url.Values, limits Limits, now time.Time) models.IncidentFilter {
	f := models.IncidentFilter{
		Statuses:   parseStatuses(values[paramStatus]),
		Severities: parseSeverities(values[paramSeverity]),
		Limit:      ClampLimit(values.Get(paramLimit), limits),
	}

	if t, ok := ParseTimestamp(values.Get(paramCreatedBefore)); ok {
		f.CreatedBefore = &t
		if id, err := uuid.Parse(strings.TrimSpace(values.Get(paramCursorID))); err == nil {
			f.BeforeID = &id
		}
	}

	if t, ok := ParseTimestamp(values.Get(paramCreatedAfter)); ok {
		f.CreatedAfter = &t
	} else if t, ok := Since(values.Get(paramSince), now); ok {
		f.CreatedAfter = &t
	}

	if bbox, ok := ParseBBox(values.Get(paramBBox)); ok {
		f.BBox = &bbox
	}

	return f
}

// ClampLimit возвращает limits.Default для пустого или нечислового значения,
// иначе значение, ограниченное диапазоном [1, limits.Max].
func ClampLimit(raw string, limits Limits) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return limits.Default
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return limits.Default
	}
	if n < 1 {
		return 1
	}
	if n > limits.Max {
		return limits.Max
	}
	return n
}

// ParseBBox разбирает "minLon,minLat,maxLon,maxLat".
// ok=false при неверном числе частей, нечисловых/бесконечных значениях или перевернутых границах.
func ParseBBox(raw string) (models.BBox, bool) {
	if strings.TrimSpace(raw) == "" {
		return models.BBox{}, false
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return models.BBox{}, false
	}

	var nums [4]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return models.BBox{}, false
		}
		nums[i] = n
	}

	bbox := models.BBox{MinLon: nums[0], MinLat: nums[1], MaxLon: nums[2], MaxLat: nums[3]}
	if bbox.MinLon > bbox.MaxLon || bbox.MinLat > bbox.MaxLat {
		return models.BBox{}, false
	}
	return bbox, true
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp принимает ISO-8601 (RFC 3339 с дробными секундами) или дату YYYY-MM-DD.
// Время без зоны трактуется как UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseStatuses(raw []string) []models.Status {
	var out []models.Status
	seen := make(map[models.Status]struct{})
	for _, v := range raw {
		s := models.Status(strings.ToLower(strings.TrimSpace(v)))
		if !s.IsValid() {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func parseSeverities(raw []string) []models.Severity {
	var out []models.Severity
	seen := make(map[models.Severity]struct{})
	for _, v := range raw {
		s := models.Severity(strings.ToLower(strings.TrimSpace(v)))
		if !s.IsValid() {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
