package repository

import (
	"fmt"
	"strings"

	"github.com/shenikar/incident_reporting/internal/models"
)

// maxQueryLimit - жесткая верхняя граница выборки независимо от переданного фильтра
const maxQueryLimit = 1000

const selectIncidentColumns = `
		SELECT
			id,
			type,
			severity,
			status,
			description,
			lat,
			lon,
			created_at,
			updated_at
		FROM incidents`

// listQuery собирает WHERE-условия с позиционными параметрами
type listQuery struct {
	conds []string
	args  []any
}

func (q *listQuery) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *listQuery) where(cond string) {
	q.conds = append(q.conds, cond)
}

// buildListQuery переводит фильтр в один ограниченный запрос, упорядоченный
// по created_at DESC, id DESC.
func buildListQuery(f models.IncidentFilter) (string, []any) {
	q := &listQuery{}

	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q.where(fmt.Sprintf("status = ANY(%s)", q.arg(statuses)))
	}

	if len(f.Severities) > 0 {
		severities := make([]string, len(f.Severities))
		for i, s := range f.Severities {
			severities[i] = string(s)
		}
		q.where(fmt.Sprintf("severity = ANY(%s)", q.arg(severities)))
	}

	if f.CreatedBefore != nil {
		if f.BeforeID != nil {
			q.where(fmt.Sprintf("(created_at, id) < (%s, %s)", q.arg(*f.CreatedBefore), q.arg(*f.BeforeID)))
		} else {
			q.where(fmt.Sprintf("created_at < %s", q.arg(*f.CreatedBefore)))
		}
	}

	if f.CreatedAfter != nil {
		q.where(fmt.Sprintf("created_at >= %s", q.arg(*f.CreatedAfter)))
	}

	if f.BBox != nil {
		b := f.BBox
		q.where(fmt.Sprintf("lon BETWEEN %s AND %s AND lat BETWEEN %s AND %s",
			q.arg(b.MinLon), q.arg(b.MaxLon), q.arg(b.MinLat), q.arg(b.MaxLat)))
	}

	var sb strings.Builder
	sb.WriteString(selectIncidentColumns)
	if len(q.conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(q.conds, "\n\t\t\tAND "))
	}
	sb.WriteString("\n\t\tORDER BY created_at DESC, id DESC")
	sb.WriteString("\n\t\tLIMIT ")
	sb.WriteString(q.arg(clampQueryLimit(f.Limit)))

	return sb.String(), q.args
}

func clampQueryLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxQueryLimit {
		return maxQueryLimit
	}
	return limit
}
