package projection

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shenikar/incident_reporting/internal/models"
)

const (
	CSVContentType = "text/csv; charset=utf-8"
	CSVFilename    = "incidents.csv"
)

// CSVHeader - порядок колонок выгрузки
var CSVHeader = []string{"id", "type", "severity", "status", "lon", "lat", "createdAt"}

// WriteCSV пишет заголовок и по строке на инцидент. Значения с запятой, кавычкой или
// переводом строки заключаются в кавычки, внутренние кавычки удваиваются.
// Строки разделяются \n, после последней строки перевода нет.
func WriteCSV(w io.Writer, incidents []*models.Incident) error {
	var buf strings.Builder
	cw := csv.NewWriter(&buf)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, inc := range incidents {
		if err := cw.Write(csvRow(inc)); err != nil {
			return fmt.Errorf("write csv row %s: %w", inc.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if _, err := io.WriteString(w, strings.TrimSuffix(buf.String(), "\n")); err != nil {
		return fmt.Errorf("write csv body: %w", err)
	}
	return nil
}

func csvRow(inc *models.Incident) []string {
	return []string{
		inc.ID.String(),
		inc.Type,
		string(inc.Severity),
		string(inc.Status),
		strconv.FormatFloat(inc.Longitude, 'f', -1, 64),
		strconv.FormatFloat(inc.Latitude, 'f', -1, 64),
		FormatTimestamp(inc.CreatedAt),
	}
}
