// Package handler — export.go implements GET /export.
// Returns every trip with its placed activities as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"itinero-server/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_destination", "trip_start_date", "trip_end_date",
	"travelers", "day", "date", "activity_id", "activity_name",
	"start_time", "end_time", "duration",
}

// exportDocument is the JSON export envelope. ExportID uniquely identifies
// the generated document so downstream consumers can de-duplicate imports.
type exportDocument struct {
	ExportID    uuid.UUID          `json:"exportId"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Rows        []domain.ExportRow `json:"rows"`
}

// handleExport handles GET /export.
// It returns a flat table of every trip/day/activity combination.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeDomainError(w, err, "export failed")
		return
	}
	if rows == nil {
		rows = []domain.ExportRow{}
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, exportDocument{
		ExportID:    uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	})
}

// writeCSV encodes the rows as CSV with a header line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer writes never fail.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinero-export.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// exportRowToCSVRecord encodes an ExportRow as a flat string slice.
// Zero day/entry fields (itinerary-less trips) become empty strings.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.Itoa(r.TripID),
		r.TripName,
		r.TripDestination,
		r.TripStartDate,
		r.TripEndDate,
		strconv.Itoa(r.Travelers),
		zeroBlank(r.Day),
		r.Date,
		zeroBlank(r.ActivityID),
		r.ActivityName,
		r.StartTime,
		r.EndTime,
		r.Duration,
	}
}

// zeroBlank renders 0 as "" so placeholder rows stay visibly empty in CSV.
func zeroBlank(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
