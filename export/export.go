// Package export writes the alarm collection in formats meant for backups
// and sharing.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/chime/internal/apperr"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/internal/timeutil"
)

// Format is an export file format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	XLSX Format = "xlsx"
	PDF  Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, XLSX, PDF}

var (
	ErrUnknownFormat = &apperr.Error{
		Message: "unknown export format %q: expected one of json, yaml, xlsx, pdf",
	}

	errExport = &apperr.Error{
		Message: "unable to export alarms as %s",
	}
)

const sheetName = "Alarms"

var header = []string{"ID", "NAME", "TYPE", "INTERVAL", "SOUND", "REPEAT", "RECORDING"}

// ParseFormat maps user input such as "YML" or ".json" to a Format.
func ParseFormat(s string) (Format, error) {
	f := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	if f == "yml" {
		f = string(YAML)
	}

	for _, v := range Formats {
		if string(v) == f {
			return v, nil
		}
	}

	return "", ErrUnknownFormat.Fmt(s)
}

// Write encodes alarms to w.
func Write(w io.Writer, format Format, alarms []models.Alarm) error {
	alarms = normalize(alarms)

	var err error

	switch format {
	case JSON:
		err = writeJSON(w, alarms)
	case YAML:
		err = writeYAML(w, alarms)
	case XLSX:
		err = writeXLSX(w, alarms)
	case PDF:
		err = writePDF(w, alarms)
	default:
		return ErrUnknownFormat.Fmt(string(format))
	}

	if err != nil {
		return errExport.Fmt(string(format)).Wrap(err)
	}

	return nil
}

func normalize(alarms []models.Alarm) []models.Alarm {
	out := make([]models.Alarm, len(alarms))

	for i := range alarms {
		out[i] = alarms[i]
		if out[i].RepeatDays == nil {
			out[i].RepeatDays = []models.Weekday{}
		}
	}

	return out
}

func row(a *models.Alarm) []string {
	return []string{
		a.ID,
		a.Name,
		a.Kind,
		timeutil.HumanizeMinutes(a.IntervalMinutes),
		a.Sound,
		models.JoinWeekdays(a.RepeatDays),
		a.AudioURI,
	}
}

func writeJSON(w io.Writer, alarms []models.Alarm) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(alarms)
}

func writeYAML(w io.Writer, alarms []models.Alarm) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(alarms); err != nil {
		return err
	}

	return enc.Close()
}

func writeXLSX(w io.Writer, alarms []models.Alarm) error {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}

		_ = f.SetCellValue(sheetName, cell, h)
	}

	for i := range alarms {
		a := &alarms[i]

		for j, v := range row(a) {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}

			// keep the interval numeric so that it can be summed
			if header[j] == "INTERVAL" {
				_ = f.SetCellValue(sheetName, cell, a.IntervalMinutes)
				continue
			}

			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	return f.Write(w)
}

// pdf column widths in mm, matching header.
var pdfWidths = []float64{30, 40, 20, 20, 20, 40, 20}

func writePDF(w io.Writer, alarms []models.Alarm) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Chime alarms")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)

	for i, h := range header {
		pdf.CellFormat(pdfWidths[i], 6, h, "1", 0, "C", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)

	for i := range alarms {
		r := row(&alarms[i])
		// ids are long; the first segment is enough to tell alarms apart
		r[0] = shortID(r[0])

		for j, v := range r {
			pdf.CellFormat(pdfWidths[j], 6, v, "1", 0, "L", false, 0, "")
		}

		pdf.Ln(-1)
	}

	if len(alarms) == 0 {
		pdf.Cell(0, 6, "No alarms")
	}

	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d", len(alarms)))

	return pdf.Output(w)
}

func shortID(id string) string {
	before, _, _ := strings.Cut(id, "-")
	return before
}
