package tasksrepobridge

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// ErrUnknownFormat is returned for export formats other than json, csv and pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// Export is one rendered report.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Exporter renders the board, or a filtered part of it, as a document.
type Exporter struct {
	repo *tasksrepo.Repository
	now  func() time.Time
}

func NewExporter(repo *tasksrepo.Repository) *Exporter {
	return &Exporter{repo: repo, now: time.Now}
}

// Export renders the tasks matching filter. Counts always cover the whole
// board.
func (e *Exporter) Export(ctx context.Context, filter tasksrepo.QueryFilter, format string) (Export, error) {
	tasks := e.repo.Query(ctx, filter)
	counts := e.repo.Counts(ctx)
	generated := e.now().UTC()

	switch strings.ToLower(format) {
	case "json":
		doc := struct {
			GeneratedAt time.Time `json:"generatedAt"`
			Stats       Stats     `json:"stats"`
			Records     []Task    `json:"records"`
		}{generated, MarshalStats(counts), MarshalListToBridge(tasks)}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return Export{}, fmt.Errorf("export json: %w", err)
		}
		return Export{Data: data, ContentType: "application/json", Filename: "tasks.json"}, nil

	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		w.Write([]string{"id", "title", "description", "status"})
		for _, t := range tasks {
			w.Write([]string{strconv.Itoa(t.ID), t.Title, t.Description, t.Status.Label()})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return Export{}, fmt.Errorf("export csv: %w", err)
		}
		return Export{Data: buf.Bytes(), ContentType: "text/csv; charset=utf-8", Filename: "tasks.csv"}, nil

	case "pdf":
		data, err := renderPDF(tasks, counts, generated)
		if err != nil {
			return Export{}, fmt.Errorf("export pdf: %w", err)
		}
		return Export{Data: data, ContentType: "application/pdf", Filename: "tasks.pdf"}, nil

	default:
		return Export{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// column widths in mm, A4 portrait minus margins.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"ID", 14},
	{"Title", 70},
	{"Description", 70},
	{"Status", 26},
}

func renderPDF(tasks []tasksrepo.Task, counts tasksrepo.Counts, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Task Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Generated "+generated.Format(time.RFC1123))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %d   To Do: %d   In Progress: %d   Done: %d",
		counts.Total, counts.ToDo, counts.InProgress, counts.Done))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(52, 58, 64)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, t := range tasks {
		cells := []string{strconv.Itoa(t.ID), t.Title, t.Description, t.Status.Label()}
		for i, c := range pdfColumns {
			align := "L"
			if i == 0 {
				align = "C"
			}
			pdf.CellFormat(c.width, 6, fitWidth(pdf, tr(cells[i]), c.width-2), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(tasks) == 0 {
		pdf.CellFormat(180, 6, "No tasks to show.", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitWidth shortens s with an ellipsis until it fits in width mm.
func fitWidth(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
