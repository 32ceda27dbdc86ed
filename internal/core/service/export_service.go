package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// ExportService renders the filtered item list as CSV or PDF. Pure
// presentation over the same fetch-then-filter listing the inventory view
// uses; area names are resolved in memory and a dangling area_id shows N/A.
type ExportService struct {
	items ports.ItemService
	areas ports.AreaRepository
}

func NewExportService(items ports.ItemService, areas ports.AreaRepository) *ExportService {
	return &ExportService{items: items, areas: areas}
}

// CSV renders comma-joined fields with only the description quoted. The
// format is not RFC 4180 and must stay byte-stable for existing consumers;
// encoding/csv would change the bytes. Lines are newline-joined, so there is
// no trailing newline after the last row.
func (s *ExportService) CSV(ctx context.Context, filter ports.ItemFilter) ([]byte, error) {
	items, areaNames, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "Code,Name,Category,Status,Area,Description")
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s,%s,%s,%s,%s,\"%s\"",
			it.Code, it.Name, it.Category, it.Status, areaName(areaNames, it.AreaID), it.Description))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// PDF renders a header plus a five-column table of the filtered list.
func (s *ExportService) PDF(ctx context.Context, filter ports.ItemFilter) ([]byte, error) {
	items, areaNames, err := s.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 15, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Inventory Report - Nexus Pro", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	cols := []struct {
		title string
		width float64
	}{
		{"Code", contentW * 0.16},
		{"Name", contentW * 0.28},
		{"Category", contentW * 0.20},
		{"Status", contentW * 0.18},
		{"Area", contentW * 0.18},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, it := range items {
		row := []string{it.Code, it.Name, it.Category, string(it.Status), areaName(areaNames, it.AreaID)}
		for i, col := range cols {
			pdf.CellFormat(col.width, 6, row[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportService) fetch(ctx context.Context, filter ports.ItemFilter) ([]domain.Item, map[string]string, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	areas, err := s.areas.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(areas))
	for _, a := range areas {
		names[a.ID] = a.Name
	}
	return items, names, nil
}

func areaName(names map[string]string, areaID string) string {
	if name, ok := names[areaID]; ok {
		return name
	}
	return "N/A"
}
