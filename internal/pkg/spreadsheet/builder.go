package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const maxValidationRows = 5000

// Builder assembles a styled xlsx workbook with a single data sheet plus
// optional hidden reference sheets for dropdown values.
type Builder struct {
	file  *excelize.File
	sheet string
	row   int
}

// NewBuilder creates a workbook whose default sheet is renamed to sheet.
func NewBuilder(sheet string) (*Builder, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	return &Builder{file: f, sheet: sheet, row: 1}, nil
}

// WriteHeader writes the bold header row, applies column widths and freezes
// the first row.
func (b *Builder) WriteHeader(headers []string, widths []float64) error {
	styleID, err := b.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2F5B7C"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "1F3B52", Style: 2},
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(b.sheet, cell, h); err != nil {
			return err
		}
	}

	firstCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := b.file.SetCellStyle(b.sheet, firstCell, lastCell, styleID); err != nil {
		return err
	}

	for i, w := range widths {
		if w <= 0 {
			continue
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := b.file.SetColWidth(b.sheet, col, col, w); err != nil {
			return err
		}
	}

	if err := b.file.SetPanes(b.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	b.row = 2
	return nil
}

// AppendRow writes one data row below the previously written rows.
func (b *Builder) AppendRow(values []interface{}) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, b.row)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(b.sheet, cell, v); err != nil {
			return err
		}
	}
	b.row++
	return nil
}

// SkipRow leaves one row blank, used to separate data from footer sections.
func (b *Builder) SkipRow() {
	b.row++
}

// AddInlineDropdown restricts a column to a fixed list of values. column is
// 1-based. The validation covers the data area below the header.
func (b *Builder) AddInlineDropdown(column int, values []string) error {
	name, err := excelize.ColumnNumberToName(column)
	if err != nil {
		return err
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s2:%s%d", name, name, maxValidationRows)
	if err := dv.SetDropList(values); err != nil {
		return fmt.Errorf("setting drop list: %w", err)
	}
	return b.file.AddDataValidation(b.sheet, dv)
}

// AddReferenceDropdown restricts a column to values held on a hidden sheet.
// Long lists (communes) exceed the inline drop-list length limit, so they go
// through a reference sheet instead.
func (b *Builder) AddReferenceDropdown(column int, refSheet string, values []string) error {
	idx, err := b.file.NewSheet(refSheet)
	if err != nil {
		return fmt.Errorf("creating reference sheet: %w", err)
	}
	_ = idx
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(refSheet, cell, v); err != nil {
			return err
		}
	}
	if err := b.file.SetSheetVisible(refSheet, false); err != nil {
		return err
	}

	name, err := excelize.ColumnNumberToName(column)
	if err != nil {
		return err
	}
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("%s2:%s%d", name, name, maxValidationRows)
	dv.SetSqrefDropList(fmt.Sprintf("'%s'!$A$1:$A$%d", refSheet, len(values)))
	return b.file.AddDataValidation(b.sheet, dv)
}

// AppendFooterSection writes a titled footer block starting with the section
// marker followed by one line per entry. Imports recognize the marker and
// stop reading data there.
func (b *Builder) AppendFooterSection(marker string, lines []string) error {
	if err := b.AppendRow([]interface{}{marker}); err != nil {
		return err
	}
	for _, line := range lines {
		if err := b.AppendRow([]interface{}{line}); err != nil {
			return err
		}
	}
	return nil
}

// Bytes serializes the workbook.
func (b *Builder) Bytes() ([]byte, error) {
	buf, err := b.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Buffer serializes the workbook into a buffer for streaming responses.
func (b *Builder) Buffer() (*bytes.Buffer, error) {
	return b.file.WriteToBuffer()
}
