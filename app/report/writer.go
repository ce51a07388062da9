package report

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet format limits and styling constants
const (
	maxSheetNameLength = 31
	maxColumnWidth     = 50
	fontName           = "Segoe UI"
	logoHeight         = 60
	logoRowHeight      = 45
	titleRowHeight     = 35
)

// Sheet is one styled block in the output workbook
type Sheet struct {
	Name    string
	Title   string
	Scheme  string // "primary" or "secondary"
	Columns []string
	Rows    [][]interface{}
}

// Generator writes styled multi-sheet workbooks using the brand
// palette, extracted from the logo when possible
type Generator struct {
	colors   map[string]string
	logoPath string
}

// NewGenerator builds a generator. When a logo is supplied and at least
// four colors can be extracted from it, they replace the default brand
// colors; any extraction failure logs and falls back to defaults.
func NewGenerator(logoPath string) *Generator {
	g := &Generator{colors: DefaultColors(), logoPath: logoPath}

	if logoPath == "" {
		return g
	}

	palette, err := ExtractPalette(logoPath, 8)
	if err != nil {
		slog.Warn("Could not extract colors from logo, using defaults",
			"logo", logoPath, "error", err)
		return g
	}
	if len(palette) < 4 {
		slog.Warn("Logo palette too small, using defaults",
			"logo", logoPath, "colors", len(palette))
		return g
	}

	g.colors["primary"] = palette[0]
	g.colors["secondary"] = palette[1]
	g.colors["accent1"] = palette[2]
	g.colors["accent2"] = palette[3]

	return g
}

// Colors exposes the active palette
func (g *Generator) Colors() map[string]string {
	return g.colors
}

// CreateWorkbook writes one styled sheet per input block. Sheet names
// longer than the format limit are truncated.
func (g *Generator) CreateWorkbook(sheets []Sheet, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, sheet := range sheets {
		name := truncateSheetName(sheet.Name)

		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}

		if err := g.styleSheet(f, name, sheet); err != nil {
			return fmt.Errorf("failed to style sheet %s: %w", name, err)
		}
	}

	// Drop the implicit default sheet
	if len(sheets) > 0 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Created workbook", "file", filename, "sheets", len(sheets))
	return nil
}

func (g *Generator) styleSheet(f *excelize.File, name string, sheet Sheet) error {
	headerColor := g.colors["primary"]
	titleBgColor := g.colors["secondary"]
	if sheet.Scheme == "secondary" {
		headerColor, titleBgColor = titleBgColor, headerColor
	}

	columnCount := max(len(sheet.Columns), 1)
	lastCol, err := excelize.ColumnNumberToName(columnCount)
	if err != nil {
		return err
	}

	currentRow := 1

	// Row 1: logo, when available
	if g.logoPath != "" {
		if err := g.addLogo(f, name); err != nil {
			slog.Warn("Could not add logo", "sheet", name, "error", err)
		} else {
			f.SetRowHeight(name, 1, logoRowHeight)
			currentRow = 2
		}
	}

	// Title row: merged across all columns
	titleRow := currentRow
	titleCell := fmt.Sprintf("A%d", titleRow)
	if err := f.MergeCell(name, titleCell, fmt.Sprintf("%s%d", lastCol, titleRow)); err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 16, Bold: true, Color: g.colors["white"]},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{titleBgColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	f.SetCellValue(name, titleCell, sheet.Title)
	f.SetCellStyle(name, titleCell, fmt.Sprintf("%s%d", lastCol, titleRow), titleStyle)
	f.SetRowHeight(name, titleRow, titleRowHeight)

	// Header row
	headerRow := titleRow + 1
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 11, Bold: true, Color: g.colors["white"]},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: g.colors["dark_gray"], Style: 2},
		},
	})
	if err != nil {
		return err
	}
	for i, column := range sheet.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		f.SetCellValue(name, cell, column)
	}
	f.SetCellStyle(name, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", lastCol, headerRow), headerStyle)

	// Data rows with alternating fills
	evenStyle, err := g.dataStyle(f, g.colors["white"])
	if err != nil {
		return err
	}
	oddStyle, err := g.dataStyle(f, g.colors["light_gray"])
	if err != nil {
		return err
	}

	for rowIdx, row := range sheet.Rows {
		rowNum := headerRow + 1 + rowIdx
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			f.SetCellValue(name, cell, value)
		}

		style := oddStyle
		if (rowNum-headerRow)%2 == 0 {
			style = evenStyle
		}
		f.SetCellStyle(name, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), style)
	}

	// Auto-sized column widths, capped
	for i, column := range sheet.Columns {
		width := len([]rune(column))
		for _, row := range sheet.Rows {
			if i < len(row) {
				if l := len([]rune(fmt.Sprint(row[i]))); l > width {
					width = l
				}
			}
		}
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		f.SetColWidth(name, colName, colName, float64(min(width+3, maxColumnWidth)))
	}

	// Freeze everything above the first data row
	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	})
}

func (g *Generator) dataStyle(f *excelize.File, fillColor string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: fontName, Size: 10, Color: g.colors["text_dark"]},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColor}},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: g.colors["medium_gray"], Style: 1},
			{Type: "right", Color: g.colors["medium_gray"], Style: 1},
			{Type: "bottom", Color: g.colors["medium_gray"], Style: 1},
		},
	})
}

// addLogo places the logo in the top-left corner, scaled to a fixed
// height
func (g *Generator) addLogo(f *excelize.File, sheetName string) error {
	logo, err := os.Open(g.logoPath)
	if err != nil {
		return fmt.Errorf("failed to open logo: %w", err)
	}
	defer logo.Close()

	config, _, err := image.DecodeConfig(logo)
	if err != nil {
		return fmt.Errorf("failed to read logo dimensions: %w", err)
	}
	if config.Height == 0 {
		return fmt.Errorf("logo has zero height")
	}

	scale := float64(logoHeight) / float64(config.Height)
	return f.AddPicture(sheetName, "A1", g.logoPath, &excelize.GraphicOptions{
		ScaleX: scale,
		ScaleY: scale,
	})
}

func truncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSheetNameLength {
		return name
	}
	return string(runes[:maxSheetNameLength])
}
