package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"catalog-import-service/internal/businesstype"
	"catalog-import-service/internal/models"
)

// Row is one data row from an uploaded spreadsheet: cells keyed by the
// header exactly as it appeared in the first row, plus the human-facing
// 1-indexed row number (first data row = 2).
type Row struct {
	Number int
	Cells  map[string]string
}

const sheetName = "Products"

// ParseCSV decodes a CSV stream into ordered rows.
func ParseCSV(file io.Reader) ([]Row, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []Row
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading line %d: %w", lineNum+1, err)
		}

		cells := make(map[string]string)
		for i, value := range record {
			if i < len(headers) {
				cells[headers[i]] = strings.TrimSpace(value)
			}
		}
		lineNum++
		rows = append(rows, Row{Number: lineNum, Cells: cells})
	}

	return rows, nil
}

// ParseXLSX decodes the first sheet of an Excel workbook into ordered
// rows, preferring a sheet named "Products" when present.
func ParseXLSX(file io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}
	sheet := sheets[0]
	for _, name := range sheets {
		if strings.EqualFold(name, sheetName) {
			sheet = name
			break
		}
	}

	excelRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(excelRows) < 2 {
		return nil, fmt.Errorf("file must have a header row and at least one data row")
	}

	headers := excelRows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []Row
	for rowIdx, excelRow := range excelRows[1:] {
		cells := make(map[string]string)
		for i, value := range excelRow {
			if i < len(headers) {
				cells[headers[i]] = strings.TrimSpace(value)
			}
		}
		rows = append(rows, Row{Number: rowIdx + 2, Cells: cells})
	}

	return rows, nil
}

// BuildTemplate generates a downloadable import template workbook: one
// sheet, styled header row from the business type's column list, and one
// example data row.
func BuildTemplate(bt string, locale Locale) (*excelize.File, error) {
	columns := TemplateColumns(bt, locale)
	example := ExampleRow(bt, locale)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	for i, column := range columns {
		headerCell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, headerCell, column)
		f.SetCellStyle(sheetName, headerCell, headerCell, headerStyle)

		dataCell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, dataCell, example[column])

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	return f, nil
}

// WriteCSVTemplate writes the header row and example row as CSV.
func WriteCSVTemplate(w io.Writer, bt string, locale Locale) error {
	columns := TemplateColumns(bt, locale)
	example := ExampleRow(bt, locale)

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}
	record := make([]string, len(columns))
	for i, column := range columns {
		record[i] = example[column]
	}
	if err := writer.Write(record); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// BuildExport serializes a store's products into the same layout the
// template uses, packing structured fields back through the cell grammars
// so an exported file re-imports cleanly. categoryNames maps category IDs
// to display names.
func BuildExport(bt string, locale Locale, products []models.Product, categoryNames map[string]string) (*excelize.File, error) {
	columns := TemplateColumns(bt, locale)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	for i, column := range columns {
		headerCell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, headerCell, column)
		f.SetCellStyle(sheetName, headerCell, headerCell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	fields := TemplateFields(businesstype.FeaturesFor(bt))
	for rowIdx, product := range products {
		values := exportValues(product, locale, categoryNames)
		for colIdx, key := range fields {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if value, ok := values[key]; ok && value != "" {
				f.SetCellValue(sheetName, cellName, value)
			}
		}
	}

	return f, nil
}

// exportValues flattens one product into logical-field → cell values,
// encoding structured fields with the cell grammars.
func exportValues(product models.Product, locale Locale, categoryNames map[string]string) map[string]string {
	values := map[string]string{
		FieldName:        product.Name,
		FieldPrice:       formatFloat(product.Price),
		FieldDescription: deref(product.Description),
		FieldSKU:         deref(product.SKU),
		FieldBarcode:     deref(product.Barcode),
		FieldBrand:       deref(product.Brand),
		FieldModel:       deref(product.Model),
		FieldTags:        strings.Join(product.Tags, ", "),
		FieldActive:      formatBool(product.Active, locale),
		FieldFeatured:    formatBool(product.Featured, locale),
	}

	if product.CategoryID != nil {
		values[FieldCategory] = categoryNames[product.CategoryID.String()]
	}
	if product.Stock != nil {
		values[FieldStock] = formatInt(*product.Stock)
	}
	if product.Cost != nil {
		values[FieldCost] = formatFloat(*product.Cost)
	}
	if product.ComparePrice != nil {
		values[FieldComparePrice] = formatFloat(*product.ComparePrice)
	}
	if product.Weight != nil {
		values[FieldWeight] = formatFloat(*product.Weight)
	}
	if product.PrepTimeMin != nil {
		values[FieldPrepTimeMin] = formatInt(*product.PrepTimeMin)
	}
	if product.PrepTimeMax != nil {
		values[FieldPrepTimeMax] = formatInt(*product.PrepTimeMax)
	}
	if product.DurationValue != nil {
		values[FieldDurationValue] = formatInt(*product.DurationValue)
	}
	if product.DurationUnit != nil {
		values[FieldDurationUnit] = string(*product.DurationUnit)
	}
	if product.WarrantyMonths != nil {
		values[FieldWarrantyMonths] = formatInt(*product.WarrantyMonths)
	}
	if product.PetType != nil {
		values[FieldPetType] = string(*product.PetType)
	}
	if product.PetAge != nil {
		values[FieldPetAge] = string(*product.PetAge)
	}
	if product.Customizable != nil {
		values[FieldCustomizable] = formatBool(*product.Customizable, locale)
	}
	if product.CustomizationInstructions != nil {
		values[FieldCustomizationInstructions] = *product.CustomizationInstructions
	}
	if product.AvailableQuantity != nil {
		values[FieldAvailableQuantity] = formatInt(*product.AvailableQuantity)
	}

	if product.Variations != nil {
		variations := *product.Variations
		if len(variations) > 0 {
			values[FieldVariation1Name] = variations[0].Name
			values[FieldVariation1Options] = EncodeVariationOptions(variations[0])
		}
		if len(variations) > 1 {
			values[FieldVariation2Name] = variations[1].Name
			values[FieldVariation2Options] = EncodeVariationOptions(variations[1])
		}
	}
	if product.ModifierGroups != nil {
		values[FieldModifiers] = EncodeModifierGroups(*product.ModifierGroups)
	}
	if product.Specs != nil {
		values[FieldSpecs] = EncodeSpecs(*product.Specs)
	}

	return values
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatBool(b bool, locale Locale) string {
	if b {
		return pick(locale, "si", "yes")
	}
	return "no"
}
