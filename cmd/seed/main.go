package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ikkim/winecraft-backend/internal/app/model"
	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/xuri/excelize/v2"
)

// Column order of the wine sheet. The first row is a header.
const (
	colID = iota
	colName
	colDescription
	colPrice
	colAlcohol
	colRating
	colImage
	colBadge
	colIngredients
	wineColumns
)

func main() {
	out := flag.String("out", "wines.json", "output JSON path (CATALOG_WINES_FILE)")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("Usage: go run cmd/seed/main.go [-out wines.json] <xlsx_file_path>")
	}
	filePath := flag.Arg(0)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	wines, skipped, err := readWinesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Valid wines: %d\n", len(wines))
	fmt.Printf("  Skipped rows: %d\n", skipped)

	if err := writeWinesFile(*out, wines); err != nil {
		log.Fatal("Failed to write wines file:", err)
	}

	fmt.Printf("Wrote %s\n", *out)
}

// readWinesFromXLSX parses the first sheet. Rows with a bad id, no name or
// an unparsable price are skipped and counted.
func readWinesFromXLSX(filePath string) ([]model.ReadyMadeWine, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var (
		wines   []model.ReadyMadeWine
		seen    = make(map[int]bool)
		skipped int
	)
	for _, row := range rows[1:] {
		// trailing empty cells are dropped by GetRows
		for len(row) < wineColumns {
			row = append(row, "")
		}

		id, errID := strconv.Atoi(strings.TrimSpace(row[colID]))
		price, errPrice := strconv.Atoi(strings.TrimSpace(row[colPrice]))
		name := strings.TrimSpace(row[colName])
		if errID != nil || errPrice != nil || id <= 0 || price < 0 || name == "" || seen[id] {
			skipped++
			continue
		}
		seen[id] = true

		rating, _ := strconv.ParseFloat(strings.TrimSpace(row[colRating]), 64)
		wines = append(wines, model.ReadyMadeWine{
			ID:          id,
			Name:        name,
			Description: strings.TrimSpace(row[colDescription]),
			Price:       price,
			Alcohol:     strings.TrimSpace(row[colAlcohol]),
			Rating:      rating,
			Image:       strings.TrimSpace(row[colImage]),
			Badge:       strings.TrimSpace(row[colBadge]),
			Ingredients: splitList(row[colIngredients]),
		})
	}
	return wines, skipped, nil
}

// writeWinesFile writes the JSON and reads it back through the server's
// loader so a bad file never reaches deployment.
func writeWinesFile(path string, wines []model.ReadyMadeWine) error {
	data, err := json.MarshalIndent(wines, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	_, err = repository.LoadWinesFile(path)
	return err
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
