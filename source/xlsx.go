// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gogpu/ggchart"
)

// decodeXLSX reads labels from column A and values from column B. Rows
// with an empty label are skipped.
func decodeXLSX(r io.Reader, sheet string) (*Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("source: read sheet %q: %w", sheet, err)
	}

	doc := &Document{Format: FormatXLSX, Data: &ggchart.DataSet{}}
	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		label := strings.TrimSpace(row[0])
		cell := ""
		if len(row) > 1 {
			cell = strings.TrimSpace(row[1])
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			if i == 0 {
				doc.Title = cell
				continue
			}
			ref, _ := excelize.CoordinatesToCellName(2, i+1)
			return nil, fmt.Errorf("%w: %s!%s: %q", ErrInvalidValue, sheet, ref, cell)
		}
		doc.Data.Set(label, v)
	}
	return doc, nil
}
