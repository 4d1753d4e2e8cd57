/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: CSV table loader for the Akaylee Miner. Reads objects from a CSV
file with a header row matching the declared attributes, parses cells by
attribute kind, and rejects missing values. Pairs with the YAML attribute
metadata loader.
*/

package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// LoadDataset reads attribute metadata and CSV data in one call
func LoadDataset(dataPath, attributesPath string) (*data.InformationTable, error) {
	attributes, err := LoadAttributes(attributesPath)
	if err != nil {
		return nil, err
	}
	return LoadTable(dataPath, attributes)
}

// LoadTable reads a CSV file into an information table using the declared
// attributes
func LoadTable(path string, attributes []*data.Attribute) (*data.InformationTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()
	return ReadTable(file, attributes)
}

// ReadTable parses CSV content from a reader. The header row must name every
// attribute in declaration order.
func ReadTable(reader io.Reader, attributes []*data.Attribute) (*data.InformationTable, error) {
	if len(attributes) == 0 {
		return nil, fmt.Errorf("table loading requires attributes")
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data file is empty")
	}

	header := records[0]
	if len(header) != len(attributes) {
		return nil, fmt.Errorf("header has %d columns, expected %d", len(header), len(attributes))
	}
	for i, name := range header {
		if strings.TrimSpace(name) != attributes[i].Name {
			return nil, fmt.Errorf("header column %d is %q, expected %q",
				i+1, strings.TrimSpace(name), attributes[i].Name)
		}
	}

	rows := make([][]data.FieldValue, 0, len(records)-1)
	for rowNumber, record := range records[1:] {
		if len(record) != len(attributes) {
			return nil, fmt.Errorf("row %d has %d columns, expected %d",
				rowNumber+2, len(record), len(attributes))
		}
		row := make([]data.FieldValue, len(attributes))
		for i, cell := range record {
			value, err := parseField(strings.TrimSpace(cell), attributes[i])
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", rowNumber+2, attributes[i].Name, err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}

	table, err := data.NewInformationTable(attributes, rows)
	if err != nil {
		return nil, fmt.Errorf("building information table: %w", err)
	}
	return table, nil
}

// parseField converts one CSV cell by the attribute's kind. Empty cells are
// rejected; the induction pipeline assumes complete data.
func parseField(cell string, attribute *data.Attribute) (data.FieldValue, error) {
	if cell == "" {
		return nil, fmt.Errorf("missing value")
	}
	switch attribute.Kind {
	case data.KindInteger:
		parsed, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", cell)
		}
		return data.NewIntegerField(parsed), nil
	case data.KindReal:
		parsed, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real %q", cell)
		}
		return data.NewRealField(parsed), nil
	case data.KindEnumeration:
		value, err := data.NewEnumerationField(attribute.Domain, cell)
		if err != nil {
			return nil, fmt.Errorf("invalid enumeration element %q: %w", cell, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unsupported attribute kind %s", attribute.Kind)
	}
}
