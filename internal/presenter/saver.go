package presenter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Result is one estimator's distance next to the exact reference.
type Result struct {
	Method   string
	Distance float64
	Error    float64
}

// PrintResults writes the reference and every result as an aligned table.
func PrintResults(w io.Writer, reference float64, results []Result) {
	fmt.Fprintf(w, "%-12s %.3f\n", "theoretical", reference)
	for _, r := range results {
		fmt.Fprintf(w, "%-12s %.3f   Error: %.6f\n", r.Method, r.Distance, r.Error)
	}
}

// SaveResultsCSV writes a header row followed by the reference and one row
// per result.
func SaveResultsCSV(filename string, reference float64, results []Result) error {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteResultsCSV(file, reference, results); err != nil {
		return err
	}
	return file.Close()
}

func WriteResultsCSV(w io.Writer, reference float64, results []Result) error {
	writer := csv.NewWriter(w)

	records := [][]string{
		{"method", "distance", "error"},
		{"theoretical", formatFloat(reference), "0"},
	}
	for _, r := range results {
		records = append(records, []string{r.Method, formatFloat(r.Distance), formatFloat(r.Error)})
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
