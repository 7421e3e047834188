package presenter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/rbazin/nlp-disaster-tweets/pkg/confusion"
)

// SaveDenseToCSV writes a matrix to a CSV file, one row per line.
func SaveDenseToCSV(m mat.Matrix, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		record := make([]string, cols)
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'f', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// SaveReportCSV writes the summary statistics as metric,value rows.
func SaveReportCSV(s confusion.Summary, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	records := [][]string{
		{"metric", "value"},
		{"accuracy", fmt.Sprintf("%0.3f", s.Accuracy)},
	}
	if s.Binary {
		records = append(records,
			[]string{"precision", fmt.Sprintf("%0.3f", s.Precision)},
			[]string{"recall", fmt.Sprintf("%0.3f", s.Recall)},
			[]string{"f1", fmt.Sprintf("%0.3f", s.F1)},
		)
	}
	return writer.WriteAll(records)
}
