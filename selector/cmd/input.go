package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.ntppool.org/stratify/selector"
)

// fillFromCSV adds every "category,element" row of r to sl. Lines starting
// with # are skipped.
func fillFromCSV(sl *selector.Selector[string, string], r io.Reader) error {
	rd := csv.NewReader(r)
	rd.Comment = '#'
	rd.FieldsPerRecord = 2
	rd.TrimLeadingSpace = true

	var readErr error
	err := sl.Fill(func(total int) (string, string, bool) {
		record, err := rd.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			return "", "", false
		}
		return strings.TrimSpace(record[0]), record[1], true
	})
	if err != nil {
		line, _ := rd.FieldPos(0)
		return fmt.Errorf("line %d: %w", line, err)
	}

	return readErr
}
