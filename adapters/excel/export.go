// Package excel writes generation results and their estimates to .xlsx
// workbooks for offline comparison.
package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"distlab/domain/dist"
)

// WriteResult exports a generation result and its estimate to path: an
// Estimate sheet of paired sample/theoretical moments and a Frequencies
// sheet of the variation series.
func WriteResult(path string, result *dist.GenerationResult, est dist.Estimate) error {
	f := excelize.NewFile()

	sheet := "Estimate"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"distribution", est.Label},
		{"sample size", est.SampleSize},
		{"sample mean", est.SampleMean},
		{"theoretical mean", est.TheoreticalMean},
		{"sample variance", est.SampleVariance},
		{"corrected sample variance", est.CorrectedSampleVariance},
		{"theoretical variance", est.TheoreticalVariance},
		{"sample sigma", est.SampleSigma},
		{"theoretical sigma", est.TheoreticalSigma},
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	if err := writeFrequencies(f, result); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func writeFrequencies(f *excelize.File, result *dist.GenerationResult) error {
	sheet := "Frequencies"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"bucket", "start", "end", "frequency", "relative"}}
	if result.Intervals != nil && len(result.Intervals.Intervals) > 0 {
		for _, iv := range result.Intervals.Intervals {
			rows = append(rows, []interface{}{
				iv.Index, iv.Start, iv.End, iv.Frequency, iv.RelativeFrequency(result.SampleSize),
			})
		}
	} else {
		// Binomial: integer outcomes are their own buckets
		outcomes := make([]int, 0, len(result.Frequencies))
		for m := range result.Frequencies {
			outcomes = append(outcomes, m)
		}
		sort.Ints(outcomes)
		for _, m := range outcomes {
			iv := dist.Interval{Index: m, Start: float64(m), End: float64(m), Frequency: result.Frequencies[m]}
			rows = append(rows, []interface{}{
				m, iv.Start, iv.End, iv.Frequency, iv.RelativeFrequency(result.SampleSize),
			})
		}
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("bad cell coordinate (%d,%d): %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
