package format

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/qkdcore/ldpc4qkd/rateadapt"
)

// ReadScheduleCSV loads a rate-adaption schedule from "a,b\n" pairs (one
// pair per line), flattening them into schedule order. m is the mother
// row count the schedule is validated against.
func ReadScheduleCSV(path string, m int) (*rateadapt.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, parseErrorf(path, "open: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, parseErrorf(path, "csv: %v", err)
	}

	rows := make([]int, 0, 2*len(records))
	for i, rec := range records {
		a, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, parseErrorf(path, "line %d: bad row index %q", i+1, rec[0])
		}
		b, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, parseErrorf(path, "line %d: bad row index %q", i+1, rec[1])
		}
		rows = append(rows, a, b)
	}

	sched, err := rateadapt.NewSchedule(rows, m)
	if err != nil {
		return nil, parseErrorf(path, "invalid schedule: %v", err)
	}
	return sched, nil
}
