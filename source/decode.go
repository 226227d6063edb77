package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fabioo29/covid-cases-prediction/dataset"
	"github.com/fabioo29/covid-cases-prediction/errs"
)

// columnPayload is the column-oriented shape the API reports: one map per
// column, keyed by row index.
type columnPayload struct {
	Date     map[string]string      `json:"data"`
	District map[string]string      `json:"distrito"`
	County   map[string]string      `json:"concelho"`
	Cases    map[string]json.Number `json:"confirmados_1"`
}

// rowPayload is the record-oriented shape, one object per row.
type rowPayload struct {
	Date     string      `json:"data"`
	District string      `json:"distrito"`
	County   string      `json:"concelho"`
	Cases    json.Number `json:"confirmados_1"`
}

// decodeRecords converts an API payload into raw records. Both payload
// orientations are accepted; the API has reported each at different points
// in its life.
func decodeRecords(body []byte) ([]dataset.RawRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty payload", errs.ErrSourceUnavailable)
	}

	var rows []rowPayload
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrSourceUnavailable, err)
		}
	case '{':
		var cols columnPayload
		if err := json.Unmarshal(trimmed, &cols); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrSourceUnavailable, err)
		}
		rows = flattenColumns(cols)
	default:
		return nil, fmt.Errorf("%w: unrecognized payload", errs.ErrSourceUnavailable)
	}

	records := make([]dataset.RawRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// flattenColumns joins the per-column maps on their shared row index. Row
// indexes sort for determinism; missing cells drop the row.
func flattenColumns(cols columnPayload) []rowPayload {
	indexes := make([]string, 0, len(cols.Date))
	for idx := range cols.Date {
		indexes = append(indexes, idx)
	}
	sort.Strings(indexes)

	rows := make([]rowPayload, 0, len(indexes))
	for _, idx := range indexes {
		district, okDistrict := cols.District[idx]
		county, okCounty := cols.County[idx]
		cases, okCases := cols.Cases[idx]
		if !okDistrict || !okCounty || !okCases {
			continue
		}
		rows = append(rows, rowPayload{
			Date:     cols.Date[idx],
			District: district,
			County:   county,
			Cases:    cases,
		})
	}

	return rows
}

func (r rowPayload) toRecord() (dataset.RawRecord, error) {
	date, err := time.Parse(requestDateFormat, r.Date)
	if err != nil {
		return dataset.RawRecord{}, fmt.Errorf("%w: bad date %q", errs.ErrSourceUnavailable, r.Date)
	}

	// Counts sometimes arrive as floats; accept them when integral.
	value, err := r.Cases.Int64()
	if err != nil {
		f, ferr := r.Cases.Float64()
		if ferr != nil || f != float64(int64(f)) {
			return dataset.RawRecord{}, fmt.Errorf("%w: bad case count %q", errs.ErrSourceUnavailable, r.Cases)
		}
		value = int64(f)
	}
	if value < 0 {
		return dataset.RawRecord{}, fmt.Errorf("%w: negative case count %d", errs.ErrSourceUnavailable, value)
	}

	return dataset.RawRecord{
		EntityGroup: r.District,
		Entity:      r.County,
		Date:        date,
		Value:       int(value),
	}, nil
}
