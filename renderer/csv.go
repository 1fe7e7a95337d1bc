package renderer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/etnz/sip"
)

// WriteSeriesCSV writes a series as CSV, values rounded to the cent.
func WriteSeriesCSV(w io.Writer, s sip.ProjectionSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{s.Granularity.Name(), "invested", "value", "gain"}); err != nil {
		return err
	}
	for _, p := range s.Points {
		row := []string{
			strconv.Itoa(p.Period),
			p.CumulativeContribution.String(),
			p.ProjectedValue.StringFixed(2),
			p.ProjectedValue.Sub(p.CumulativeContribution).StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
