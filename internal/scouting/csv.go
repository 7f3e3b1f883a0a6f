package scouting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// csvHeader fixes the export column order.
const csvHeader = "Team,Match,Color," +
	"Auto L1,Auto L2,Auto L3,Auto L4,Auto Net,Auto Processor," +
	"Teleop L1,Teleop L2,Teleop L3,Teleop L4,Teleop Net,Teleop Processor," +
	"Moved from Start,Defense,Action,Notes,Timestamp"

// ExportCSV renders the records as the app's CSV table: the fixed
// header, then one row per record in ledger order. Only the notes field
// is quoted (with internal quotes doubled); every other field is
// emitted literally, matching the format consumers of these files
// already parse. Commas inside team names or actions would therefore
// shift columns — a known limitation of the format, kept as is.
func ExportCSV(records []Record) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, rec := range records {
		fields := []string{
			rec.Team,
			rec.Match,
			rec.Color,
		}
		for _, slot := range CounterSlots {
			fields = append(fields, strconv.Itoa(rec.Counters[slot]))
		}
		fields = append(fields,
			strconv.FormatBool(rec.MovedFromStart),
			strconv.FormatBool(rec.Defense),
			rec.Action,
			`"`+strings.ReplaceAll(rec.Notes, `"`, `""`)+`"`,
			rec.Timestamp,
		)

		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	return b.String()
}

// ExportFilename names the download after the calendar date of the
// export.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("scouting_data_%s.csv", now.Format("2006-01-02"))
}
