package scouting

import (
	"strings"
	"testing"
	"time"
)

func csvRecord(team, match, notes string) Record {
	counters := NewCounters()
	counters[SlotAutoL1] = 2
	counters[SlotTeleopProcessor] = 5
	return Record{
		ID:        "test-id",
		Team:      team,
		Match:     match,
		Color:     ColorRed,
		Counters:  counters,
		Defense:   true,
		Action:    "Parked",
		Notes:     notes,
		Timestamp: "2026-03-14T09:26:53Z",
	}
}

func TestExportCSVLineAndFieldCounts(t *testing.T) {
	records := []Record{
		csvRecord("254", "1", "fast cycles"),
		csvRecord("1678", "2", ""),
		csvRecord("971", "3", "tipped over, recovered"),
	}

	out := ExportCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(records)+1 {
		t.Fatalf("expected %d lines, got %d", len(records)+1, len(lines))
	}

	headerFields := strings.Split(lines[0], ",")
	for i, line := range lines[1:] {
		// The notes in these fixtures contain at most one comma, inside
		// the quoted field; count fields by the header's count.
		fields := splitCSVRow(line)
		if len(fields) != len(headerFields) {
			t.Errorf("row %d: expected %d fields, got %d (%q)", i, len(headerFields), len(fields), line)
		}
	}
}

// splitCSVRow splits on commas outside double quotes, enough to check
// field counts for the exporter's one-quoted-field format.
func splitCSVRow(line string) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			b.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

func TestExportCSVHeader(t *testing.T) {
	out := ExportCSV(nil)
	want := "Team,Match,Color,Auto L1,Auto L2,Auto L3,Auto L4,Auto Net,Auto Processor," +
		"Teleop L1,Teleop L2,Teleop L3,Teleop L4,Teleop Net,Teleop Processor," +
		"Moved from Start,Defense,Action,Notes,Timestamp\n"
	if out != want {
		t.Errorf("unexpected header:\n got %q\nwant %q", out, want)
	}
}

func TestExportCSVRow(t *testing.T) {
	out := ExportCSV([]Record{csvRecord("254", "7", "solid auto")})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}

	want := `254,7,red,2,0,0,0,0,0,0,0,0,0,0,5,false,true,Parked,"solid auto",2026-03-14T09:26:53Z`
	if lines[1] != want {
		t.Errorf("unexpected row:\n got %q\nwant %q", lines[1], want)
	}
}

func TestExportCSVQuotesOnlyNotes(t *testing.T) {
	rec := csvRecord("254", "7", `said "we got this", then stalled`)
	out := ExportCSV([]Record{rec})

	if !strings.Contains(out, `"said ""we got this"", then stalled"`) {
		t.Errorf("expected notes quoted with doubled quotes, got %q", out)
	}
}

func TestExportCSVPreservesLedgerOrder(t *testing.T) {
	records := []Record{
		csvRecord("111", "1", ""),
		csvRecord("222", "2", ""),
		csvRecord("333", "3", ""),
	}

	out := ExportCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for i, team := range []string{"111", "222", "333"} {
		if !strings.HasPrefix(lines[i+1], team+",") {
			t.Errorf("row %d: expected team %s first, got %q", i, team, lines[i+1])
		}
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := ExportFilename(now); got != "scouting_data_2026-03-14.csv" {
		t.Errorf("unexpected filename: %s", got)
	}
}
