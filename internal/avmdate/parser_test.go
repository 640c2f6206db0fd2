package avmdate

import "testing"

func mustParse(t *testing.T, s string) uint64 {
	t.Helper()
	ok, ts, err := TryParse(s)
	if err != nil {
		t.Fatalf("TryParse(%q): %v", s, err)
	}
	if !ok {
		t.Fatalf("TryParse(%q): expected ok", s)
	}
	return ts
}

func TestEmptyStringDoesNotParse(t *testing.T) {
	ok, ts, err := TryParse("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || ts != 0 {
		t.Fatalf("expected ok=false, ts=0, got %v %v", ok, ts)
	}
}

func TestISO8601DateTime(t *testing.T) {
	ts1 := mustParse(t, "2024-03-15T10:30:00Z")
	ts2 := mustParse(t, "2024-03-15 10:30:00 UTC")
	if ts1 != ts2 {
		t.Fatalf("expected T/Z and space/UTC forms to agree: %d vs %d", ts1, ts2)
	}
}

func TestMonthNameDateOrdering(t *testing.T) {
	ts1 := mustParse(t, "March 15 2024")
	ts2 := mustParse(t, "2024-03-15")
	if ts1 != ts2 {
		t.Fatalf("expected month-name and numeric date to agree: %d vs %d", ts1, ts2)
	}
}

func TestTwoDigitYearOffsetBy1900(t *testing.T) {
	ts1 := mustParse(t, "3-15-24")
	ts2 := mustParse(t, "1924-03-15")
	if ts1 != ts2 {
		t.Fatalf("expected two-digit year to offset by 1900: %d vs %d", ts1, ts2)
	}
}

func TestBareNumberFillsYearWhenEmpty(t *testing.T) {
	ok, _, err := TryParse("2024")
	if err != nil || !ok {
		t.Fatalf("expected bare 4-digit number to parse as a year, got ok=%v err=%v", ok, err)
	}
}

func TestPackedTimeAfterYear(t *testing.T) {
	ts1 := mustParse(t, "2024 1430")
	ts2 := mustParse(t, "2024-01-01 14:30")
	if ts1 != ts2 {
		t.Fatalf("expected packed HHMM to match explicit HH:MM: %d vs %d", ts1, ts2)
	}
}

func TestPackedTimeWithSecondsAfterYear(t *testing.T) {
	ts1 := mustParse(t, "2024 143045")
	ts2 := mustParse(t, "2024-01-01 14:30:45")
	if ts1 != ts2 {
		t.Fatalf("expected packed HHMMSS to match explicit HH:MM:SS: %d vs %d", ts1, ts2)
	}
}

func TestAMPMShiftsHour(t *testing.T) {
	ts1 := mustParse(t, "2024-03-15 2:30 PM")
	ts2 := mustParse(t, "2024-03-15 14:30")
	if ts1 != ts2 {
		t.Fatalf("expected PM to shift a 12-hour value: %d vs %d", ts1, ts2)
	}
}

func TestAMPMNoonRollover(t *testing.T) {
	ts1 := mustParse(t, "2024-03-15 12:00 AM")
	ts2 := mustParse(t, "2024-03-15 00:00")
	if ts1 != ts2 {
		t.Fatalf("expected 12 AM to roll over to hour 0: %d vs %d", ts1, ts2)
	}
}

func TestAMPMWithoutHourRaises(t *testing.T) {
	_, _, err := TryParse("PM")
	if err == nil {
		t.Fatal("expected an error for AM/PM with no hour")
	}
}

func TestDuplicateMonthRaises(t *testing.T) {
	_, _, err := TryParse("March April 2024")
	if err == nil {
		t.Fatal("expected an error for a duplicate month")
	}
}

func TestTimezoneOffsetAppliesToUTC(t *testing.T) {
	ts1 := mustParse(t, "2024-03-15T10:00:00+05:00")
	ts2 := mustParse(t, "2024-03-15T05:00:00Z")
	if ts1 != ts2 {
		t.Fatalf("expected +05:00 offset to shift to UTC equivalently: %d vs %d", ts1, ts2)
	}
}

func TestNegativeTimezoneOffset(t *testing.T) {
	ts1 := mustParse(t, "2024-03-15T05:00:00-0500")
	ts2 := mustParse(t, "2024-03-15T10:00:00Z")
	if ts1 != ts2 {
		t.Fatalf("expected -0500 offset to shift to UTC equivalently: %d vs %d", ts1, ts2)
	}
}

func TestWeekdayWordDoesNotBlockParsing(t *testing.T) {
	ts1 := mustParse(t, "Friday March 15 2024")
	ts2 := mustParse(t, "March 15 2024")
	if ts1 != ts2 {
		t.Fatalf("expected weekday word to be ignored for assignment: %d vs %d", ts1, ts2)
	}
}

func TestUnrecognizedWordIsIgnored(t *testing.T) {
	ts1 := mustParse(t, "on 2024-03-15")
	ts2 := mustParse(t, "2024-03-15")
	if ts1 != ts2 {
		t.Fatalf("expected unrecognized word to be ignored: %d vs %d", ts1, ts2)
	}
}

func TestFullwidthDigitsFold(t *testing.T) {
	ts1 := mustParse(t, "２０２４-０３-１５")
	ts2 := mustParse(t, "2024-03-15")
	if ts1 != ts2 {
		t.Fatalf("expected fullwidth digits to fold before tokenizing: %d vs %d", ts1, ts2)
	}
}

func TestDayBeforeMonthOrdering(t *testing.T) {
	ts1 := mustParse(t, "Wed, 15 Jun 2022 13:45:30 GMT")
	ts2 := mustParse(t, "2022-06-15T13:45:30Z")
	if ts1 != ts2 {
		t.Fatalf("expected day-before-month ordering to agree with ISO form: %d vs %d", ts1, ts2)
	}
}

func TestTimestampIsNonNegative(t *testing.T) {
	ok, ts, err := TryParse("0001-01-01")
	if err != nil || !ok {
		t.Fatalf("expected year 1 to parse, got ok=%v err=%v", ok, err)
	}
	if ts <= 0 {
		t.Fatalf("expected a positive biased timestamp well above the epoch floor, got %d", ts)
	}
}
