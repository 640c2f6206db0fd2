package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestTranspileRegexCommand(t *testing.T) {
	output := captureStdout(t, func() {
		if err := transpileRegex(regexCmd, []string{`(a)(b)\2\1`}); err != nil {
			t.Fatalf("transpileRegex failed: %v", err)
		}
	})

	if !strings.Contains(output, "groups:   2") {
		t.Errorf("expected group count 2 in output, got: %s", output)
	}
}

func TestParseXMLCommand(t *testing.T) {
	oldNS := xmlDefaultNS
	defer func() { xmlDefaultNS = oldNS }()
	xmlDefaultNS = ""

	output := captureStdout(t, func() {
		if err := parseXML(xmlCmd, []string{`<a x="1"><b>hi</b></a>`}); err != nil {
			t.Fatalf("parseXML failed: %v", err)
		}
	})

	if !strings.Contains(output, "<a>") || !strings.Contains(output, `x="1"`) {
		t.Errorf("expected element dump, got: %s", output)
	}
	if !strings.Contains(output, "#text \"hi\"") {
		t.Errorf("expected text node dump, got: %s", output)
	}
}

func TestParseDateCommand(t *testing.T) {
	output := captureStdout(t, func() {
		if err := parseDate(dateCmd, []string{"2024-03-15"}); err != nil {
			t.Fatalf("parseDate failed: %v", err)
		}
	})

	if strings.TrimSpace(output) == "" || strings.TrimSpace(output) == "0" {
		t.Errorf("expected a non-zero timestamp, got: %q", output)
	}
}

func TestFormatNumberCommandDefault(t *testing.T) {
	output := captureStdout(t, func() {
		if err := formatNumber(numberCmd, []string{"1.5"}); err != nil {
			t.Fatalf("formatNumber failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != "1.5" {
		t.Errorf("expected 1.5, got: %q", output)
	}
}

func TestFormatNumberCommandRadix(t *testing.T) {
	oldRadix := numberRadix
	defer func() { numberRadix = oldRadix }()
	numberRadix = 16

	output := captureStdout(t, func() {
		if err := formatNumber(numberCmd, []string{"255"}); err != nil {
			t.Fatalf("formatNumber failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != "ff" {
		t.Errorf("expected ff, got: %q", output)
	}
}

func TestRoundTripJSONCommand(t *testing.T) {
	output := captureStdout(t, func() {
		if err := roundTripJSON(jsonCmd, []string{`{"a":1,"b":[2,3]}`}); err != nil {
			t.Fatalf("roundTripJSON failed: %v", err)
		}
	})

	if strings.TrimSpace(output) != `{"a":1,"b":[2,3]}` {
		t.Errorf("unexpected round-trip output: %q", output)
	}
}

func TestLoadProfileAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/profile.yaml"
	if err := os.WriteFile(path, []byte("regex:\n  multiline: true\n  dotAll: true\n"), 0o644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile failed: %v", err)
	}
	if !p.Regex.Multiline || !p.Regex.DotAll {
		t.Fatalf("expected multiline and dotAll true, got %+v", p.Regex)
	}
}
