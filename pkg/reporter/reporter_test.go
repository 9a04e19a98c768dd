package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lottogen/pkg/sampler"
)

func testDraw(t *testing.T) *sampler.Draw {
	t.Helper()
	d, err := sampler.New(sampler.WithSeed(11)).Draw(3, 12)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	return d
}

func fixedReporter(format Format) *Reporter {
	r := NewReporter(format)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return r
}

func TestGenerateReportPermissions(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatMarkdown} {
		t.Run(string(format), func(t *testing.T) {
			reportPath := filepath.Join(t.TempDir(), "report."+string(format))

			if _, err := fixedReporter(format).GenerateReport(reportPath, testDraw(t)); err != nil {
				t.Fatalf("GenerateReport failed: %v", err)
			}

			info, err := os.Stat(reportPath)
			if err != nil {
				t.Fatalf("Failed to stat report file: %v", err)
			}
			if mode := info.Mode().Perm(); mode != 0600 {
				t.Errorf("Expected file permissions 0600 (rw-------), got %04o", mode)
			}
		})
	}
}

func TestGenerateReportJSON(t *testing.T) {
	d := testDraw(t)
	reportPath := filepath.Join(t.TempDir(), "report.json")

	written, err := fixedReporter(FormatJSON).GenerateReport(reportPath, d)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got Report
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if got.ID != written.ID {
		t.Errorf("ID = %s, want %s", got.ID, written.ID)
	}
	if got.Digits != 3 || got.Count != 12 || got.Strategy != "dense" {
		t.Errorf("report header = %d digits, %d count, %s strategy", got.Digits, got.Count, got.Strategy)
	}
	if strings.Join(got.Numbers, ",") != strings.Join(d.Numbers, ",") {
		t.Errorf("numbers = %v, want %v", got.Numbers, d.Numbers)
	}
	if !got.GeneratedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("GeneratedAt = %v", got.GeneratedAt)
	}
}

func TestRenderMarkdown(t *testing.T) {
	d := testDraw(t)
	r := fixedReporter(FormatMarkdown)

	data, err := r.Render(r.Build(d))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := string(data)

	for _, want := range []string{"# Lottery Draw", "**Digits:** 3", "**Strategy:** dense", "2026-01-02T03:04:05Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	firstRow := strings.Join(d.Numbers[:10], " ") + "\n"
	if !strings.Contains(out, firstRow) {
		t.Errorf("markdown missing first row %q", firstRow)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr string
	}{
		{"JSON", "json", FormatJSON, ""},
		{"JSON upper", " JSON ", FormatJSON, ""},
		{"Markdown", "markdown", FormatMarkdown, ""},
		{"Markdown short", "md", FormatMarkdown, ""},
		{"Typo", "jsn", "", `did you mean "json"`},
		{"Prefix", "mark", "", `did you mean "markdown"`},
		{"Unknown", "xml", "", "supported: json, markdown"},
		{"Empty", "", "", "supported: json, markdown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr == "" {
				if err != nil || got != tt.want {
					t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseFormat(%q) error = %v, want containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	if f, ok := FormatForPath("draw.MD"); !ok || f != FormatMarkdown {
		t.Errorf("FormatForPath(draw.MD) = %q, %v", f, ok)
	}
	if f, ok := FormatForPath("out/draw.json"); !ok || f != FormatJSON {
		t.Errorf("FormatForPath(draw.json) = %q, %v", f, ok)
	}
	if _, ok := FormatForPath("draw.txt"); ok {
		t.Errorf("FormatForPath(draw.txt) should not guess a format")
	}
}
