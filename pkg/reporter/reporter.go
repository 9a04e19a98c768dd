package reporter

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lottogen/pkg/layout"
	"lottogen/pkg/sampler"
	"lottogen/pkg/utils"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

var formatNames = []string{string(FormatJSON), string(FormatMarkdown)}

// markdownPerLine keeps the report's number block readable in any viewer.
const markdownPerLine = 10

// ParseFormat resolves a report format name, suggesting the closest match
// for unknown names.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}

	ranks := fuzzy.RankFindFold(n, formatNames)
	if n != "" && len(ranks) > 0 {
		sort.Sort(ranks)
		return "", fmt.Errorf("unknown report format %q (did you mean %q?)", name, ranks[0].Target)
	}
	return "", fmt.Errorf("unknown report format %q (supported: %s)", name, strings.Join(formatNames, ", "))
}

// FormatForPath guesses the format from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	}
	return "", false
}

type Reporter struct {
	Format Format
	now    func() time.Time
}

type Report struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Digits      int       `json:"digits"`
	Count       int       `json:"count"`
	Strategy    string    `json:"strategy"`
	Numbers     []string  `json:"numbers"`
}

func NewReporter(format Format) *Reporter {
	return &Reporter{
		Format: format,
		now:    time.Now,
	}
}

// Build stamps a draw with a fresh ID and timestamp.
func (r *Reporter) Build(d *sampler.Draw) *Report {
	return &Report{
		ID:          uuid.New(),
		GeneratedAt: r.now().UTC(),
		Digits:      d.Digits,
		Count:       len(d.Numbers),
		Strategy:    string(d.Strategy),
		Numbers:     d.Numbers,
	}
}

func (r *Reporter) Render(report *Report) ([]byte, error) {
	switch r.Format {
	case FormatJSON:
		return json.MarshalIndent(report, "", "  ")
	case FormatMarkdown:
		return []byte(renderMarkdown(report)), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", r.Format)
	}
}

// GenerateReport writes the draw to filename and returns the report written.
func (r *Reporter) GenerateReport(filename string, d *sampler.Draw) (*Report, error) {
	report := r.Build(d)

	data, err := r.Render(report)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFile(filename, data); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", filename, err)
	}
	return report, nil
}

func renderMarkdown(report *Report) string {
	var b strings.Builder

	b.WriteString("# Lottery Draw\n\n")
	fmt.Fprintf(&b, "- **ID:** `%s`\n", report.ID)
	fmt.Fprintf(&b, "- **Generated:** %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Digits:** %d\n", report.Digits)
	fmt.Fprintf(&b, "- **Count:** %d\n", report.Count)
	fmt.Fprintf(&b, "- **Strategy:** %s\n\n", report.Strategy)

	b.WriteString("```text\n")
	for _, row := range layout.Rows(report.Numbers, markdownPerLine) {
		b.WriteString(strings.Join(row, " "))
		b.WriteByte('\n')
	}
	b.WriteString("```\n")

	return b.String()
}
