package sampler

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats records how much work a draw took
type Stats struct {
	Strategy   Strategy
	SpaceSize  uint64
	Requested  int
	Draws      uint64
	Collisions uint64
	StartTime  time.Time
	Elapsed    time.Duration
}

func newStats(strategy Strategy, space uint64, requested int) *Stats {
	return &Stats{
		Strategy:  strategy,
		SpaceSize: space,
		Requested: requested,
		StartTime: time.Now(),
	}
}

// CollisionRate returns the share of random draws that hit an already chosen value
func (s *Stats) CollisionRate() float64 {
	if s.Draws == 0 {
		return 0
	}
	return float64(s.Collisions) / float64(s.Draws)
}

// Print renders the stats as a table
func (s *Stats) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)

	tableData := pterm.TableData{
		{"Metric", "Value"},
		{"Strategy", string(s.Strategy)},
		{"Search Space", p.Sprintf("%d", s.SpaceSize)},
		{"Requested", p.Sprintf("%d", s.Requested)},
		{"Random Draws", p.Sprintf("%d", s.Draws)},
		{"Collisions", p.Sprintf("%d", s.Collisions)},
		{"Collision Rate", fmt.Sprintf("%.4f%%", s.CollisionRate()*100)},
		{"Elapsed", s.Elapsed.Round(time.Microsecond).String()},
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%s\n", pterm.DefaultSection.Sprintln("Draw Statistics"), table)
	return err
}

// Summary returns a one-line version of Print
func (s *Stats) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Strategy: %s | Numbers: %d | Draws: %d | Collisions: %d | Time: %s",
		s.Strategy, s.Requested, s.Draws, s.Collisions, s.Elapsed.Round(time.Microsecond))
}
