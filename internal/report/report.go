// Package report renders simulation summaries as styled terminal text or
// JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lox/dealsim/internal/stats"
)

// Metadata contains run execution metadata.
type Metadata struct {
	StartTime        time.Time `json:"start_time"`
	DurationSeconds  float64   `json:"duration_seconds"`
	GamesPerStrategy int       `json:"games_per_strategy"`
	Seed             int64     `json:"seed"`
	GamesPerSecond   float64   `json:"games_per_second"`
}

// Report is the full output of one simulation run. Strategies appear in the
// order they were simulated.
type Report struct {
	Metadata   Metadata          `json:"metadata"`
	Strategies []stats.Aggregate `json:"strategies"`
}

// Reporter writes reports to a destination writer.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a reporter, defaulting to stdout when writer is nil.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// WriteJSON emits the report as indented JSON.
func (r *Reporter) WriteJSON(rep *Report) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText emits the styled human-readable report.
func (r *Reporter) WriteText(rep *Report) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deal or No Deal strategy simulation"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d games per strategy, seed %d, %.1fs (%.0f games/sec)",
		rep.Metadata.GamesPerStrategy, rep.Metadata.Seed,
		rep.Metadata.DurationSeconds, rep.Metadata.GamesPerSecond)))
	b.WriteString("\n")

	for _, agg := range rep.Strategies {
		b.WriteString("\n")
		b.WriteString(strategyStyle.Render(fmt.Sprintf("=== %s ===", agg.Strategy)))
		b.WriteString("\n")

		writeStat(&b, "Mean winnings", money(agg.Mean))
		writeStat(&b, "Median winnings", money(agg.Median))
		writeStat(&b, "Std dev", money(agg.StdDev))
		writeStat(&b, "Min / Max", fmt.Sprintf("%s / %s", money(agg.Min), money(agg.Max)))
		writeStat(&b, "P25 / P75", fmt.Sprintf("%s / %s", money(agg.P25), money(agg.P75)))
		writeStat(&b, "Deal rate", percent(agg.DealRate))
		writeStat(&b, "Swap rate", percent(agg.SwapRate))
		writeStat(&b, "Better than box", percent(agg.BetterThanBoxRate))
		writeStat(&b, "Avg rounds played", fmt.Sprintf("%.2f (median %.1f)", agg.AvgRoundsPlayed, agg.MedianRoundsPlayed))
		if agg.AvgAcceptedFraction > 0 {
			writeStat(&b, "Avg accepted offer", percent(agg.AvgAcceptedFraction)+" of EV")
		}

		b.WriteString(sectionStyle.Render("  Win distribution"))
		b.WriteString("\n")
		for _, bc := range agg.Histogram {
			share := float64(bc.Count) / float64(agg.Games)
			b.WriteString(fmt.Sprintf("    %-20s %8d  %s\n",
				labelStyle.Render(bc.Label), bc.Count, labelStyle.Render("("+percent(share)+")")))
		}

		b.WriteString(sectionStyle.Render("  Round statistics"))
		b.WriteString("\n")
		for _, ra := range agg.Rounds {
			b.WriteString(fmt.Sprintf("    round %d: %s offer %s of EV %s, %d games\n",
				ra.Round,
				valueStyle.Render(money(ra.AvgOffer)),
				percent(ra.AvgOfferFraction),
				money(ra.AvgExpectedValue),
				ra.Games))
		}
	}

	_, err := io.WriteString(r.writer, b.String())
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// SaveFile writes a rendered report to path. The bytes land in a temporary
// file in the same directory and are renamed into place, so a crash mid-write
// never leaves a truncated report behind.
func SaveFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	// Rename within one directory, so the swap is atomic.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename report into place: %w", err)
	}
	return nil
}

func writeStat(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-20s", label+":")),
		valueStyle.Render(value)))
}

// money formats pounds with thousands separators, e.g. £1,234.56.
func money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}
	out := "£" + grouped.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
