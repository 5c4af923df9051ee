package page

import (
	"context"
	"fmt"
	"strings"
)

// Mode is a page mode. Exactly one is active per run.
type Mode string

const (
	ModeReview   Mode = "review"
	ModeBugs     Mode = "bugs"
	ModeInsights Mode = "insights"
	ModeReports  Mode = "reports"
)

// Modes lists every page mode.
var Modes = []Mode{ModeReview, ModeBugs, ModeInsights, ModeReports}

func modeList() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// ParseMode parses a declared page mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	if s == "" {
		return "", fmt.Errorf("no page mode declared (want one of: %s)", modeList())
	}
	return "", fmt.Errorf("unknown page mode %q (want one of: %s)", s, modeList())
}

// DetectMode picks the declared mode: an explicit argument wins over the
// configured page.
func DetectMode(arg, configured string) (Mode, error) {
	if strings.TrimSpace(arg) != "" {
		return ParseMode(arg)
	}
	return ParseMode(configured)
}

// Pages holds one activation function per mode. Each constructs and runs
// its controller; only the selected one is ever called.
type Pages struct {
	Review   func(ctx context.Context) error
	Bugs     func(ctx context.Context) error
	Insights func(ctx context.Context) error
	Reports  func(ctx context.Context) error
}

func (p Pages) lookup(m Mode) func(ctx context.Context) error {
	switch m {
	case ModeReview:
		return p.Review
	case ModeBugs:
		return p.Bugs
	case ModeInsights:
		return p.Insights
	case ModeReports:
		return p.Reports
	}
	return nil
}

// Bootstrap activates the page for mode.
func Bootstrap(ctx context.Context, mode Mode, p Pages) error {
	activate := p.lookup(mode)
	if activate == nil {
		return fmt.Errorf("page %q is not available", mode)
	}
	return activate(ctx)
}
