package main

import (
	"fmt"
	"io"
)

const (
	ModeTrace   = "trace"
	ModeSummary = "summary"
)

type SortConfig struct {
	Size      int
	Seed      int64
	Min       int
	Max       int
	Mode      string
	Algorithm string
	Stats     bool
	Verbose   bool
}

// DefaultSortConfig matches the classic demo: ten values in [20,90), printed step by step
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Size:      10,
		Min:       MinValue,
		Max:       MaxValue,
		Mode:      ModeTrace,
		Algorithm: string(AlgorithmSelection),
	}
}

func (c SortConfig) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", c.Size)
	}
	if c.Min >= c.Max {
		return fmt.Errorf("min (%d) must be less than max (%d)", c.Min, c.Max)
	}
	// the span must fit in an int for Randomizer.IntRange
	if c.Max-c.Min <= 0 {
		return fmt.Errorf("range [%d, %d) is too wide", c.Min, c.Max)
	}
	if _, err := strategyFor(c.Mode); err != nil {
		return err
	}
	if _, err := ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	return nil
}

// PresentationStrategy decides how a sort run is rendered
type PresentationStrategy interface {
	Present(w io.Writer, demo *SortingDemo) error
}

func strategyFor(mode string) (PresentationStrategy, error) {
	switch mode {
	case ModeTrace, "":
		return TraceStrategy{}, nil
	case ModeSummary:
		return SummaryStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q: want %q or %q", mode, ModeTrace, ModeSummary)
	}
}
