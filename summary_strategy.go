package main

import (
	"fmt"
	"io"
)

// SummaryStrategy prints the same header as the trace but only the first and last snapshot.
type SummaryStrategy struct{}

func (t SummaryStrategy) Present(w io.Writer, demo *SortingDemo) error {
	if _, err := io.WriteString(w, traceHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := demo.Display(w); err != nil {
		return err
	}

	steps := 0
	for range demo.Steps() {
		steps++
	}
	if steps == 0 {
		return nil
	}
	return demo.Display(w)
}
