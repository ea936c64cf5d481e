package main

import "io"

// TraceStrategy prints the sequence after every swap.
type TraceStrategy struct{}

func (t TraceStrategy) Present(w io.Writer, demo *SortingDemo) error {
	return demo.Sort(w)
}
