package main

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// MinValue is the inclusive lower bound of generated values
	MinValue = 20
	// MaxValue is the exclusive upper bound of generated values
	MaxValue = 90

	traceHeader = "\nSorted Array Elements :(Step by Step)\n\n"
)

// Step is the state of the sequence after one pass of the sort.
// Smallest is the index swapped into place by selection sort; other algorithms set it to -1.
type Step struct {
	Pass     int
	Smallest int
	Values   []int
}

// SortingDemo holds a sequence of integers and sorts it in place, selection sort by default
type SortingDemo struct {
	data      []int
	algorithm Algorithm
	logger    *zap.Logger
	metrics   *SortMetrics
}

// NewSortingDemo fills a sequence of the given size with values in [MinValue,MaxValue)
func NewSortingDemo(size int, src RandomSource) *SortingDemo {
	return NewSortingDemoWithRange(size, MinValue, MaxValue, src)
}

// NewSortingDemoWithRange fills a sequence of the given size with values in [lo,hi)
func NewSortingDemoWithRange(size, lo, hi int, src RandomSource) *SortingDemo {
	if size < 0 {
		size = 0
	}
	data := make([]int, size)
	for i := range data {
		data[i] = src.IntRange(lo, hi)
	}
	return &SortingDemo{data: data, algorithm: AlgorithmSelection, logger: zap.NewNop()}
}

// NewSortingDemoFromValues copies the given values instead of generating them
func NewSortingDemoFromValues(values []int) *SortingDemo {
	data := make([]int, len(values))
	copy(data, values)
	return &SortingDemo{data: data, algorithm: AlgorithmSelection, logger: zap.NewNop()}
}

func (d *SortingDemo) WithLogger(logger *zap.Logger) *SortingDemo {
	d.logger = logger
	return d
}

func (d *SortingDemo) WithAlgorithm(a Algorithm) *SortingDemo {
	d.algorithm = a
	return d
}

func (d *SortingDemo) WithMetrics(m *SortMetrics) *SortingDemo {
	d.metrics = m
	return d
}

func (d *SortingDemo) Len() int {
	return len(d.data)
}

// Values returns a copy of the current sequence
func (d *SortingDemo) Values() []int {
	values := make([]int, len(d.data))
	copy(values, d.data)
	return values
}

// Steps runs the configured algorithm over the sequence and yields a Step after
// every pass. The sequence is sorted in place.
func (d *SortingDemo) Steps() iter.Seq[Step] {
	run := stepperFor(d.algorithm)
	return func(yield func(Step) bool) {
		if d.metrics != nil {
			defer d.metrics.observeSince(time.Now())
		}
		run(d, yield)
	}
}

// emit logs the current sequence and hands a copy of it to yield
func (d *SortingDemo) emit(yield func(Step) bool, pass, smallest int) bool {
	d.logger.Debug("Step",
		zap.String("algorithm", string(d.algorithm)),
		zap.Int("pass", pass),
		zap.Int("smallest", smallest),
		zap.Ints("values", d.data))
	return yield(Step{Pass: pass, Smallest: smallest, Values: d.Values()})
}

func (d *SortingDemo) less(a, b int) bool {
	if d.metrics != nil {
		d.metrics.markComparison()
	}
	return a < b
}

// set writes a value without a swap, e.g. an insertion shift or a merge copy
func (d *SortingDemo) set(i, v int) {
	d.data[i] = v
	if d.metrics != nil {
		d.metrics.markMove()
	}
}

// Sort prints the header and the initial sequence, then sorts it and prints the
// sequence after every step.
func (d *SortingDemo) Sort(w io.Writer) error {
	if _, err := io.WriteString(w, traceHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := d.Display(w); err != nil {
		return err
	}
	for step := range d.Steps() {
		if err := writeSnapshot(w, step.Values); err != nil {
			return err
		}
	}
	return nil
}

// Swap exchanges the values at the two positions
func (d *SortingDemo) Swap(first, second int) {
	temporary := d.data[first]
	d.data[first] = d.data[second]
	d.data[second] = temporary
	if d.metrics != nil {
		d.metrics.markSwap(first, second)
	}
}

// Display writes every element followed by a space, then a blank line
func (d *SortingDemo) Display(w io.Writer) error {
	return writeSnapshot(w, d.data)
}

func writeSnapshot(w io.Writer, values []int) error {
	buf := make([]byte, 0, len(values)*3+2)
	for _, v := range values {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n', '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
