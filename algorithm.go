package main

import "fmt"

// Algorithm names an in-memory sort that SortingDemo can step through
type Algorithm string

const (
	AlgorithmSelection Algorithm = "selection"
	AlgorithmInsertion Algorithm = "insertion"
	AlgorithmBubble    Algorithm = "bubble"
	AlgorithmTree      Algorithm = "tree"
	AlgorithmQuick     Algorithm = "quick"
	AlgorithmMerge     Algorithm = "merge"
	AlgorithmRadix     Algorithm = "radix"
)

// stepper sorts d.data in place, yielding through d.emit; it returns early when yield does
type stepper func(d *SortingDemo, yield func(Step) bool)

var steppers = map[Algorithm]stepper{
	AlgorithmSelection: selectionSteps,
	AlgorithmInsertion: insertionSteps,
	AlgorithmBubble:    bubbleSteps,
	AlgorithmTree:      treeSteps,
	AlgorithmQuick:     quickSteps,
	AlgorithmMerge:     mergeSteps,
	AlgorithmRadix:     radixSteps,
}

// Algorithms lists every supported algorithm in menu order
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmSelection,
		AlgorithmInsertion,
		AlgorithmBubble,
		AlgorithmTree,
		AlgorithmQuick,
		AlgorithmMerge,
		AlgorithmRadix,
	}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return AlgorithmSelection, nil
	}
	a := Algorithm(name)
	if _, ok := steppers[a]; !ok {
		return "", fmt.Errorf("unknown algorithm %q: want one of %v", name, Algorithms())
	}
	return a, nil
}

func stepperFor(a Algorithm) stepper {
	if s, ok := steppers[a]; ok {
		return s
	}
	return selectionSteps
}
