package colfmt

import "iter"

// ColumnizeIter collects values from an iterator and columnizes them.
// Layout needs every value, so nothing is rendered until seq is drained.
func ColumnizeIter(seq iter.Seq[string], opts Options) (*Frame, error) {
	var values []string
	for v := range seq {
		values = append(values, v)
	}
	return Columnize(values, opts)
}

// ColumnizeChan columnizes values received from ch until it is closed.
// It is a thin wrapper around [ColumnizeIter].
func ColumnizeChan(ch <-chan string, opts Options) (*Frame, error) {
	return ColumnizeIter(chanToIter(ch), opts)
}

// ColumnizePairsIter collects pairs from an iterator and columnizes them.
func ColumnizePairsIter(seq iter.Seq2[string, string], opts Options) (*Frame, error) {
	var pairs []KeyValue
	for k, v := range seq {
		pairs = append(pairs, KeyValue{Key: k, Value: v})
	}
	return ColumnizePairs(pairs, opts)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
