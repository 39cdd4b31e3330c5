package iterkit

// Slice returns an Iterator over the elements of vs in index order.
func Slice[T any](vs []T) *SliceIter[T] {
	return &SliceIter[T]{Slice: vs}
}

// SliceIter walks Slice from its first element to its last.
type SliceIter[T any] struct {
	Slice []T
	index int
}

func (i *SliceIter[T]) HasNext() bool {
	return i.index < len(i.Slice)
}

func (i *SliceIter[T]) Next() (T, error) {
	if !i.HasNext() {
		var zero T
		return zero, ErrExhausted
	}
	v := i.Slice[i.index]
	i.index++
	return v, nil
}
