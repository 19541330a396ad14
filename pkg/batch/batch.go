package batch

// Failure неуспешный элемент пакета: исходный индекс, ошибка и исходные данные
type Failure[T any] struct {
	Index int
	Err   error
	Item  T
}

// Result итог пакетной операции. len(Successes)+len(Failures) равно числу элементов.
type Result[R any, T any] struct {
	Successes []R
	Failures  []Failure[T]
}

// SuccessCount число успешных элементов
func (r Result[R, T]) SuccessCount() int {
	return len(r.Successes)
}

// FailureCount число неуспешных элементов
func (r Result[R, T]) FailureCount() int {
	return len(r.Failures)
}

// Merge дописывает результаты other, сохраняя их индексы
func (r *Result[R, T]) Merge(other Result[R, T]) {
	r.Successes = append(r.Successes, other.Successes...)
	r.Failures = append(r.Failures, other.Failures...)
}

// Apply вызывает fn для каждого элемента по порядку. Ошибка элемента не прерывает
// обработку: она попадает в Failures вместе с индексом и элементом.
func Apply[T any, R any](items []T, fn func(index int, item T) (R, error)) Result[R, T] {
	return ApplyFrom(0, items, fn)
}

// ApplyFrom как Apply, но нумерация индексов начинается с offset
func ApplyFrom[T any, R any](offset int, items []T, fn func(index int, item T) (R, error)) Result[R, T] {
	result := Result[R, T]{
		Successes: make([]R, 0, len(items)),
		Failures:  make([]Failure[T], 0),
	}

	for i, item := range items {
		index := offset + i
		out, err := fn(index, item)
		if err != nil {
			result.Failures = append(result.Failures, Failure[T]{Index: index, Err: err, Item: item})
			continue
		}
		result.Successes = append(result.Successes, out)
	}

	return result
}
