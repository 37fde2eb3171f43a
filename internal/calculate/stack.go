package calculate

// Stack простой стек LIFO поверх среза
type Stack[T any] struct {
	items []T
}

// Push кладёт элемент на вершину
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop снимает элемент с вершины. Для пустого стека возвращает false.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	item := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Peek возвращает вершину, не снимая её
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Clear очищает стек, сохраняя выделенную память
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
