package core

type ViewStack struct {
	items []View
}

func (s *ViewStack) Push(v View) {
	if v == nil {
		return
	}
	s.items = append(s.items, v)
}

func (s *ViewStack) Pop() View {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ViewStack) Top() View {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ViewStack) Len() int {
	return len(s.items)
}

func (s ViewStack) All() []View {
	return s.items
}
