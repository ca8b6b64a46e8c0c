package app

import "sync"

// closerStack — стек освобождения ресурсов.
// push в порядке захвата, close — строго в обратном порядке и ровно один раз.
type closerStack struct {
	mu      sync.Mutex
	once    sync.Once
	closers []func()
}

// push — зарегистрировать освобождение очередного ресурса.
func (s *closerStack) push(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.closers = append(s.closers, fn)
	s.mu.Unlock()
}

// close — освободить всё в обратном порядке; повторные вызовы — no-op.
func (s *closerStack) close() {
	s.once.Do(func() {
		s.mu.Lock()
		closers := s.closers
		s.closers = nil
		s.mu.Unlock()

		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	})
}
