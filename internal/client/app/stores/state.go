// Package stores содержит клиентские хранилища заметок и задач:
// кэш последних ответов бэкенда с флагом загрузки и последней ошибкой.
package stores

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"goodnotes/internal/client/domain/errs"
	"goodnotes/pkg/logger"
)

// state хранит упорядоченную коллекцию, текущий элемент, флаг загрузки
// и последнюю ошибку. Блокировка не удерживается во время запросов к API:
// параллельные операции не упорядочиваются, побеждает последняя запись.
type state[T any] struct {
	mu      sync.RWMutex
	items   []T
	current *T
	loading bool
	err     error
	errMsg  string

	id    func(T) string
	clone func(T) T

	subMu     sync.Mutex
	listeners map[uint64]func()
	nextSub   uint64
}

func newState[T any](id func(T) string, clone func(T) T) *state[T] {
	return &state[T]{
		items:     []T{},
		id:        id,
		clone:     clone,
		listeners: make(map[uint64]func()),
	}
}

// subscribe регистрирует fn, вызываемую после каждого изменения состояния.
func (s *state[T]) subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	key := s.nextSub
	s.nextSub++
	s.listeners[key] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			delete(s.listeners, key)
		})
	}
}

func (s *state[T]) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// mutate применяет fn под блокировкой и уведомляет подписчиков.
func (s *state[T]) mutate(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()
	s.notify()
}

func (s *state[T]) begin() {
	s.mutate(func() {
		s.loading = true
		s.err = nil
		s.errMsg = ""
	})
}

func (s *state[T]) end() {
	s.mutate(func() { s.loading = false })
}

func (s *state[T]) fail(err error, fallback string) {
	s.mutate(func() {
		s.err = err
		s.errMsg = errs.Message(err, fallback)
	})
}

func (s *state[T]) clearError() {
	s.mutate(func() {
		s.err = nil
		s.errMsg = ""
	})
}

func (s *state[T]) replaceAll(items []T) {
	copied := make([]T, 0, len(items))
	for _, item := range items {
		copied = append(copied, s.clone(item))
	}
	s.mutate(func() { s.items = copied })
}

// add вставляет элемент в начало или конец коллекции и делает его текущим.
func (s *state[T]) add(item T, prepend bool) {
	stored := s.clone(item)
	current := s.clone(item)
	s.mutate(func() {
		next := make([]T, 0, len(s.items)+1)
		if prepend {
			next = append(next, stored)
			next = append(next, s.items...)
		} else {
			next = append(next, s.items...)
			next = append(next, stored)
		}
		s.items = next
		s.current = &current
	})
}

// replace заменяет элемент с тем же id и текущий элемент, если он совпадает.
// Остальные элементы не изменяются.
func (s *state[T]) replace(item T) {
	id := s.id(item)
	s.mutate(func() {
		next := make([]T, len(s.items))
		copy(next, s.items)
		for i := range next {
			if s.id(next[i]) == id {
				next[i] = s.clone(item)
			}
		}
		s.items = next
		if s.current != nil && s.id(*s.current) == id {
			current := s.clone(item)
			s.current = &current
		}
	})
}

// remove удаляет элементы с id и сбрасывает текущий элемент, если он совпадает.
func (s *state[T]) remove(id string) {
	s.mutate(func() {
		next := make([]T, 0, len(s.items))
		for _, item := range s.items {
			if s.id(item) != id {
				next = append(next, item)
			}
		}
		s.items = next
		if s.current != nil && s.id(*s.current) == id {
			s.current = nil
		}
	})
}

func (s *state[T]) setCurrent(item T) {
	current := s.clone(item)
	s.mutate(func() { s.current = &current })
}

func (s *state[T]) find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if s.id(item) == id {
			return s.clone(item), true
		}
	}
	var zero T
	return zero, false
}

func (s *state[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, s.clone(item))
	}
	return out
}

func (s *state[T]) currentItem() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		var zero T
		return zero, false
	}
	return s.clone(*s.current), true
}

func (s *state[T]) isLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *state[T]) lastErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *state[T]) lastErrMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// run выполняет операцию хранилища: выставляет loading, сбрасывает ошибку,
// при сбое запоминает сообщение и возвращает исходную ошибку, в конце
// снимает loading.
func run[T, R any](ctx context.Context, s *state[T], op, fallback string, fn func() (R, error)) (R, error) {
	log := logger.Log(ctx).With(zap.String("op", op))

	s.begin()
	defer s.end()

	log.Debug(ctx, LogOperationStarted)
	result, err := fn()
	if err != nil {
		s.fail(err, fallback)
		log.Error(ctx, LogOperationFailed, zap.Error(err))
		return result, err
	}
	return result, nil
}
