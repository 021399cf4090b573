// Package memory реализует бэкенд заметок и задач в памяти процесса.
// Используется в локальном режиме и в тестах вместо REST API.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"goodnotes/internal/client/domain/entities"
	"goodnotes/internal/client/domain/errs"
	"goodnotes/internal/client/ports/api"
)

// Сообщения об ошибках.
const (
	ErrMsgNoteNotFound       = "Note not found"
	ErrMsgActionItemNotFound = "Action item not found"
	ErrMsgSeedMissingTitle   = "memory: seed entry missing title"
)

// DefaultIncompleteLimit - лимит GET /action-items/incomplete по умолчанию.
const DefaultIncompleteLimit = 5

var (
	_ api.NotesAPI       = (*Backend)(nil)
	_ api.ActionItemsAPI = (*Backend)(nil)
)

type noteRecord struct {
	note entities.Note
	seq  uint64
}

type itemRecord struct {
	item entities.ActionItem
	seq  uint64
}

// Backend хранит заметки и задачи в памяти. Безопасен для конкурентного использования.
type Backend struct {
	mu    sync.RWMutex
	notes map[string]*noteRecord
	items map[string]*itemRecord
	seq   uint64
	now   func() time.Time
}

// Option настраивает Backend.
type Option func(*Backend)

// WithClock подменяет источник времени (для тестов).
func WithClock(fn func() time.Time) Option {
	return func(b *Backend) {
		if fn != nil {
			b.now = fn
		}
	}
}

// New создает пустой бэкенд.
func New(opts ...Option) *Backend {
	b := &Backend{
		notes: make(map[string]*noteRecord),
		items: make(map[string]*itemRecord),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Seed загружает заметки и задачи. Пустые id генерируются, отсутствующее
// время создания берется из часов бэкенда.
func (b *Backend) Seed(notes []entities.Note, items []entities.ActionItem) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	for _, n := range notes {
		if n.Title == "" {
			return fmt.Errorf("%s: note %q", ErrMsgSeedMissingTitle, n.ID)
		}
		n = n.Clone()
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		for _, item := range n.ActionItems {
			item.NoteID = n.ID
			items = append(items, item)
		}
		n.ActionItems = nil
		b.putNote(n)
	}
	for _, item := range items {
		if item.Title == "" {
			return fmt.Errorf("%s: action item %q", ErrMsgSeedMissingTitle, item.ID)
		}
		item = item.Clone()
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.CreatedAt == nil {
			item.CreatedAt = &now
		}
		b.putItem(item)
	}
	return nil
}

func (b *Backend) nextSeq() uint64 {
	b.seq++
	return b.seq
}

func (b *Backend) putNote(n entities.Note) {
	if rec, ok := b.notes[n.ID]; ok {
		rec.note = n
		return
	}
	b.notes[n.ID] = &noteRecord{note: n, seq: b.nextSeq()}
}

func (b *Backend) putItem(item entities.ActionItem) {
	if rec, ok := b.items[item.ID]; ok {
		rec.item = item
		return
	}
	b.items[item.ID] = &itemRecord{item: item, seq: b.nextSeq()}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// newestFirst упорядочивает по времени создания по убыванию.
func newestFirst(a, b time.Time, aSeq, bSeq uint64) int {
	if c := b.Compare(a); c != 0 {
		return c
	}
	return cmp.Compare(bSeq, aSeq)
}

func createdAt(item entities.ActionItem) time.Time {
	if item.CreatedAt == nil {
		return time.Time{}
	}
	return *item.CreatedAt
}

func ctxErr(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return errs.Transport(op, err)
	}
	return nil
}

// collect копирует записи в срез и сортирует его.
func collect[R any, T any](records map[string]*R, keep func(*R) bool, less func(a, b *R) int, get func(*R) T) []T {
	picked := make([]*R, 0, len(records))
	for _, rec := range records {
		if keep(rec) {
			picked = append(picked, rec)
		}
	}
	slices.SortFunc(picked, less)
	out := make([]T, 0, len(picked))
	for _, rec := range picked {
		out = append(out, get(rec))
	}
	return out
}
