package entities

import "time"

// ActionItem представляет задачу, обычно привязанную к заметке.
// CompletedAt не nil тогда и только тогда, когда Completed истинно.
type ActionItem struct {
	ID          string
	Title       string
	NoteID      string
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// Clone returns a deep copy of the item.
func (a ActionItem) Clone() ActionItem {
	out := a
	out.CompletedAt = cloneTime(a.CompletedAt)
	out.CreatedAt = cloneTime(a.CreatedAt)
	out.UpdatedAt = cloneTime(a.UpdatedAt)
	return out
}

// SetCompleted переключает состояние, сохраняя согласованность CompletedAt.
func (a *ActionItem) SetCompleted(done bool, now time.Time) {
	a.Completed = done
	if done {
		a.CompletedAt = &now
	} else {
		a.CompletedAt = nil
	}
	a.UpdatedAt = &now
}

// ActionItemDraft содержит данные для создания задачи.
type ActionItemDraft struct {
	Title  string
	NoteID string
}

// Validate проверяет черновик задачи.
func (d ActionItemDraft) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ActionItemPatch описывает частичное обновление задачи.
type ActionItemPatch struct {
	Title     *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ActionItemPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// Validate проверяет патч задачи.
func (p ActionItemPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ActionItemFilter задает параметры выборки задач.
type ActionItemFilter struct {
	NoteID         string
	IncompleteOnly bool
	Limit          int
}
