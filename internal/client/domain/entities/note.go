// Package entities defines the in-memory models of the goodnotes client.
package entities

import "time"

// Note представляет заметку о встрече.
type Note struct {
	ID               string
	Title            string
	Attendees        []string
	MeetingStartTime *time.Time
	Content          string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	ActionItems      []ActionItem
}

// Clone returns a deep copy that shares no memory with n.
func (n Note) Clone() Note {
	out := n
	if n.Attendees != nil {
		out.Attendees = append([]string(nil), n.Attendees...)
	}
	out.MeetingStartTime = cloneTime(n.MeetingStartTime)
	out.UpdatedAt = cloneTime(n.UpdatedAt)
	if n.ActionItems != nil {
		out.ActionItems = make([]ActionItem, len(n.ActionItems))
		for i, item := range n.ActionItems {
			out.ActionItems[i] = item.Clone()
		}
	}
	return out
}

// NoteDraft содержит данные для создания заметки.
type NoteDraft struct {
	Title            string
	Attendees        []string
	MeetingStartTime *time.Time
	Content          string
	ActionItems      []ActionItemDraft
}

// Validate проверяет черновик перед отправкой.
func (d NoteDraft) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	for _, item := range d.ActionItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NotePatch описывает частичное обновление заметки.
// Nil означает "без изменений"; указатель на пустое значение очищает поле.
type NotePatch struct {
	Title            *string
	Attendees        *[]string
	MeetingStartTime *time.Time
	Content          *string
	ActionItems      *[]ActionItemDraft
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Attendees == nil && p.MeetingStartTime == nil &&
		p.Content == nil && p.ActionItems == nil
}

// Validate проверяет патч перед отправкой.
func (p NotePatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrEmptyTitle
	}
	if p.ActionItems != nil {
		for _, item := range *p.ActionItems {
			if err := item.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply returns a copy of n with the scalar fields of the patch merged in
// and UpdatedAt set to now. ActionItems are left to the caller.
func (p NotePatch) Apply(n Note, now time.Time) Note {
	out := n.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Attendees != nil {
		out.Attendees = append([]string{}, (*p.Attendees)...)
	}
	if p.MeetingStartTime != nil {
		out.MeetingStartTime = cloneTime(p.MeetingStartTime)
	}
	if p.Content != nil {
		out.Content = *p.Content
	}
	out.UpdatedAt = &now
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
