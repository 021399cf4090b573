package dto

import (
	"fmt"
	"strings"
	"time"

	"goodnotes/internal/client/domain/entities"
)

// naiveLayouts covers timestamps the backend emits without a zone offset.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// DateLayout - формат параметра date (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseTime разбирает ISO-8601 строку. Значения без смещения читаются
// в локальной зоне.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// FormatTime форматирует время для отправки в API.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatDate форматирует дату для параметра date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func parseOptionalTime(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseTime(*value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}

// ToDomainNote преобразует заметку API в доменную модель.
func ToDomainNote(in Note) (entities.Note, error) {
	out := entities.Note{
		ID:      in.ID,
		Title:   in.Title,
		Content: in.Content,
	}
	if in.Attendees != nil {
		out.Attendees = append([]string(nil), in.Attendees...)
	}

	var err error
	if in.CreatedAt != "" {
		if out.CreatedAt, err = ParseTime(in.CreatedAt); err != nil {
			return entities.Note{}, fmt.Errorf("note %s: created_at: %w", in.ID, err)
		}
	}
	if out.MeetingStartTime, err = parseOptionalTime("meeting_start_time", in.MeetingStartTime); err != nil {
		return entities.Note{}, fmt.Errorf("note %s: %w", in.ID, err)
	}
	if out.UpdatedAt, err = parseOptionalTime("updated_at", in.UpdatedAt); err != nil {
		return entities.Note{}, fmt.Errorf("note %s: %w", in.ID, err)
	}

	out.ActionItems = make([]entities.ActionItem, 0, len(in.ActionItems))
	for _, item := range in.ActionItems {
		converted, err := ToDomainActionItem(item)
		if err != nil {
			return entities.Note{}, fmt.Errorf("note %s: %w", in.ID, err)
		}
		out.ActionItems = append(out.ActionItems, converted)
	}
	return out, nil
}

// ToDomainNotes преобразует список заметок с сохранением порядка.
func ToDomainNotes(in []Note) ([]entities.Note, error) {
	out := make([]entities.Note, 0, len(in))
	for _, n := range in {
		converted, err := ToDomainNote(n)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// ToDomainActionItem преобразует задачу API в доменную модель.
// Отсутствующий или null completed_at дает nil.
func ToDomainActionItem(in ActionItem) (entities.ActionItem, error) {
	out := entities.ActionItem{
		ID:        in.ID,
		Title:     in.Title,
		Completed: in.Completed,
	}
	if in.NoteID != nil {
		out.NoteID = *in.NoteID
	}

	var err error
	if out.CreatedAt, err = parseOptionalTime("created_at", in.CreatedAt); err != nil {
		return entities.ActionItem{}, fmt.Errorf("action item %s: %w", in.ID, err)
	}
	if out.UpdatedAt, err = parseOptionalTime("updated_at", in.UpdatedAt); err != nil {
		return entities.ActionItem{}, fmt.Errorf("action item %s: %w", in.ID, err)
	}
	if out.CompletedAt, err = parseOptionalTime("completed_at", in.CompletedAt); err != nil {
		return entities.ActionItem{}, fmt.Errorf("action item %s: %w", in.ID, err)
	}
	return out, nil
}

// ToDomainActionItems преобразует список задач с сохранением порядка.
func ToDomainActionItems(in []ActionItem) ([]entities.ActionItem, error) {
	out := make([]entities.ActionItem, 0, len(in))
	for _, item := range in {
		converted, err := ToDomainActionItem(item)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// FromDomainNote преобразует доменную заметку в формат API.
func FromDomainNote(in entities.Note) Note {
	out := Note{
		ID:               in.ID,
		Title:            in.Title,
		Content:          in.Content,
		MeetingStartTime: formatOptionalTime(in.MeetingStartTime),
		UpdatedAt:        formatOptionalTime(in.UpdatedAt),
		ActionItems:      make([]ActionItem, 0, len(in.ActionItems)),
	}
	if in.Attendees != nil {
		out.Attendees = append([]string(nil), in.Attendees...)
	}
	if !in.CreatedAt.IsZero() {
		out.CreatedAt = FormatTime(in.CreatedAt)
	}
	for _, item := range in.ActionItems {
		out.ActionItems = append(out.ActionItems, FromDomainActionItem(item))
	}
	return out
}

// FromDomainActionItem преобразует доменную задачу в формат API.
func FromDomainActionItem(in entities.ActionItem) ActionItem {
	out := ActionItem{
		ID:          in.ID,
		Title:       in.Title,
		Completed:   in.Completed,
		CreatedAt:   formatOptionalTime(in.CreatedAt),
		UpdatedAt:   formatOptionalTime(in.UpdatedAt),
		CompletedAt: formatOptionalTime(in.CompletedAt),
	}
	if in.NoteID != "" {
		noteID := in.NoteID
		out.NoteID = &noteID
	}
	return out
}

func buildDrafts(in []entities.ActionItemDraft) []ActionItemDraft {
	out := make([]ActionItemDraft, 0, len(in))
	for _, d := range in {
		out = append(out, ActionItemDraft{Title: d.Title})
	}
	return out
}

// BuildCreateNoteRequest строит тело POST /notes.
func BuildCreateNoteRequest(d entities.NoteDraft) CreateNoteRequest {
	req := CreateNoteRequest{
		Title:            d.Title,
		Content:          d.Content,
		MeetingStartTime: formatOptionalTime(d.MeetingStartTime),
	}
	if d.Attendees != nil {
		req.Attendees = append([]string(nil), d.Attendees...)
	}
	if len(d.ActionItems) > 0 {
		req.ActionItems = buildDrafts(d.ActionItems)
	}
	return req
}

// BuildUpdateNoteRequest строит тело PUT /notes/{id}: в него попадают
// только поля, заданные в патче.
func BuildUpdateNoteRequest(p entities.NotePatch) UpdateNoteRequest {
	req := UpdateNoteRequest{
		Title:            p.Title,
		Content:          p.Content,
		MeetingStartTime: formatOptionalTime(p.MeetingStartTime),
	}
	if p.Attendees != nil {
		attendees := append([]string{}, (*p.Attendees)...)
		req.Attendees = &attendees
	}
	if p.ActionItems != nil {
		drafts := buildDrafts(*p.ActionItems)
		req.ActionItems = &drafts
	}
	return req
}

// BuildCreateActionItemRequest строит тело POST /action-items.
func BuildCreateActionItemRequest(d entities.ActionItemDraft) CreateActionItemRequest {
	req := CreateActionItemRequest{Title: d.Title}
	if d.NoteID != "" {
		noteID := d.NoteID
		req.NoteID = &noteID
	}
	return req
}

// BuildUpdateActionItemRequest строит тело PUT /action-items/{id}.
func BuildUpdateActionItemRequest(p entities.ActionItemPatch) UpdateActionItemRequest {
	return UpdateActionItemRequest{
		Title:     p.Title,
		Completed: p.Completed,
	}
}
