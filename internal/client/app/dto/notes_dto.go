// Package dto описывает формат данных REST API (snake_case, ISO-8601 строки)
// и преобразования между ним и доменными моделями.
package dto

// Note - заметка в формате API.
type Note struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Attendees        []string     `json:"attendees,omitempty"`
	MeetingStartTime *string      `json:"meeting_start_time,omitempty"`
	Content          string       `json:"content"`
	CreatedAt        string       `json:"created_at"`
	UpdatedAt        *string      `json:"updated_at,omitempty"`
	ActionItems      []ActionItem `json:"action_items"`
}

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title            string            `json:"title"`
	Attendees        []string          `json:"attendees,omitempty"`
	MeetingStartTime *string           `json:"meeting_start_time,omitempty"`
	Content          string            `json:"content"`
	ActionItems      []ActionItemDraft `json:"action_items,omitempty"`
}

// UpdateNoteRequest содержит только явно заданные поля.
type UpdateNoteRequest struct {
	Title            *string            `json:"title,omitempty"`
	Attendees        *[]string          `json:"attendees,omitempty"`
	MeetingStartTime *string            `json:"meeting_start_time,omitempty"`
	Content          *string            `json:"content,omitempty"`
	ActionItems      *[]ActionItemDraft `json:"action_items,omitempty"`
}

// MessageResponse - ответ бэкенда на удаление.
type MessageResponse struct {
	Message string `json:"message"`
}
