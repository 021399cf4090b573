package dto

// ActionItem - задача в формате API.
type ActionItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	NoteID      *string `json:"note_id,omitempty"`
	CreatedAt   *string `json:"created_at,omitempty"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	Completed   bool    `json:"completed"`
}

// ActionItemDraft - задача внутри запроса на создание или обновление заметки.
type ActionItemDraft struct {
	Title string `json:"title"`
}

// CreateActionItemRequest содержит данные для создания задачи.
type CreateActionItemRequest struct {
	Title  string  `json:"title"`
	NoteID *string `json:"note_id,omitempty"`
}

// UpdateActionItemRequest содержит только явно заданные поля.
type UpdateActionItemRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}
