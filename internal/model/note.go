package model

// Note представляет заметку (доменная модель, источник истины - документное хранилище)
type Note struct {
	ID      string // Идентификатор, выданный хранилищем при создании
	Title   string // Заголовок заметки
	Content string // Содержание заметки
}

// NoteData входные данные для создания и обновления заметки (без ID)
type NoteData struct {
	Title   string
	Content string
}

// NoteDocument проекция заметки в поисковом индексе.
// Не является авторитетной: после неудачного зеркалирования может отставать от Note.
type NoteDocument struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
