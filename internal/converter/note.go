package converter

import (
	"playground-service/internal/model"
	apiv1 "playground-service/pkg/api/v1"
)

// RequestToNoteData конвертирует тело запроса в доменные данные заметки
func RequestToNoteData(req apiv1.NoteRequest) model.NoteData {
	var data model.NoteData
	if req.Title != nil {
		data.Title = *req.Title
	}
	if req.Content != nil {
		data.Content = *req.Content
	}
	return data
}

// NoteToDocument строит проекцию заметки для поискового индекса
func NoteToDocument(note model.Note) model.NoteDocument {
	return model.NoteDocument{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
	}
}

// ModelToAPI конвертирует domain модель Note в ответ API
func ModelToAPI(note model.Note) apiv1.Note {
	return apiv1.Note{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
	}
}

// ModelsToAPI конвертирует слайс заметок; nil превращается в пустой слайс ([] в JSON)
func ModelsToAPI(notes []model.Note) []apiv1.Note {
	result := make([]apiv1.Note, len(notes))
	for i, note := range notes {
		result[i] = ModelToAPI(note)
	}
	return result
}

// DocumentsToAPI конвертирует результаты поиска в ответ API
func DocumentsToAPI(docs []model.NoteDocument) []apiv1.Note {
	result := make([]apiv1.Note, len(docs))
	for i, doc := range docs {
		result[i] = apiv1.Note{
			ID:      doc.ID,
			Title:   doc.Title,
			Content: doc.Content,
		}
	}
	return result
}

// IncrementToAPI конвертирует счетчик в ответ API
func IncrementToAPI(inc model.Increment) apiv1.Increment {
	return apiv1.Increment{
		Key:   inc.Key,
		Value: inc.Value,
	}
}
