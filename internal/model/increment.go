package model

// Increment представление счетчика: ключ в хранилище и его текущее значение
type Increment struct {
	Key   string
	Value int64
}
