// internal/interfaces/store.go
package interfaces

// ScoreStore — хранилище рекорда. Ошибки чтения и записи не фатальны:
// Load при любой проблеме возвращает 0, Save молча проглатывает сбой.
type ScoreStore interface {
	Load() int
	Save(score int)
}
