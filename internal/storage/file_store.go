// internal/storage/file_store.go
package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Ключ хранения рекорда; имя файла в каталоге конфигурации пользователя.
const storageKey = "neon_pinball_highscore"

type record struct {
	HighScore int `json:"highScore"`
}

// FileStore хранит рекорд в JSON-файле. Любая ошибка чтения даёт 0,
// ошибка записи только логируется — партия от этого не падает.
type FileStore struct {
	path string
}

// NewFileStore кладёт файл в os.UserConfigDir()/neon-pinball/.
// Если каталог конфигурации недоступен, пишем рядом с бинарём.
func NewFileStore() *FileStore {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("storage: user config dir unavailable: %v", err)
		return &FileStore{path: storageKey + ".json"}
	}
	return &FileStore{path: filepath.Join(dir, "neon-pinball", storageKey+".json")}
}

// NewFileStoreAt — произвольный путь, используется в тестах.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Битый файл читается как отсутствие рекорда.
		return 0
	}
	if rec.HighScore < 0 {
		return 0
	}
	return rec.HighScore
}

func (s *FileStore) Save(score int) {
	data, err := json.Marshal(record{HighScore: score})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("storage: mkdir: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("storage: write: %v", err)
	}
}
