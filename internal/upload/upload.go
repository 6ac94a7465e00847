package upload

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Разрешенные расширения картинок
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// SanitizeFilename убирает из имени файла разделители путей и все символы,
// кроме [A-Za-z0-9._-]. Пустой результат заменяется на "file", чтобы
// имя никогда не схлопнулось в ничто.
func SanitizeFilename(name string) string {
	// Отрезаем любой путь, оставляем только само имя
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "\\", "")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}

// AllowedExtension проверяет расширение файла по списку разрешенных
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// UniqueName возвращает уникальное имя для сохранения: сперва санитизация,
// потом uuid-префикс. Две одновременные загрузки одинакового файла больше
// не перезаписывают друг друга.
func UniqueName(name string) string {
	return uuid.NewString() + "_" + SanitizeFilename(name)
}
