package infrastructure

import (
	"strings"

	"github.com/koliko-tech/admin-backend/pkg/e"
)

// imageExtensions перечисляет MIME-типы фотографий товаров, которые
// принимаются от админки. image/jpg не существует в стандарте, но
// встречается в multipart-заголовках браузеров.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// GetExtensionFromMIME возвращает расширение файла в объектном хранилище
// по MIME-типу изображения либо e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	ext, ok := imageExtensions[strings.ToLower(mime)]
	if !ok {
		return "", e.ErrUnsupportedMediaType
	}

	return ext, nil
}
