package validator

import (
	"campushub_client/pkg/apperrors"
)

// ValidateUpload - pre-flight проверка файла ДО сетевого вызова.
// Ошибки идут тем же каналом, что и сетевые сбои.
func ValidateUpload(contentType string, size int64, maxSize int64, allowedTypes []string) error {
	if maxSize > 0 && size > maxSize {
		return apperrors.ErrFileTooLarge
	}

	for _, t := range allowedTypes {
		if t == contentType {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}
