package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена клиента.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из API)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrUserNotVerified - email пользователя не подтвержден.
var ErrUserNotVerified = New(
	CodeNotVerified,
	"auth",
	"Email is not verified",
	http.StatusForbidden,
)

// ErrInvalidToken - невалидный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest, // 400 - это логическая ошибка, а не ошибка прав
)

// ErrNoPendingVerification - нет отложенной верификации (нечего подтверждать).
var ErrNoPendingVerification = New(
	CodeInvalidOperation,
	"verification",
	"No pending verification found",
	http.StatusBadRequest,
)

// ErrIncompleteCode - введен не весь код подтверждения.
var ErrIncompleteCode = New(
	CodeValidationFailed,
	"verification",
	"Please enter the complete verification code",
	http.StatusBadRequest,
)

// ErrInvalidCode - сервер отклонил код подтверждения.
var ErrInvalidCode = New(
	CodeValidationFailed,
	"verification",
	"Invalid verification code",
	http.StatusBadRequest,
)

// ErrResendCooldown - повторная отправка кода еще недоступна.
var ErrResendCooldown = New(
	CodeLimitExceeded,
	"verification",
	"Please wait before requesting a new code",
	http.StatusTooManyRequests,
)

// --- Uploads & Files ---

// ErrFileTooLarge - файл превышает максимальный размер для одного запроса.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge, // 413
)

// ErrInvalidFileType - MIME-тип файла не разрешен.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType, // 415
)

// ErrInvalidDocumentType - тип документа не разрешен для роли пользователя.
var ErrInvalidDocumentType = New(
	CodeValidationFailed,
	"validation",
	"Invalid document type for this profile",
	http.StatusBadRequest,
)
