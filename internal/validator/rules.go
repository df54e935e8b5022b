package validator

import (
	"log"

	"campushub_client/internal/models"
	"campushub_client/internal/roles"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-type': роль из закрытого перечисления
	mustRegister("is-user-type", validateUserType)

	// 'is-document-type': тип документа из фиксированного списка
	mustRegister("is-document-type", validateDocumentType)
}

// --- Функции валидации ---

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}
	_, ok := roles.Classify(value)
	return ok
}

func validateDocumentType(fl validator.FieldLevel) bool {
	value := models.DocumentType(fl.Field().String())
	if value == "" {
		return true
	}
	return models.IsAllowedDocumentType(value, models.StudentDocumentTypes) ||
		models.IsAllowedDocumentType(value, models.OwnerDocumentTypes)
}
