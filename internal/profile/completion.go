package profile

import (
	"math"

	"campushub_client/internal/models"
)

/*
Локальный fallback для карты заполненности профиля.

Сервер авторитетен: его completionSteps используются всегда, когда они
присутствуют в ответе. Деривация ниже - best-effort запасной путь на случай,
когда сервер поле опустил, и она ОБЯЗАНА оставаться чистой функцией документа
профиля - никакого отдельного состояния, которому можно разъехаться.
*/

// DeriveStudentCompletion вычисляет карту секций студента из профиля
func DeriveStudentCompletion(p *models.StudentProfile) map[string]bool {
	if p == nil {
		return map[string]bool{}
	}

	return map[string]bool{
		models.SectionProfile: p.PersonalInfo.FullName != "" &&
			p.PersonalInfo.PhoneNumber != "",
		models.SectionAcademic: p.AcademicInfo.Institution != "" &&
			p.AcademicInfo.StudentID != "" &&
			p.AcademicInfo.Course != "" &&
			p.AcademicInfo.Year != 0 &&
			p.AcademicInfo.GraduationYear != 0,
		models.SectionDocuments: len(p.Documents) > 0,
	}
}

// DeriveOwnerCompletion вычисляет карту секций владельца из профиля
func DeriveOwnerCompletion(p *models.OwnerProfile) map[string]bool {
	if p == nil {
		return map[string]bool{}
	}

	return map[string]bool{
		models.SectionProfile: p.PersonalInfo.FullName != "" &&
			p.PersonalInfo.PhoneNumber != "",
		models.SectionBusiness: p.BusinessInfo.BusinessName != "" &&
			p.BusinessInfo.BusinessType != "" &&
			p.BusinessInfo.BusinessAddress != "",
		models.SectionPayment: p.PaymentInfo.AccountName != "" &&
			p.PaymentInfo.AccountNumber != "" &&
			p.PaymentInfo.BankName != "",
		models.SectionDocuments: len(p.Documents) > 0,
	}
}

// Percentage считает процент заполненности по карте секций
func Percentage(steps map[string]bool) int {
	if len(steps) == 0 {
		return 0
	}

	done := 0
	for _, complete := range steps {
		if complete {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(steps)) * 100))
}
