package profile

import (
	"testing"

	"campushub_client/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStudentCompletion_EmptyProfile(t *testing.T) {
	steps := DeriveStudentCompletion(&models.StudentProfile{})

	assert.False(t, steps[models.SectionProfile])
	assert.False(t, steps[models.SectionAcademic])
	assert.False(t, steps[models.SectionDocuments])
	assert.Equal(t, 0, Percentage(steps))
}

func TestDeriveStudentCompletion_SectionsFlipIndependently(t *testing.T) {
	p := &models.StudentProfile{}
	p.PersonalInfo = models.PersonalInfo{
		FullName:    "Арман Студентов",
		PhoneNumber: "+77001234567",
	}

	steps := DeriveStudentCompletion(p)
	assert.True(t, steps[models.SectionProfile])
	assert.False(t, steps[models.SectionAcademic])

	// Частично заполненная учеба секцию не закрывает
	p.AcademicInfo = models.AcademicInfo{Institution: "KazNU"}
	assert.False(t, DeriveStudentCompletion(p)[models.SectionAcademic])

	p.AcademicInfo = models.AcademicInfo{
		Institution:    "KazNU",
		StudentID:      "ST-1",
		Course:         "CS",
		Year:           2,
		GraduationYear: 2027,
	}
	assert.True(t, DeriveStudentCompletion(p)[models.SectionAcademic])

	p.Documents = []models.Document{{ID: "d-1", Type: models.DocumentTypeIDProof}}
	steps = DeriveStudentCompletion(p)
	assert.True(t, steps[models.SectionDocuments])
	assert.Equal(t, 100, Percentage(steps))
}

func TestDeriveOwnerCompletion_AllSections(t *testing.T) {
	p := &models.OwnerProfile{}

	steps := DeriveOwnerCompletion(p)
	assert.Len(t, steps, 4)
	assert.Equal(t, 0, Percentage(steps))

	p.BusinessInfo = models.BusinessInfo{
		BusinessName:    "Sunrise Hostel",
		BusinessType:    "hostel",
		BusinessAddress: "12 Abay Ave",
	}
	steps = DeriveOwnerCompletion(p)
	assert.True(t, steps[models.SectionBusiness])
	assert.Equal(t, 25, Percentage(steps))

	p.PaymentInfo = models.PaymentInfo{
		AccountName:   "LLP",
		AccountNumber: "KZ12",
		BankName:      "Halyk",
	}
	assert.True(t, DeriveOwnerCompletion(p)[models.SectionPayment])
}

func TestDerive_NilProfile(t *testing.T) {
	assert.Empty(t, DeriveStudentCompletion(nil))
	assert.Empty(t, DeriveOwnerCompletion(nil))
	assert.Equal(t, 0, Percentage(nil))
}

func TestPercentage_Rounds(t *testing.T) {
	// 1 из 3 секций - 33%, округление до целого
	steps := map[string]bool{"a": true, "b": false, "c": false}
	assert.Equal(t, 33, Percentage(steps))

	steps["b"] = true
	assert.Equal(t, 67, Percentage(steps))
}
