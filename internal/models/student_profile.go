package models

import "time"

type AcademicInfo struct {
	Institution    string `json:"institution"`
	StudentID      string `json:"studentId"`
	Course         string `json:"course"`
	Year           int    `json:"year"`
	GraduationYear int    `json:"graduationYear"`
}

type StudentProfile struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	AcademicInfo    AcademicInfo    `json:"academicInfo"`
	Preferences     *Preferences    `json:"preferences,omitempty"`
	Documents       []Document      `json:"documents"`
	CompletionSteps map[string]bool `json:"completionSteps,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Normalize заполняет секции, которые сервер мог опустить, чтобы
// потребители никогда не видели nil для известного поля.
func (p *StudentProfile) Normalize() {
	if p.Preferences == nil {
		prefs := DefaultPreferences()
		p.Preferences = &prefs
	}
	if p.Documents == nil {
		p.Documents = []Document{}
	}
}
