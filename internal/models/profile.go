package models

// PersonalInfo - контактная секция, общая для обеих ролей
type PersonalInfo struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	AlternatePhone string `json:"alternatePhone,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
}

// Completion - карта заполненности секций профиля.
// Приходит с сервера вместе с процентом; сервер авторитетен, когда поле есть.
type Completion struct {
	CompletionSteps      map[string]bool `json:"completionSteps"`
	CompletionPercentage int             `json:"completionPercentage"`
}

// Имена секций, используемые в completion map
const (
	SectionProfile   = "profile"
	SectionAcademic  = "academic"
	SectionBusiness  = "business"
	SectionPayment   = "payment"
	SectionDocuments = "documents"
)
