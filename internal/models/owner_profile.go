package models

import "time"

type BusinessInfo struct {
	BusinessName    string `json:"businessName"`
	BusinessType    string `json:"businessType"` // hostel, mess, gym
	BusinessAddress string `json:"businessAddress"`
	Description     string `json:"description,omitempty"`
	Website         string `json:"website,omitempty"`
}

type PaymentInfo struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	UPIID         string `json:"upiId,omitempty"`
}

type OwnerProfile struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	BusinessInfo    BusinessInfo    `json:"businessInfo"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	Preferences     *Preferences    `json:"preferences,omitempty"`
	Documents       []Document      `json:"documents"`
	ProfileImage    string          `json:"profileImage,omitempty"`
	CompletionSteps map[string]bool `json:"completionSteps,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Normalize заполняет секции, которые сервер мог опустить
func (p *OwnerProfile) Normalize() {
	if p.Preferences == nil {
		prefs := DefaultPreferences()
		p.Preferences = &prefs
	}
	if p.Documents == nil {
		p.Documents = []Document{}
	}
}
