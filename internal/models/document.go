package models

import "time"

type Document struct {
	ID              string         `json:"id"`
	Type            DocumentType   `json:"type"`
	URL             string         `json:"url"`
	UploadedAt      time.Time      `json:"uploadedAt"`
	Status          DocumentStatus `json:"status,omitempty"` // Верификация только для owner-документов
	RejectionReason string         `json:"rejectionReason,omitempty"`
}

// StudentDocumentTypes - разрешенные типы документов для студента
var StudentDocumentTypes = []DocumentType{
	DocumentTypeIDProof,
	DocumentTypeAddressProof,
	DocumentTypeAdmissionLetter,
}

// OwnerDocumentTypes - разрешенные типы документов для владельца
var OwnerDocumentTypes = []DocumentType{
	DocumentTypeIDProof,
	DocumentTypeBusinessLicense,
	DocumentTypeOwnershipProof,
}

// IsAllowedDocumentType проверяет, входит ли тип в разрешенный список
func IsAllowedDocumentType(t DocumentType, allowed []DocumentType) bool {
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
