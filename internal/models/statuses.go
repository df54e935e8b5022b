package models

type UserType string
type DocumentStatus string
type DocumentType string

const (
	UserTypeStudent     UserType = "student"
	UserTypeHostelOwner UserType = "hostelOwner"
	UserTypeMessOwner   UserType = "messOwner"
	UserTypeGymOwner    UserType = "gymOwner"

	DocumentStatusUnverified DocumentStatus = "unverified"
	DocumentStatusPending    DocumentStatus = "pending"
	DocumentStatusVerified   DocumentStatus = "verified"
	DocumentStatusRejected   DocumentStatus = "rejected"

	DocumentTypeIDProof         DocumentType = "idProof"
	DocumentTypeAddressProof    DocumentType = "addressProof"
	DocumentTypeAdmissionLetter DocumentType = "admissionLetter"
	DocumentTypeBusinessLicense DocumentType = "businessLicense"
	DocumentTypeOwnershipProof  DocumentType = "ownershipProof"
)
