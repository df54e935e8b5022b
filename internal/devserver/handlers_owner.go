package devserver

import (
	"net/http"
	"time"

	"campushub_client/internal/models"
	"campushub_client/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleOwnerProfile - GET /owner/profile
func (s *Server) handleOwnerProfile(c *gin.Context) {
	p, ok := s.store.OwnerProfile(GetUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// handleOwnerCompletionSteps - GET /owner/profile/completion-steps
func (s *Server) handleOwnerCompletionSteps(c *gin.Context) {
	p, ok := s.store.OwnerProfile(GetUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	steps := profile.DeriveOwnerCompletion(p)
	c.JSON(http.StatusOK, models.Completion{
		CompletionSteps:      steps,
		CompletionPercentage: profile.Percentage(steps),
	})
}

// handleOwnerUpdatePersonal - PUT /owner/profile/personal
func (s *Server) handleOwnerUpdatePersonal(c *gin.Context) {
	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		p.PersonalInfo = info
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Personal info updated"})
}

// handleOwnerUpdateBusiness - PUT /owner/profile/business
func (s *Server) handleOwnerUpdateBusiness(c *gin.Context) {
	var info models.BusinessInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		p.BusinessInfo = info
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business info updated"})
}

// handleOwnerUpdatePayment - PUT /owner/profile/payment
func (s *Server) handleOwnerUpdatePayment(c *gin.Context) {
	var info models.PaymentInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		p.PaymentInfo = info
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment info updated"})
}

// handleOwnerUpdatePreferences - PUT /owner/profile/preferences
func (s *Server) handleOwnerUpdatePreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		p.Preferences = &prefs
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}

// handleOwnerUploadDocument - POST /owner/profile/documents
// Документы владельцев уходят на модерацию, поэтому сразу получают
// статус pending.
func (s *Server) handleOwnerUploadDocument(c *gin.Context) {
	docType := models.DocumentType(c.PostForm("type"))
	if !models.IsAllowedDocumentType(docType, models.OwnerDocumentTypes) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid document type"})
		return
	}

	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Document file is required"})
		return
	}

	doc := models.Document{
		ID:         uuid.NewString(),
		Type:       docType,
		URL:        "/files/" + uuid.NewString() + "/" + file.Filename,
		Status:     models.DocumentStatusPending,
		UploadedAt: time.Now().UTC(),
	}

	if !s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		p.Documents = append(p.Documents, doc)
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// handleOwnerDeleteDocument - DELETE /owner/profile/documents/:id
func (s *Server) handleOwnerDeleteDocument(c *gin.Context) {
	docID := c.Param("id")
	found := false

	ok := s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		kept := p.Documents[:0]
		for _, d := range p.Documents {
			if d.ID == docID {
				found = true
				continue
			}
			kept = append(kept, d)
		}
		p.Documents = kept
	})

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// handleOwnerUploadProfileImage - POST /owner/profile/profileImage
func (s *Server) handleOwnerUploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("profileImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Profile image is required"})
		return
	}

	url := "/files/" + uuid.NewString() + "/" + file.Filename
	if !s.store.UpdateOwnerProfile(GetUserID(c), func(p *models.OwnerProfile) {
		p.ProfileImage = url
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profileImage": url})
}
