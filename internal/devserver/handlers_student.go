package devserver

import (
	"net/http"
	"time"

	"campushub_client/internal/models"
	"campushub_client/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// handleStudentProfile - GET /student/profile
// completionSteps в сам профиль не кладется: карта живет на отдельном
// эндпоинте, а клиент обязан переживать ее отсутствие.
func (s *Server) handleStudentProfile(c *gin.Context) {
	p, ok := s.store.StudentProfile(GetUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// handleStudentCompletionSteps - GET /student/profile/completion-steps
func (s *Server) handleStudentCompletionSteps(c *gin.Context) {
	p, ok := s.store.StudentProfile(GetUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}

	steps := profile.DeriveStudentCompletion(p)
	c.JSON(http.StatusOK, models.Completion{
		CompletionSteps:      steps,
		CompletionPercentage: profile.Percentage(steps),
	})
}

// handleStudentUpdatePersonal - PUT /student/profile/personal
func (s *Server) handleStudentUpdatePersonal(c *gin.Context) {
	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateStudentProfile(GetUserID(c), func(p *models.StudentProfile) {
		p.PersonalInfo = info
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Personal info updated"})
}

// handleStudentUpdateAcademic - PUT /student/profile/academic
func (s *Server) handleStudentUpdateAcademic(c *gin.Context) {
	var info models.AcademicInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateStudentProfile(GetUserID(c), func(p *models.StudentProfile) {
		p.AcademicInfo = info
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Academic info updated"})
}

// handleStudentUpdatePreferences - PUT /student/profile/preferences
func (s *Server) handleStudentUpdatePreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !s.store.UpdateStudentProfile(GetUserID(c), func(p *models.StudentProfile) {
		p.Preferences = &prefs
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}

// handleStudentUploadDocument - POST /student/profile/documents
func (s *Server) handleStudentUploadDocument(c *gin.Context) {
	docType := models.DocumentType(c.PostForm("type"))
	if !models.IsAllowedDocumentType(docType, models.StudentDocumentTypes) {
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
		UploadedAt: time.Now().UTC(),
	}

	if !s.store.UpdateStudentProfile(GetUserID(c), func(p *models.StudentProfile) {
		p.Documents = append(p.Documents, doc)
	}) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// handleStudentDeleteDocument - DELETE /student/profile/documents/:id
func (s *Server) handleStudentDeleteDocument(c *gin.Context) {
	docID := c.Param("id")
	found := false

	ok := s.store.UpdateStudentProfile(GetUserID(c), func(p *models.StudentProfile) {
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
