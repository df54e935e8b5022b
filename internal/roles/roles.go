package roles

import "campushub_client/internal/models"

// Маршруты, которые знает клиент
const (
	RouteLogin            = "/login"
	RouteVerifyEmail      = "/verify-email"
	RouteHome             = "/"
	RouteStudentDashboard = "/student/dashboard"
	RouteHostelDashboard  = "/hostel-owner/dashboard"
	RouteMessDashboard    = "/mess-owner/dashboard"
	RouteGymDashboard     = "/gym-owner/dashboard"
)

// Classify возвращает закрытое перечисление ролей. Любая неизвестная
// строка дает ("", false) - единая точка для разбора роли вместо
// разбросанных по view-слою строковых сравнений.
func Classify(raw string) (models.UserType, bool) {
	switch models.UserType(raw) {
	case models.UserTypeStudent:
		return models.UserTypeStudent, true
	case models.UserTypeHostelOwner:
		return models.UserTypeHostelOwner, true
	case models.UserTypeMessOwner:
		return models.UserTypeMessOwner, true
	case models.UserTypeGymOwner:
		return models.UserTypeGymOwner, true
	default:
		return "", false
	}
}

// IsOwner - true для всех трех ролей владельцев
func IsOwner(t models.UserType) bool {
	switch t {
	case models.UserTypeHostelOwner, models.UserTypeMessOwner, models.UserTypeGymOwner:
		return true
	default:
		return false
	}
}

// LandingRoute возвращает стартовый экран для роли после верификации.
// Для неизвестной роли - общий fallback на главную.
func LandingRoute(t models.UserType) string {
	switch t {
	case models.UserTypeStudent:
		return RouteStudentDashboard
	case models.UserTypeHostelOwner:
		return RouteHostelDashboard
	case models.UserTypeMessOwner:
		return RouteMessDashboard
	case models.UserTypeGymOwner:
		return RouteGymDashboard
	default:
		return RouteHome
	}
}
