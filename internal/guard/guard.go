package guard

import (
	"campushub_client/internal/models"
	"campushub_client/internal/roles"
	"campushub_client/internal/session"
)

// Action - результат решения guard-а
type Action string

const (
	// ActionWait - сессия еще восстанавливается, решение не принимается
	ActionWait Action = "wait"
	// ActionAllow - запрошенный view можно рендерить
	ActionAllow Action = "allow"
	// ActionRedirect - переход на Target вместо запрошенного пути
	ActionRedirect Action = "redirect"
)

// Decision - чистый результат без side effects
type Decision struct {
	Action Action
	Target string // Куда редиректить при ActionRedirect
	// Intended сохраняет исходный путь, чтобы вернуться после логина
	Intended string
}

// Decide - чистая функция (session, requestedPath, allowedRoles) -> Decision.
// Порядок проверок значим: верификация важнее роли, поэтому
// неверифицированный пользователь правильной роли все равно идет на
// verify-email, а не на home.
func Decide(snap session.Snapshot, requestedPath string, allowedRoles []models.UserType) Decision {
	// 1. Сессия восстанавливается - показываем индикатор загрузки
	if snap.Loading {
		return Decision{Action: ActionWait}
	}

	// 2. Залогинен, но ждет подтверждения email: активного user нет,
	// есть только pending-запись. Логин тут не поможет - на верификацию.
	if snap.User == nil && snap.PendingUser != nil {
		return Decision{
			Action: ActionRedirect,
			Target: roles.RouteVerifyEmail,
		}
	}

	// 3. Нет аутентифицированного пользователя - на логин с запоминанием цели.
	// Токен без user-записи - мертвый вес, сессией не считается.
	if snap.User == nil {
		return Decision{
			Action:   ActionRedirect,
			Target:   roles.RouteLogin,
			Intended: requestedPath,
		}
	}

	// 4. Пользователь есть, но email не подтвержден - на верификацию
	if !snap.User.IsVerified {
		return Decision{
			Action: ActionRedirect,
			Target: roles.RouteVerifyEmail,
		}
	}

	// 5. Проверка роли (пустой список = доступно всем ролям)
	if len(allowedRoles) > 0 && !containsRole(allowedRoles, snap.User.UserType) {
		return Decision{
			Action: ActionRedirect,
			Target: roles.RouteHome,
		}
	}

	// 6. Доступ разрешен
	return Decision{Action: ActionAllow}
}

func containsRole(allowed []models.UserType, t models.UserType) bool {
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
