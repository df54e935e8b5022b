package profile

/*
Оба менеджера профиля (student и owner) разделяют одну форму state-машины:

    { profile, loading, error, completionSteps, completionPercentage }

и четыре вида переходов:

    REQUEST            -> loading=true, больше ничего не меняется
    SUCCESS            -> profile установлен, error сброшен, loading=false
    ERROR              -> error установлен, loading=false,
                          предыдущий profile НЕ трогается (stale лучше пустого)
    COMPLETION_SUCCESS -> completionSteps/percentage, независимо от профиля

Контракт консистентности: постусловие каждой мутации - "локальный кэш равен
состоянию сервера". Достигается полным refetch после записи, а не локальным
патчем; это нельзя "оптимизировать" в client-side patching, не пере-выведя
логику заполненности идентично серверной.
*/

// UploadLimits - pre-flight лимиты загрузки из конфигурации
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}
