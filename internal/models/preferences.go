package models

import "encoding/json"

// Настройки уведомлений
type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	BookingUpdates     bool `json:"bookingUpdates"`
	PromotionalOffers  bool `json:"promotionalOffers"`
}

// Настройки бронирования
type BookingSettings struct {
	AutoConfirmBookings bool `json:"autoConfirmBookings"`
	InstantBooking      bool `json:"instantBooking"`
}

// Настройки отображения профиля
type DisplaySettings struct {
	ShowContactInfo     bool `json:"showContactInfo"`
	ShowProfilePublicly bool `json:"showProfilePublicly"`
}

// Preferences - конфигурация аккаунта с тремя именованными подгруппами.
// После любого decode/merge все поля имеют значение (см. DefaultPreferences).
type Preferences struct {
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	BookingSettings      BookingSettings      `json:"bookingSettings"`
	DisplaySettings      DisplaySettings      `json:"displaySettings"`
}

// DefaultPreferences возвращает документированные значения по умолчанию.
func DefaultPreferences() Preferences {
	return Preferences{
		NotificationSettings: NotificationSettings{
			EmailNotifications: true,
			SMSNotifications:   false,
			BookingUpdates:     true,
			PromotionalOffers:  false,
		},
		BookingSettings: BookingSettings{
			AutoConfirmBookings: false,
			InstantBooking:      false,
		},
		DisplaySettings: DisplaySettings{
			ShowContactInfo:     true,
			ShowProfilePublicly: true,
		},
	}
}

// =========================================================================
// Patch-типы: частичные обновления, где nil = "поле не передано"
// =========================================================================

type NotificationSettingsPatch struct {
	EmailNotifications *bool `json:"emailNotifications,omitempty"`
	SMSNotifications   *bool `json:"smsNotifications,omitempty"`
	BookingUpdates     *bool `json:"bookingUpdates,omitempty"`
	PromotionalOffers  *bool `json:"promotionalOffers,omitempty"`
}

type BookingSettingsPatch struct {
	AutoConfirmBookings *bool `json:"autoConfirmBookings,omitempty"`
	InstantBooking      *bool `json:"instantBooking,omitempty"`
}

type DisplaySettingsPatch struct {
	ShowContactInfo     *bool `json:"showContactInfo,omitempty"`
	ShowProfilePublicly *bool `json:"showProfilePublicly,omitempty"`
}

type PreferencesPatch struct {
	NotificationSettings *NotificationSettingsPatch `json:"notificationSettings,omitempty"`
	BookingSettings      *BookingSettingsPatch      `json:"bookingSettings,omitempty"`
	DisplaySettings      *DisplaySettingsPatch      `json:"displaySettings,omitempty"`
}

// ApplyPatch накладывает частичное обновление на base поле-за-полем
// внутри каждой подгруппы. Непереданные подгруппы и поля не трогаются.
func ApplyPatch(base Preferences, patch *PreferencesPatch) Preferences {
	if patch == nil {
		return base
	}

	if p := patch.NotificationSettings; p != nil {
		applyBool(&base.NotificationSettings.EmailNotifications, p.EmailNotifications)
		applyBool(&base.NotificationSettings.SMSNotifications, p.SMSNotifications)
		applyBool(&base.NotificationSettings.BookingUpdates, p.BookingUpdates)
		applyBool(&base.NotificationSettings.PromotionalOffers, p.PromotionalOffers)
	}

	if p := patch.BookingSettings; p != nil {
		applyBool(&base.BookingSettings.AutoConfirmBookings, p.AutoConfirmBookings)
		applyBool(&base.BookingSettings.InstantBooking, p.InstantBooking)
	}

	if p := patch.DisplaySettings; p != nil {
		applyBool(&base.DisplaySettings.ShowContactInfo, p.ShowContactInfo)
		applyBool(&base.DisplaySettings.ShowProfilePublicly, p.ShowProfilePublicly)
	}

	return base
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// UnmarshalJSON декодирует частичный ответ сервера поверх значений по
// умолчанию, поэтому после decode ни одно поле не остается "пустым".
func (p *Preferences) UnmarshalJSON(data []byte) error {
	var patch PreferencesPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		return err
	}
	*p = ApplyPatch(DefaultPreferences(), &patch)
	return nil
}
