package i18n

import "errors"

// Lang is one of the three language codes the site serves.
type Lang string

const (
	LangUZ Lang = "uz"
	LangRU Lang = "ru"
	LangEN Lang = "en"
)

// ErrUnsupportedLang is returned for any language code outside uz/ru/en.
var ErrUnsupportedLang = errors.New("unsupported language code")

// Parse validates a raw lang query value. An empty value falls back to uz;
// anything else outside the supported set is an error, never a silent default.
func Parse(value string) (Lang, error) {
	switch value {
	case "":
		return LangUZ, nil
	case string(LangUZ):
		return LangUZ, nil
	case string(LangRU):
		return LangRU, nil
	case string(LangEN):
		return LangEN, nil
	default:
		return "", ErrUnsupportedLang
	}
}

// Pick resolves one localized variant of a field. A missing translation falls
// back to the uz variant; the result may be empty but the function never fails.
func Pick(lang Lang, uz, ru, en string) string {
	var chosen string
	switch lang {
	case LangRU:
		chosen = ru
	case LangEN:
		chosen = en
	default:
		chosen = uz
	}
	if chosen == "" {
		return uz
	}
	return chosen
}

var superAdminOnlyMessages = map[Lang]string{
	LangUZ: "Bu amal faqat superadminlar uchun ruxsat etilgan",
	LangRU: "Это действие разрешено только администраторам",
	LangEN: "This action is allowed only for admins",
}

var moderatorOnlyMessages = map[Lang]string{
	LangUZ: "Bu amal faqat moderator va adminlar uchun ruxsat etilgan",
	LangRU: "Это действие разрешено только модераторам и администраторам",
	LangEN: "This action is allowed only for moderators and admins",
}

// SuperAdminOnly returns the localized 403 message for superadmin-gated routes.
func SuperAdminOnly(lang Lang) string {
	if msg, ok := superAdminOnlyMessages[lang]; ok {
		return msg
	}
	return superAdminOnlyMessages[LangUZ]
}

// ModeratorOnly returns the localized 403 message for the moderation tier.
func ModeratorOnly(lang Lang) string {
	if msg, ok := moderatorOnlyMessages[lang]; ok {
		return msg
	}
	return moderatorOnlyMessages[LangUZ]
}
