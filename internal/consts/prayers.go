package consts

import "github.com/AidarKhafizov/prayer-notify-service/internal/domain"

// NotifiedPrayers — порядок проверки намазов в тике
var NotifiedPrayers = []domain.Prayer{
	domain.PrayerFajr,
	domain.PrayerDhuhr,
	domain.PrayerAsr,
	domain.PrayerMaghrib,
	domain.PrayerIsha,
}

// DefaultMadhab используется, когда у пользователя мазхаб не указан
const DefaultMadhab = "Hanafi"

// madhabMethods — маппинг мазхаба на номер метода расчёта в API Aladhan
var madhabMethods = map[string]int{
	"Hanafi":  1, // University of Islamic Sciences, Karachi
	"Shafi":   2, // Islamic Society of North America
	"Maliki":  3, // Muslim World League
	"Hanbali": 4, // Umm al-Qura University, Makkah
}

// MethodForMadhab — номер метода расчёта для мазхаба; по умолчанию Hanafi
func MethodForMadhab(madhab string) int {
	if m, ok := madhabMethods[madhab]; ok {
		return m
	}
	return madhabMethods[DefaultMadhab]
}

// prayerDisplayNames — отображаемые названия намазов для сообщений
var prayerDisplayNames = map[domain.Prayer]string{
	domain.PrayerFajr:    "Фаджр",
	domain.PrayerDhuhr:   "Зухр",
	domain.PrayerAsr:     "Аср",
	domain.PrayerMaghrib: "Магриб",
	domain.PrayerIsha:    "Иша",
}

func PrayerDisplayName(p domain.Prayer) string {
	if name, ok := prayerDisplayNames[p]; ok {
		return name
	}
	return string(p)
}
