package domain

import "time"

// Prayer — один из пяти намазов, по которым рассылаются уведомления
type Prayer string

const (
	PrayerFajr    Prayer = "Fajr"
	PrayerDhuhr   Prayer = "Dhuhr"
	PrayerAsr     Prayer = "Asr"
	PrayerMaghrib Prayer = "Maghrib"
	PrayerIsha    Prayer = "Isha"
)

// Timetable - расписание намазов для города на один день
type Timetable struct {
	City   string            `json:"city"`
	Date   time.Time         `json:"date"`   // День расписания (UTC, без времени)
	Madhab string            `json:"madhab"` // Мазхаб, по которому считалось расписание
	Times  map[Prayer]string `json:"times"`  // Время каждого намаза в формате "HH:MM"
}

// TimeFor — время намаза p в формате "HH:MM"; пустая строка, если намаза нет в расписании
func (t Timetable) TimeFor(p Prayer) string {
	return t.Times[p]
}
