package domain

// Subscriber — снимок настроек одного пользователя на момент начала тика.
// В снимок попадают только пользователи с включённым глобальным тумблером
// уведомлений о намазах; по-намазные тумблеры фильтруются уже в памяти.
type Subscriber struct {
	UserID  int64 // Telegram chat_id
	Madhab  string
	Prayers map[Prayer]bool // Тумблеры по каждому намазу
}

// Wants - включён ли у подписчика конкретный намаз
func (s Subscriber) Wants(p Prayer) bool {
	return s.Prayers[p]
}
