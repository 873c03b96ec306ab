// internal/event/schedule.go
package event

// Schedule — очередь отложенных косметических действий с тиком срабатывания.
// Заменяет отвязанные таймеры: записи выполняются в начале тика, на котором
// наступил их срок, поэтому гонок с симуляцией нет в принципе.
type Schedule struct {
	entries []scheduled
}

type scheduled struct {
	at uint64
	fn func()
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

// After ставит fn на выполнение через delay тиков после now.
func (s *Schedule) After(now, delay uint64, fn func()) {
	s.entries = append(s.entries, scheduled{at: now + delay, fn: fn})
}

// Run выполняет все записи со сроком <= now и убирает их из очереди.
func (s *Schedule) Run(now uint64) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.at <= now {
			e.fn()
		} else {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Len возвращает число ожидающих записей.
func (s *Schedule) Len() int {
	return len(s.entries)
}
