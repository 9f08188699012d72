package get_available_slots

// Request модель запроса занятости механика
type Request struct {
	Date     string
	Location string
	Mechanic string
}

// Response модель ответа: занятые и свободные слоты
type Response struct {
	BookedSlots    []string // в порядке создания бронирований
	AvailableSlots []string // в порядке расписания
}
