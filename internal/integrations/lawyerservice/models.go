package lawyerservice

// Lawyer модель юриста из LawyerService
type Lawyer struct {
	ID         int64   `json:"id"`
	AccountID  int64   `json:"account_id"` // аккаунт маркетплейса, управляющий расписанием
	FullName   string  `json:"full_name"`
	Speciality string  `json:"speciality"`
	ServiceIDs []int64 `json:"service_ids"`
	IsActive   bool    `json:"is_active"`
}

// Service модель услуги из LawyerService
type Service struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	LawyerID int64   `json:"lawyer_id"`
}

// FreeSlot свободный слот юриста на конкретную дату
// Времена в формате HH:MM:SS
type FreeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Shift смена или выходной юриста
type Shift struct {
	ID        int64  `json:"id"`
	LawyerID  int64  `json:"lawyer_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Kind      string `json:"kind"` // work | day_off
}

// ErrorResponse модель ошибки от LawyerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
