package mailer

// BookingDetails данные бронирования для писем
type BookingDetails struct {
	Name        string
	Email       string
	EventDate   string // человекочитаемая дата, например "Tuesday, September 10, 2024"
	EventTime   string // слот, например "09:00 AM - 11:00 AM"
	Message     string
	PackageName string
	TotalPrice  string // отформатированная сумма, например "$200.00"
}
