package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrStudentSlotTaken возвращается при нарушении partial unique index
	// (student_email, event_date, time_slot): студент уже занят в это время
	ErrStudentSlotTaken = errors.New("appointment.repository: student already booked at this time slot")

	// ErrStudentCompanyTaken возвращается при нарушении partial unique index
	// (student_email, company_id, event_date): повторная запись к той же компании
	ErrStudentCompanyTaken = errors.New("appointment.repository: student already booked with this company")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("appointment.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
