package entities

import "time"

// FuelDelivery - подтверждение заправки на конкретной точке.
// CompanyName и EmployeeName денормализованы намеренно: это исторический
// снимок на момент сдачи, переименование компании задним числом не должно
// менять старые записи.
type FuelDelivery struct {
	ID                int64
	JobCardID         int64
	CompanyID         int64
	CompanyName       string
	EmployeeName      string
	PhotoFilename     string
	SignatureFilename string
	Notes             *string
	CreatedAt         time.Time
}

type FuelDeliveryModify struct {
	JobCardID         *int64
	CompanyID         *int64
	CompanyName       *string
	EmployeeName      *string
	PhotoFilename     *string
	SignatureFilename *string
	Notes             *string
}

// FuelDeliverySubmission - сырой ввод водителя с формы заправки.
// PhotoData и SignatureData приходят как data-URI base64 строки.
type FuelDeliverySubmission struct {
	JobCardID     int64
	CompanyID     int64
	EmployeeName  string
	PhotoData     string
	SignatureData string
	Notes         *string
}
