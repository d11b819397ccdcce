package models

import "time"

// Booking represents a patient's reservation of one slot of one treatment on one date.
type Booking struct {
	ID            string    `bson:"id" json:"_id"`
	TreatmentID   string    `bson:"treatmentId,omitempty" json:"treatmentId,omitempty"`
	Treatment     string    `bson:"treatment" json:"treatment"`
	Date          string    `bson:"date" json:"date"` // matched by exact string equality
	Slot          string    `bson:"slot" json:"slot"`
	PatientEmail  string    `bson:"patientEmail" json:"patientEmail"`
	PatientName   string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64   `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the payload accepted by the booking submission endpoint.
type BookingInput struct {
	TreatmentID  string  `json:"treatmentId"`
	Treatment    string  `json:"treatment" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Slot         string  `json:"slot" binding:"required"`
	PatientEmail string  `json:"patientEmail" binding:"required,email"`
	PatientName  string  `json:"patientName"`
	Phone        string  `json:"phone"`
	Price        float64 `json:"price"`
}

// ToBooking converts the submission into an unpaid booking candidate.
func (in BookingInput) ToBooking() Booking {
	return Booking{
		TreatmentID:  in.TreatmentID,
		Treatment:    in.Treatment,
		Date:         in.Date,
		Slot:         in.Slot,
		PatientEmail: in.PatientEmail,
		PatientName:  in.PatientName,
		Phone:        in.Phone,
		Price:        in.Price,
	}
}

// AdmissionResult is returned by booking submission. A duplicate is reported with
// Success false and the booking already on record.
type AdmissionResult struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking,omitempty"`
	Result  *Booking `json:"result,omitempty"`
}
