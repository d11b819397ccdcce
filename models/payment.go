package models

import "time"

// Payment records a completed card payment for a booking.
type Payment struct {
	ID            string    `bson:"id" json:"_id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	PatientEmail  string    `bson:"patientEmail,omitempty" json:"patientEmail,omitempty"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentCompletion is the body sent by the client once the card charge succeeded.
type PaymentCompletion struct {
	TransactionID string  `json:"transactionId" binding:"required"`
	PatientEmail  string  `json:"patientEmail"`
	Amount        float64 `json:"amount"`
}

// PaymentIntentRequest carries the price of the service being paid for.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// PaymentIntent is the client-facing part of a provider payment intent.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	PatientEmail string `json:"patientEmail"`
	Treatment    string `json:"treatment"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
}
