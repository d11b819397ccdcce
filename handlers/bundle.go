// File: handlers/bundle.go
package handlers

import (
	"dentalcare/middleware"
	"dentalcare/utils"
)

// HandlerBundle groups the endpoint handlers and the collaborators the
// routing layer needs for authentication and authorization.
type HandlerBundle struct {
	Tokens middleware.TokenVerifier
	Roles  middleware.RoleResolver
	Health *utils.HealthMonitor

	Treatments *TreatmentHandler
	Bookings   *BookingHandler
	Payments   *PaymentHandler
	Users      *UserHandler
	Doctors    *DoctorHandler
}
