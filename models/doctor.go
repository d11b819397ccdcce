package models

import "time"

// Doctor is a clinic practitioner managed by admins.
type Doctor struct {
	ID        string    `bson:"id" json:"_id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Specialty string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Img       string    `bson:"img,omitempty" json:"img,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
