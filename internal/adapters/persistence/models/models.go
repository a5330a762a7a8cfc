package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Appointment Table
// ============================================================

// Appointment represents the appointments table.
//
// Dates are stored as opaque text (the UI submits Persian-calendar strings
// such as "1403/01/01"); times are stored in 24-hour HH:MM form. The
// appointment date/time pair stays NULL until staff assign a slot.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	TrackingCode    string    `gorm:"size:20;uniqueIndex;not null" json:"trackingCode"`
	ApplicationDate string    `gorm:"size:20;not null" json:"applicationDate"`
	ApplicationTime string    `gorm:"size:10;not null" json:"applicationTime"`
	PaymentDate     string    `gorm:"size:20;not null" json:"paymentDate"`
	AppointmentDate *string   `gorm:"size:20" json:"appointmentDate"`
	AppointmentTime *string   `gorm:"size:10" json:"appointmentTime"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled reports whether staff already assigned a slot
func (a *Appointment) IsScheduled() bool {
	return a.AppointmentDate != nil
}

// ============================================================
// User Table
// ============================================================

// User represents the users table. The table is part of the persisted
// layout but no request path reads it; only the seeder writes here.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates/updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Appointment{},
		&User{},
	)
}
