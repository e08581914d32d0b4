package models

import "time"

// AdminUser can manage the catalog and read inquiries. The public site never
// creates these; they are seeded or provisioned out of band.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
