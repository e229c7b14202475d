package models

import "gorm.io/datatypes"

// Project is a client-owned listing with a fixed seat capacity.
// SeatsAvailable only ever goes down through the approval workflow;
// TotalSeats is set at creation and never recomputed.
type Project struct {
	BaseModel
	ClientID       string         `gorm:"type:uuid;not null;index" json:"clientId"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"not null" json:"description"`
	CoverImage     string         `json:"coverImage"`
	Cost           float64        `gorm:"not null" json:"cost"`
	Duration       string         `gorm:"not null" json:"duration"`
	SeatsAvailable int            `gorm:"not null" json:"seatsAvailable"`
	TotalSeats     int            `gorm:"not null" json:"totalSeats"`
	Status         ProjectStatus  `gorm:"type:varchar(20);default:'active'" json:"status"`
	Tags           datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Requirements   datatypes.JSON `gorm:"type:jsonb" json:"requirements,omitempty"`
	Deliverables   datatypes.JSON `gorm:"type:jsonb" json:"deliverables,omitempty"`

	Client *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
