package models

import "time"

// ClickEvent records a single user interaction with a tracked element.
// Write-only from the site's point of view; the admin panel aggregates them.
type ClickEvent struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"type:varchar(191);not null;index" json:"event_id" validate:"required,max=191"`
	Target    string    `gorm:"type:varchar(191);not null;index" json:"target" validate:"required,max=191"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for the ClickEvent model
func (ClickEvent) TableName() string {
	return "click_events"
}
