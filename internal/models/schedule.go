package models

import (
	"time"

	"gorm.io/gorm"
)

type Schedule struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Title         string         `json:"title" gorm:"not null"`
	ScheduleType  string         `json:"schedule_type" gorm:"not null"` // site_visit, meeting, follow_up
	ScheduledTime time.Time      `json:"scheduled_time" gorm:"not null"`
	LeadID        *uint          `json:"lead_id"`
	PlotID        *uint          `json:"plot_id"`
	AssignedTo    uint           `json:"assigned_to" gorm:"not null;index"`
	Notified      bool           `json:"notified" gorm:"default:false"`
	Notes         string         `json:"notes" gorm:"type:text"`
	CreatedBy     uint           `json:"created_by" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type ScheduleType string

const (
	ScheduleSiteVisit ScheduleType = "site_visit"
	ScheduleMeeting   ScheduleType = "meeting"
	ScheduleFollowUp  ScheduleType = "follow_up"
)
