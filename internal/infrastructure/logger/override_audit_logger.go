package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OverrideRejectedEvent is one audit row for a rate override that was
// refused at create or update time. Owners dispute rate changes often
// enough that the rejections need to be queryable, not just logged.
type OverrideRejectedEvent struct {
	ID            uint `gorm:"primaryKey"`
	OwnerID       string
	CabID         string
	ShiftType     string
	DayOfWeek     string
	Rate          float64
	StartDate     time.Time
	EndDate       *time.Time
	ConflictingID string
	Reason        string
	Timestamp     time.Time
}

func (OverrideRejectedEvent) TableName() string {
	return "override_rejected_events"
}

type OverrideAuditLogger interface {
	LogOverrideRejected(ctx context.Context, event OverrideRejectedEvent) error
}

type PGOverrideAuditLogger struct {
	db *gorm.DB
}

func NewPGOverrideAuditLogger(db *gorm.DB) *PGOverrideAuditLogger {
	db.AutoMigrate(&OverrideRejectedEvent{})
	return &PGOverrideAuditLogger{db: db}
}

func (l *PGOverrideAuditLogger) LogOverrideRejected(ctx context.Context, event OverrideRejectedEvent) error {
	event.Timestamp = time.Now()
	return l.db.WithContext(ctx).Create(&event).Error
}
