package acquisition

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	TargetId   uuid.UUID `gorm:"not null;uniqueIndex:idx_acquisition_part"`
	ID         uint32    `gorm:"primaryKey;autoIncrement;not null"`
	Category   string    `gorm:"not null;uniqueIndex:idx_acquisition_part"`
	PartIndex  uint32    `gorm:"not null;uniqueIndex:idx_acquisition_part"`
	SessionId  uuid.UUID `gorm:"not null"`
	AcquiredAt time.Time `gorm:"not null"`
}

func (e entity) TableName() string {
	return "acquisitions"
}
