package acquisition

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

func create(db *gorm.DB, targetId uuid.UUID, category string, partIndex uint32, sessionId uuid.UUID, acquiredAt time.Time) (Model, error) {
	e := &entity{
		TargetId:   targetId,
		Category:   category,
		PartIndex:  partIndex,
		SessionId:  sessionId,
		AcquiredAt: acquiredAt,
	}

	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}

func deleteByTarget(db *gorm.DB, targetId uuid.UUID) error {
	return db.Where("target_id = ?", targetId).Delete(&entity{}).Error
}
