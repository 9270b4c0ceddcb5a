package acquisition

import (
	"atlas-parts/database"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getByTarget(targetId uuid.UUID) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return database.SliceQuery[entity](db, map[string]interface{}{"target_id": targetId})
	}
}

func getByCategory(targetId uuid.UUID, category string) database.EntityProvider[[]entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return database.SliceQuery[entity](db, map[string]interface{}{"target_id": targetId, "category": category})
	}
}
