// Package history persists completed generations.
package history

import (
	"github.com/studypal/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service owns the history table. Records are write-once; there is no update.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// Create persists a record and assigns its id.
func (s *Service) Create(record *models.HistoryModel) error {
	return s.db.Create(record).Error
}

// List returns all records newest-first. A storage failure degrades to an
// empty list rather than surfacing an error to the caller.
func (s *Service) List() []models.HistoryModel {
	var items []models.HistoryModel
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		s.log.Error("history fetch failed", zap.Error(err))
		return []models.HistoryModel{}
	}
	if items == nil {
		items = []models.HistoryModel{}
	}
	return items
}

// Delete removes the record with the given id; deleting an absent id is a no-op.
func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.HistoryModel{}, id).Error
}
