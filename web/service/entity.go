package service

import (
	"strconv"
	"strings"

	"github.com/folio-panel/folio/database"
	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/util/common"

	"gorm.io/gorm"
)

// EntityService lists, upserts and deletes one admin-managed collection.
type EntityService[T any, PT model.EntityPtr[T]] struct {
	db *gorm.DB
}

func NewEntityService[T any, PT model.EntityPtr[T]](db *gorm.DB) *EntityService[T, PT] {
	return &EntityService[T, PT]{db: db}
}

func listOrdered[T any, PT model.EntityPtr[T]](db *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	err := db.Order(PT(new(T)).OrderBy()).Find(&items).Error
	return items, err
}

// List returns every row in the collection's canonical order.
func (s *EntityService[T, PT]) List() ([]T, error) {
	return listOrdered[T, PT](s.db)
}

// Save creates a row when id is empty, otherwise applies f onto the row with
// that id. Only the fields present in f are changed on update.
func (s *EntityService[T, PT]) Save(id string, f model.Form) error {
	id = strings.TrimSpace(id)
	return s.db.Transaction(func(tx *gorm.DB) error {
		item := PT(new(T))
		if id == "" {
			if err := item.Apply(f); err != nil {
				return err
			}
			return tx.Create(item).Error
		}

		key, err := parseId(id)
		if err != nil {
			return err
		}
		if err := tx.First(item, key).Error; err != nil {
			if database.IsNotFound(err) {
				return common.ErrNotFound
			}
			return err
		}
		if err := item.Apply(f); err != nil {
			return err
		}
		return tx.Save(item).Error
	})
}

// Delete removes the row with the given id.
func (s *EntityService[T, PT]) Delete(id string) error {
	key, err := parseId(id)
	if err != nil {
		return err
	}
	res := s.db.Delete(PT(new(T)), key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Count returns the number of rows in the collection.
func (s *EntityService[T, PT]) Count() (int64, error) {
	var n int64
	err := s.db.Model(PT(new(T))).Count(&n).Error
	return n, err
}

// parseId treats anything that is not a positive integer as a missing row.
func parseId(id string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || key <= 0 {
		return 0, common.ErrNotFound
	}
	return key, nil
}
