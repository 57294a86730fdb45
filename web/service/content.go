package service

import (
	"github.com/folio-panel/folio/database/model"

	"gorm.io/gorm"
)

// HomeContent is everything the public page shows.
type HomeContent struct {
	Profile      *model.Profile      `json:"profile"`
	Experiences  []model.Experience  `json:"experiences"`
	Education    []model.Education   `json:"education"`
	Projects     []model.Project     `json:"projects"`
	Achievements []model.Achievement `json:"achievements"`
	Technologies []model.Technology  `json:"technologies"`
}

// ContentService reads the whole portfolio in display order.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) GetHome() (*HomeContent, error) {
	var (
		h   HomeContent
		err error
	)
	if h.Profile, err = getProfile(s.db); err != nil {
		return nil, err
	}
	if h.Experiences, err = listOrdered[model.Experience](s.db); err != nil {
		return nil, err
	}
	if h.Education, err = listOrdered[model.Education](s.db); err != nil {
		return nil, err
	}
	if h.Projects, err = listOrdered[model.Project](s.db); err != nil {
		return nil, err
	}
	if h.Achievements, err = listOrdered[model.Achievement](s.db); err != nil {
		return nil, err
	}
	if h.Technologies, err = listOrdered[model.Technology](s.db); err != nil {
		return nil, err
	}
	return &h, nil
}
