package service

import (
	"mime/multipart"
	"time"

	"github.com/folio-panel/folio/database"
	"github.com/folio-panel/folio/database/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileService maintains the singleton profile row.
type ProfileService struct {
	db      *gorm.DB
	uploads *UploadService
}

func NewProfileService(db *gorm.DB, uploads *UploadService) *ProfileService {
	return &ProfileService{db: db, uploads: uploads}
}

// Get returns the profile, or nil when none has been saved yet.
func (s *ProfileService) Get() (*model.Profile, error) {
	return getProfile(s.db)
}

func getProfile(db *gorm.DB) (*model.Profile, error) {
	profile := &model.Profile{}
	err := db.First(profile, model.ProfileID).Error
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Save upserts the profile from the submitted fields and the uploaded files,
// keyed by slot name. Every upload is validated before anything is written;
// files in unknown slots are ignored.
func (s *ProfileService) Save(f model.Form, files map[string]*multipart.FileHeader) error {
	type upload struct {
		fh   *multipart.FileHeader
		name string
		dst  func(p *model.Profile) *string
	}
	slots := []struct {
		slot string
		dst  func(p *model.Profile) *string
	}{
		{SlotProfilePicture, func(p *model.Profile) *string { return &p.ProfilePicture }},
		{SlotResume, func(p *model.Profile) *string { return &p.Resume }},
	}

	uploads := make([]upload, 0, len(slots))
	for _, sl := range slots {
		fh, ok := files[sl.slot]
		if !ok || fh == nil || fh.Filename == "" {
			continue
		}
		name, err := s.uploads.Check(sl.slot, fh.Filename)
		if err != nil {
			return err
		}
		uploads = append(uploads, upload{fh: fh, name: name, dst: sl.dst})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := getProfile(tx)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = &model.Profile{Id: model.ProfileID}
		}
		if err := profile.Apply(f); err != nil {
			return err
		}
		for _, u := range uploads {
			if err := s.uploads.Store(u.fh, u.name); err != nil {
				return err
			}
			*u.dst(profile) = u.name
		}
		return upsertProfile(tx, profile)
	})
}

// upsertProfile writes p as the singleton row. A concurrent first save that
// already created the row is overwritten rather than rejected.
func upsertProfile(db *gorm.DB, p *model.Profile) error {
	p.Id = model.ProfileID
	p.UpdatedAt = time.Now()
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}
