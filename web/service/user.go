package service

import (
	"errors"

	"github.com/folio-panel/folio/database"
	"github.com/folio-panel/folio/database/model"
	"github.com/folio-panel/folio/logger"
	"github.com/folio-panel/folio/util/common"
	"github.com/folio-panel/folio/util/crypto"

	"gorm.io/gorm"
)

// UserService verifies and maintains the administrator credential.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetFirstUser() (*model.User, error) {
	user := &model.User{}
	err := s.db.Model(model.User{}).
		Order("id asc").
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the credential matching username and password, or
// common.ErrInvalidCredentials whichever of the two is wrong.
func (s *UserService) CheckUser(username string, password string) (*model.User, error) {
	user := &model.User{}

	err := s.db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, common.ErrInvalidCredentials
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// UpdateFirstUser replaces the administrator's username and password,
// creating the credential when none exists.
func (s *UserService) UpdateFirstUser(username string, password string) error {
	if username == "" {
		return errors.New("username can not be empty")
	} else if password == "" {
		return errors.New("password can not be empty")
	}
	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	user, err := s.GetFirstUser()
	if database.IsNotFound(err) {
		user = &model.User{Username: username, PasswordHash: hashedPassword}
		return s.db.Create(user).Error
	} else if err != nil {
		return err
	}
	user.Username = username
	user.PasswordHash = hashedPassword
	return s.db.Save(user).Error
}
