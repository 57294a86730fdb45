// Package model defines the portfolio entities stored by folio and the
// explicit field allow-list each of them accepts from submitted forms.
package model

import (
	"time"
)

// ProfileID is the fixed primary key of the singleton profile row.
const ProfileID = 1

const (
	orderByIndex = "order_index asc, id asc"
	orderById    = "id asc"
)

// Entity is implemented by every collection managed through the admin API.
type Entity interface {
	// Apply copies the allow-listed fields present in f onto the entity.
	Apply(f Form) error
	// OrderBy is the canonical listing order as a SQL ORDER BY clause.
	OrderBy() string
}

// EntityPtr constrains PT to a pointer to T that implements Entity.
type EntityPtr[T any] interface {
	*T
	Entity
}

// User is the administrator credential.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	Id             int       `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Bio            string    `json:"bio" gorm:"type:text"`
	ProfilePicture string    `json:"profile_picture"`
	Resume         string    `json:"resume"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Apply sets the plain profile fields. profile_picture and resume are only
// ever set from uploads.
func (p *Profile) Apply(f Form) error {
	f.str("name", &p.Name)
	f.str("title", &p.Title)
	f.str("department", &p.Department)
	f.str("bio", &p.Bio)
	f.str("email", &p.Email)
	f.str("phone", &p.Phone)
	f.str("location", &p.Location)
	return nil
}

type Experience struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description" gorm:"type:text"`
	OrderIndex  int    `json:"order_index" gorm:"default:0;index"`
}

func (e *Experience) Apply(f Form) error {
	f.str("company", &e.Company)
	f.str("position", &e.Position)
	f.str("start_date", &e.StartDate)
	f.str("end_date", &e.EndDate)
	f.flag("current", &e.Current)
	f.str("description", &e.Description)
	return f.int("order_index", &e.OrderIndex)
}

func (*Experience) OrderBy() string { return orderByIndex }

// Education has no explicit ordering and lists in insertion order.
type Education struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description" gorm:"type:text"`
}

func (e *Education) Apply(f Form) error {
	f.str("institution", &e.Institution)
	f.str("degree", &e.Degree)
	f.str("field", &e.Field)
	f.str("start_date", &e.StartDate)
	f.str("end_date", &e.EndDate)
	f.flag("current", &e.Current)
	f.str("description", &e.Description)
	return nil
}

func (*Education) OrderBy() string { return orderById }

type Project struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	Technologies string `json:"technologies"` // comma separated, free text
	ProjectURL   string `json:"project_url" gorm:"column:project_url"`
	GithubURL    string `json:"github_url" gorm:"column:github_url"`
	Image        string `json:"image"`
	Featured     bool   `json:"featured"`
	OrderIndex   int    `json:"order_index" gorm:"default:0;index"`
}

func (p *Project) Apply(f Form) error {
	f.str("title", &p.Title)
	f.str("description", &p.Description)
	f.str("technologies", &p.Technologies)
	f.str("project_url", &p.ProjectURL)
	f.str("github_url", &p.GithubURL)
	f.str("image", &p.Image)
	f.flag("featured", &p.Featured)
	return f.int("order_index", &p.OrderIndex)
}

func (*Project) OrderBy() string { return orderByIndex }

type Achievement struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Date        string `json:"date"`
	Issuer      string `json:"issuer"`
	Image       string `json:"image"`
}

func (a *Achievement) Apply(f Form) error {
	f.str("title", &a.Title)
	f.str("description", &a.Description)
	f.str("date", &a.Date)
	f.str("issuer", &a.Issuer)
	f.str("image", &a.Image)
	return nil
}

func (*Achievement) OrderBy() string { return orderById }

type Technology struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"` // 1-5
	Icon        string `json:"icon"`        // icon class, e.g. "fab fa-python"
	OrderIndex  int    `json:"order_index" gorm:"default:0;index"`
}

func (t *Technology) Apply(f Form) error {
	f.str("name", &t.Name)
	f.str("category", &t.Category)
	f.str("icon", &t.Icon)
	if err := f.int("proficiency", &t.Proficiency); err != nil {
		return err
	}
	return f.int("order_index", &t.OrderIndex)
}

func (*Technology) OrderBy() string { return orderByIndex }
