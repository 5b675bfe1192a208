package domain

import "time"

type SocialLink struct {
	ID        int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Platform  string    `json:"platform" db:"platform" gorm:"size:50;not null" validate:"notblank,max=50"`
	URL       string    `json:"url" db:"url" gorm:"size:255;not null" validate:"notblank,max=255"`
	Icon      string    `json:"icon,omitempty" db:"icon" gorm:"size:255;not null;default:''" validate:"max=255"`
	Order     int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (SocialLink) TableName() string { return "social_links" }
func (s *SocialLink) GetID() int64   { return s.ID }
func (s *SocialLink) SetID(id int64) { s.ID = id }

type Skill struct {
	ID        int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"size:100;not null" validate:"notblank,max=100"`
	Category  string    `json:"category,omitempty" db:"category" gorm:"size:50;not null;default:''" validate:"max=50"`
	Icon      string    `json:"icon,omitempty" db:"icon" gorm:"size:255;not null;default:''" validate:"max=255"`
	Order     int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (Skill) TableName() string { return "skills" }
func (s *Skill) GetID() int64   { return s.ID }
func (s *Skill) SetID(id int64) { s.ID = id }

type Service struct {
	ID          int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"size:200;not null" validate:"notblank,max=200"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null" validate:"notblank"`
	Icon        string    `json:"icon,omitempty" db:"icon" gorm:"size:255;not null;default:''" validate:"max=255"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt   time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (Service) TableName() string { return "services" }
func (s *Service) GetID() int64   { return s.ID }
func (s *Service) SetID(id int64) { s.ID = id }

type Certification struct {
	ID         int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Name       string    `json:"name" db:"name" gorm:"size:200;not null" validate:"notblank,max=200"`
	Issuer     string    `json:"issuer,omitempty" db:"issuer" gorm:"size:200;not null;default:''" validate:"max=200"`
	BadgeImage string    `json:"badge_image,omitempty" db:"badge_image" gorm:"size:255;not null;default:''" validate:"max=255"`
	CertImage  string    `json:"cert_image,omitempty" db:"cert_image" gorm:"size:255;not null;default:''" validate:"max=255"`
	IssuedDate Date      `json:"issued_date,omitzero" db:"issued_date"`
	Order      int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt  time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (Certification) TableName() string { return "certifications" }
func (c *Certification) GetID() int64   { return c.ID }
func (c *Certification) SetID(id int64) { c.ID = id }

type Project struct {
	ID           int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Name         string    `json:"name" db:"name" gorm:"size:200;not null" validate:"notblank,max=200"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null" validate:"notblank"`
	Image        string    `json:"image,omitempty" db:"image" gorm:"size:255;not null;default:''" validate:"max=255"`
	LiveURL      string    `json:"live_url,omitempty" db:"live_url" gorm:"size:255;not null;default:''" validate:"max=255"`
	GithubURL    string    `json:"github_url,omitempty" db:"github_url" gorm:"size:255;not null;default:''" validate:"max=255"`
	Technologies string    `json:"technologies,omitempty" db:"technologies" gorm:"type:text;not null;default:''"`
	Order        int       `json:"order" db:"order" gorm:"column:order;not null"`
	CreatedAt    time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (Project) TableName() string { return "projects" }
func (p *Project) GetID() int64   { return p.ID }
func (p *Project) SetID(id int64) { p.ID = id }
