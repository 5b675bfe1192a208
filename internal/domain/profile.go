package domain

import "time"

// About is a singleton.
type About struct {
	ID           int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Overview     string    `json:"overview" db:"overview" gorm:"type:text;not null"`
	ProfileImage string    `json:"profile_image,omitempty" db:"profile_image" gorm:"size:255;not null;default:''" validate:"max=255"`
	CreatedAt    time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitzero" db:"updated_at"`

	// OverviewHTML is the sanitized rendering of Overview (markdown).
	OverviewHTML string `json:"overview_html,omitempty" db:"-" gorm:"-"`
}

func (About) TableName() string { return "about" }
func (a *About) GetID() int64   { return a.ID }
func (a *About) SetID(id int64) { a.ID = id }

// Contact is a singleton.
type Contact struct {
	ID        int64     `json:"id,omitempty" db:"id" gorm:"primaryKey"`
	Email     string    `json:"email,omitempty" db:"email" gorm:"size:255;not null;default:''" validate:"max=255"`
	Phone     string    `json:"phone,omitempty" db:"phone" gorm:"size:50;not null;default:''" validate:"max=50"`
	LinkedIn  string    `json:"linkedin,omitempty" db:"linkedin" gorm:"column:linkedin;size:255;not null;default:''" validate:"max=255"`
	Github    string    `json:"github,omitempty" db:"github" gorm:"size:255;not null;default:''" validate:"max=255"`
	Location  string    `json:"location,omitempty" db:"location" gorm:"size:255;not null;default:''" validate:"max=255"`
	CVURL     string    `json:"cv_url,omitempty" db:"cv_url" gorm:"column:cv_url;size:255;not null;default:''" validate:"max=255"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

func (Contact) TableName() string { return "contact" }
func (c *Contact) GetID() int64   { return c.ID }
func (c *Contact) SetID(id int64) { c.ID = id }

// MarkdownRenderer turns the About overview into safe HTML.
type MarkdownRenderer interface {
	Render(source string) (string, error)
}

