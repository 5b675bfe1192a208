package editor

import (
	"context"
	"sync"

	"go-portfolio/internal/domain"
)

type ExperienceReader interface {
	Get(ctx context.Context, id int64) (*domain.WorkExperience, error)
}

// SkillClient edits the skills nested under an experience.
type SkillClient interface {
	Add(ctx context.Context, experienceID int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error)
	Update(ctx context.Context, id int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error)
	Delete(ctx context.Context, id int64) error
}

// ExperienceDetail is the view-model of one experience page. Its Skills
// section reloads the parent experience rather than a skill list.
type ExperienceDetail struct {
	id     int64
	reader ExperienceReader
	opts   Options

	Skills *Section[domain.ExperienceSkill]

	mu         sync.Mutex
	experience *domain.WorkExperience
	selectedID int64
}

func NewExperienceDetail(id int64, reader ExperienceReader, skills SkillClient, opts Options) *ExperienceDetail {
	d := &ExperienceDetail{id: id, reader: reader, opts: opts.withDefaults()}
	d.Skills = NewSection(Definition[domain.ExperienceSkill]{
		Noun: "skill",
		ID:   func(s domain.ExperienceSkill) int64 { return s.ID },
		Labels: func(s domain.ExperienceSkill) []string {
			return []string{s.SkillName}
		},
		Empty:  func() domain.ExperienceSkill { return domain.ExperienceSkill{} },
		List:   d.loadSkills,
		Writer: nestedSkills{experienceID: id, skills: skills},
	}, opts)
	return d
}

func (d *ExperienceDetail) ID() int64 { return d.id }

// Load fetches the experience with its skills.
func (d *ExperienceDetail) Load(ctx context.Context) error {
	return d.Skills.Load(ctx)
}

func (d *ExperienceDetail) loadSkills(ctx context.Context) ([]domain.ExperienceSkill, error) {
	exp, err := d.reader.Get(ctx, d.id)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.experience = exp
	d.mu.Unlock()
	return exp.SkillsAcquired, nil
}

// Experience is nil until the first successful Load.
func (d *ExperienceDetail) Experience() *domain.WorkExperience {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.experience == nil {
		return nil
	}
	exp := *d.experience
	return &exp
}

// SelectSkill shows the explanation of one skill.
func (d *ExperienceDetail) SelectSkill(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedID = id
}

func (d *ExperienceDetail) ClearSelection() {
	d.SelectSkill(0)
}

// SelectedSkill reports false when nothing is selected or the selected
// skill is gone after a reload.
func (d *ExperienceDetail) SelectedSkill() (domain.ExperienceSkill, bool) {
	d.mu.Lock()
	id := d.selectedID
	d.mu.Unlock()
	if id == 0 {
		return domain.ExperienceSkill{}, false
	}
	for _, s := range d.Skills.Items() {
		if s.ID == id {
			return s, true
		}
	}
	return domain.ExperienceSkill{}, false
}

type nestedSkills struct {
	experienceID int64
	skills       SkillClient
}

func (n nestedSkills) Create(ctx context.Context, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error) {
	return n.skills.Add(ctx, n.experienceID, skill)
}

func (n nestedSkills) Update(ctx context.Context, id int64, skill *domain.ExperienceSkill) (*domain.ExperienceSkill, error) {
	return n.skills.Update(ctx, id, skill)
}

func (n nestedSkills) Delete(ctx context.Context, id int64) error {
	return n.skills.Delete(ctx, id)
}
