package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type Job struct {
	BaseModel
	Title                 string `gorm:"type:varchar(255);not null"`
	Department            string `gorm:"type:varchar(100);not null"`
	WorkMode              string `gorm:"type:varchar(50)"`
	RolesResponsibilities string `gorm:"type:text"`
	RequiredSkills        string `gorm:"type:text"`
	ExperienceMin         int
	ExperienceMax         int
	QualificationRequired string `gorm:"type:varchar(255)"`
	SalaryMin             int
	SalaryMax             int
	PerksBenefits         string `gorm:"type:text"`
	JobLocation           string `gorm:"type:varchar(100)"`
	JobLocality           string `gorm:"type:varchar(100)"`
	Openings              int
	ApplicationDeadline   time.Time `gorm:"type:date"`
}

func (j Job) Validate() error {
	if j.Title == "" {
		return errors.New("title is required")
	}
	if j.Department == "" {
		return errors.New("department is required")
	}
	if j.ExperienceMin > j.ExperienceMax {
		return errors.New("experience_min must not exceed experience_max")
	}
	if j.SalaryMin > j.SalaryMax {
		return errors.New("salary_min must not exceed salary_max")
	}
	return nil
}
