package dbmodels

import (
	"time"

	"recruitment-portal-backend/models"
)

type Application struct {
	BaseModel
	JobID uint `gorm:"index;not null"`
	Job   *Job `gorm:"foreignKey:JobID"`

	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(20)"`
	Email       string    `gorm:"type:varchar(100)"`
	DateOfBirth time.Time `gorm:"type:date"`
	Gender      string    `gorm:"type:varchar(20)"`
	Location    string    `gorm:"type:varchar(100)"`

	PanNumber   string `gorm:"type:varchar(20)"`
	PanCardFile string `gorm:"type:varchar(255)"`
	ResumeFile  string `gorm:"type:varchar(255)"`
	PhotoFile   string `gorm:"type:varchar(255)"`

	LinkedinURL string `gorm:"type:varchar(255)"`

	HighestQualification string `gorm:"type:varchar(100)"`
	Specialization       string `gorm:"type:varchar(100)"`
	University           string `gorm:"type:varchar(150)"`
	College              string `gorm:"type:varchar(150)"`
	YearOfPassing        int

	PositionApplied   string `gorm:"type:varchar(150)"`
	PreferredWorkMode string `gorm:"type:varchar(50)"`
	KeySkills         string `gorm:"type:text"`
	ExpectedSalary    int
	WhyHireMe         string `gorm:"type:text"`

	ExperienceLevel models.ExperienceLevel `gorm:"type:varchar(50)"`
	PreviousCompany string                 `gorm:"type:varchar(150)"`
	PreviousRole    string                 `gorm:"type:varchar(150)"`
	DateOfJoining   *time.Time             `gorm:"type:date"`
	RelievingDate   *time.Time             `gorm:"type:date"`

	CaptchaVerified bool
	Status          models.ApplicationStatus `gorm:"type:varchar(50);default:'Pending'"`
}

// StoredFiles lists the relative paths owned exclusively by this row.
func (a Application) StoredFiles() []string {
	files := make([]string, 0, 3)
	for _, path := range []string{a.PanCardFile, a.ResumeFile, a.PhotoFile} {
		if path != "" {
			files = append(files, path)
		}
	}
	return files
}
