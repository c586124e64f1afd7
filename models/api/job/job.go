package jobapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "recruitment-portal-backend/models/db"
)

const dateLayout = "2006-01-02"

type JobData struct {
	Title                 string `json:"title"`
	Department            string `json:"department"`
	WorkMode              string `json:"work_mode"`
	RolesResponsibilities string `json:"roles_responsibilities"`
	RequiredSkills        string `json:"required_skills"`
	ExperienceMin         int    `json:"experience_min"`
	ExperienceMax         int    `json:"experience_max"`
	QualificationRequired string `json:"qualification_required"`
	SalaryMin             int    `json:"salary_min"`
	SalaryMax             int    `json:"salary_max"`
	PerksBenefits         string `json:"perks_benefits,omitempty"`
	JobLocation           string `json:"job_location"`
	JobLocality           string `json:"job_locality,omitempty"`
	Openings              int    `json:"openings"`
	ApplicationDeadline   string `json:"application_deadline"`
}

func (r JobData) Validate() error {
	if r.ApplicationDeadline != "" {
		if _, err := time.Parse(dateLayout, r.ApplicationDeadline); err != nil {
			return errors.New("application_deadline must be formatted as 2006-01-02")
		}
	}
	return r.ToRecord().Validate()
}

func (r JobData) ToRecord() dbmodels.Job {
	deadline, _ := time.Parse(dateLayout, r.ApplicationDeadline)
	return dbmodels.Job{
		Title:                 r.Title,
		Department:            r.Department,
		WorkMode:              r.WorkMode,
		RolesResponsibilities: r.RolesResponsibilities,
		RequiredSkills:        r.RequiredSkills,
		ExperienceMin:         r.ExperienceMin,
		ExperienceMax:         r.ExperienceMax,
		QualificationRequired: r.QualificationRequired,
		SalaryMin:             r.SalaryMin,
		SalaryMax:             r.SalaryMax,
		PerksBenefits:         r.PerksBenefits,
		JobLocation:           r.JobLocation,
		JobLocality:           r.JobLocality,
		Openings:              r.Openings,
		ApplicationDeadline:   deadline,
	}
}

type JobView struct {
	ID uint `json:"id"`
	JobData
	CreatedAt time.Time `json:"created_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		ID: rec.ID,
		JobData: JobData{
			Title:                 rec.Title,
			Department:            rec.Department,
			WorkMode:              rec.WorkMode,
			RolesResponsibilities: rec.RolesResponsibilities,
			RequiredSkills:        rec.RequiredSkills,
			ExperienceMin:         rec.ExperienceMin,
			ExperienceMax:         rec.ExperienceMax,
			QualificationRequired: rec.QualificationRequired,
			SalaryMin:             rec.SalaryMin,
			SalaryMax:             rec.SalaryMax,
			PerksBenefits:         rec.PerksBenefits,
			JobLocation:           rec.JobLocation,
			JobLocality:           rec.JobLocality,
			Openings:              rec.Openings,
			ApplicationDeadline:   rec.ApplicationDeadline.Format(dateLayout),
		},
		CreatedAt: rec.CreatedAt,
	}
}

type PaginatedJobResponse struct {
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Data  []JobView `json:"data"`
}
