package applicationapimodels

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"recruitment-portal-backend/models"
	dbmodels "recruitment-portal-backend/models/db"
)

const dateLayout = "2006-01-02"

// SubmitRequest is the multipart form of a candidate submission.
// All structural and cross-field rules live in the validate tags, so the whole
// payload is checked in a single pass.
type SubmitRequest struct {
	JobID     uint   `form:"job_id" validate:"required"`
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
	Phone     string `form:"phone" validate:"required"`
	Email     string `form:"email" validate:"required,email"`
	// dates arrive as form text, 2006-01-02
	DateOfBirth string `form:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `form:"gender" validate:"required"`
	Location    string `form:"location" validate:"required"`

	PanNumber   string `form:"pan_number" validate:"required"`
	LinkedinURL string `form:"linkedin_url" validate:"omitempty,url"`

	HighestQualification string `form:"highest_qualification" validate:"required"`
	Specialization       string `form:"specialization" validate:"required"`
	University           string `form:"university" validate:"required"`
	College              string `form:"college" validate:"required"`
	YearOfPassing        int    `form:"year_of_passing" validate:"required,gte=1950"`

	PositionApplied   string `form:"position_applied" validate:"required"`
	PreferredWorkMode string `form:"preferred_work_mode" validate:"required"`
	KeySkills         string `form:"key_skills" validate:"required"`
	ExpectedSalary    int    `form:"expected_salary" validate:"required,gte=0"`
	WhyHireMe         string `form:"why_hire_me" validate:"required"`

	ExperienceLevel string `form:"experience_level" validate:"required,oneof=fresher experienced"`
	PreviousCompany string `form:"previous_company" validate:"required_if=ExperienceLevel experienced"`
	PreviousRole    string `form:"previous_role" validate:"required_if=ExperienceLevel experienced"`
	DateOfJoining   string `form:"date_of_joining" validate:"required_if=ExperienceLevel experienced,omitempty,datetime=2006-01-02"`
	RelievingDate   string `form:"relieving_date" validate:"required_if=ExperienceLevel experienced,omitempty,datetime=2006-01-02"`

	CaptchaToken string `form:"captcha_token" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report form field names, not Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError carries the offending field names for a 422 response.
type ValidationError struct {
	Fields []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(e.Fields, ", "))
}

func (r SubmitRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fe.Field())
	}
	return ValidationError{Fields: fields}
}

// ToRecord builds the row to persist. Validate must have passed, file paths come
// from file intake.
func (r SubmitRequest) ToRecord(panCardFile, resumeFile, photoFile string) dbmodels.Application {
	rec := dbmodels.Application{
		JobID:                r.JobID,
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		Phone:                r.Phone,
		Email:                r.Email,
		DateOfBirth:          parseDate(r.DateOfBirth),
		Gender:               r.Gender,
		Location:             r.Location,
		PanNumber:            r.PanNumber,
		PanCardFile:          panCardFile,
		ResumeFile:           resumeFile,
		PhotoFile:            photoFile,
		LinkedinURL:          r.LinkedinURL,
		HighestQualification: r.HighestQualification,
		Specialization:       r.Specialization,
		University:           r.University,
		College:              r.College,
		YearOfPassing:        r.YearOfPassing,
		PositionApplied:      r.PositionApplied,
		PreferredWorkMode:    r.PreferredWorkMode,
		KeySkills:            r.KeySkills,
		ExpectedSalary:       r.ExpectedSalary,
		WhyHireMe:            r.WhyHireMe,
		ExperienceLevel:      models.ExperienceLevel(r.ExperienceLevel),
		PreviousCompany:      r.PreviousCompany,
		PreviousRole:         r.PreviousRole,
		CaptchaVerified:      true,
		Status:               models.ApplicationStatusPending,
	}
	if r.DateOfJoining != "" {
		joined := parseDate(r.DateOfJoining)
		rec.DateOfJoining = &joined
	}
	if r.RelievingDate != "" {
		relieved := parseDate(r.RelievingDate)
		rec.RelievingDate = &relieved
	}
	return rec
}

func parseDate(value string) time.Time {
	t, _ := time.Parse(dateLayout, value)
	return t
}

type ApplicationView struct {
	ID          uint   `json:"id"`
	JobID       uint   `json:"job_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Location    string `json:"location"`

	PanNumber   string `json:"pan_number"`
	PanCardFile string `json:"pan_card_file"`
	ResumeFile  string `json:"resume_file"`
	PhotoFile   string `json:"photo_file"`

	LinkedinURL string `json:"linkedin_url,omitempty"`

	HighestQualification string `json:"highest_qualification"`
	Specialization       string `json:"specialization"`
	University           string `json:"university"`
	College              string `json:"college"`
	YearOfPassing        int    `json:"year_of_passing"`

	PositionApplied   string `json:"position_applied"`
	PreferredWorkMode string `json:"preferred_work_mode"`
	KeySkills         string `json:"key_skills"`
	ExpectedSalary    int    `json:"expected_salary"`
	WhyHireMe         string `json:"why_hire_me"`

	ExperienceLevel string `json:"experience_level"`
	PreviousCompany string `json:"previous_company,omitempty"`
	PreviousRole    string `json:"previous_role,omitempty"`
	DateOfJoining   string `json:"date_of_joining,omitempty"`
	RelievingDate   string `json:"relieving_date,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	view := ApplicationView{
		ID:                   rec.ID,
		JobID:                rec.JobID,
		FirstName:            rec.FirstName,
		LastName:             rec.LastName,
		Phone:                rec.Phone,
		Email:                rec.Email,
		DateOfBirth:          rec.DateOfBirth.Format(dateLayout),
		Gender:               rec.Gender,
		Location:             rec.Location,
		PanNumber:            rec.PanNumber,
		PanCardFile:          rec.PanCardFile,
		ResumeFile:           rec.ResumeFile,
		PhotoFile:            rec.PhotoFile,
		LinkedinURL:          rec.LinkedinURL,
		HighestQualification: rec.HighestQualification,
		Specialization:       rec.Specialization,
		University:           rec.University,
		College:              rec.College,
		YearOfPassing:        rec.YearOfPassing,
		PositionApplied:      rec.PositionApplied,
		PreferredWorkMode:    rec.PreferredWorkMode,
		KeySkills:            rec.KeySkills,
		ExpectedSalary:       rec.ExpectedSalary,
		WhyHireMe:            rec.WhyHireMe,
		ExperienceLevel:      string(rec.ExperienceLevel),
		PreviousCompany:      rec.PreviousCompany,
		PreviousRole:         rec.PreviousRole,
		Status:               string(rec.Status),
		CreatedAt:            rec.CreatedAt,
	}
	if rec.DateOfJoining != nil {
		view.DateOfJoining = rec.DateOfJoining.Format(dateLayout)
	}
	if rec.RelievingDate != nil {
		view.RelievingDate = rec.RelievingDate.Format(dateLayout)
	}
	return view
}

// ListFilter narrows the admin listing. Both filters are exact match.
type ListFilter struct {
	JobID  uint   `query:"job_id"`
	Status string `query:"status"`
}

// Stats is the status aggregate. It is scoped by job_id only, never by the
// status filter of the listing it accompanies.
type Stats struct {
	Total       int64            `json:"total"`
	Pending     int64            `json:"pending"`
	Shortlisted int64            `json:"shortlisted"`
	Maybe       int64            `json:"maybe"`
	Rejected    int64            `json:"rejected"`
	ByStatus    map[string]int64 `json:"by_status"`
}

type ListResponse struct {
	Applications []ApplicationView `json:"applications"`
	Stats        Stats             `json:"stats"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" query:"status"`
}

type StatusUpdateResponse struct {
	ID        uint   `json:"id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
	Message   string `json:"message"`
}

type BulkDeleteResponse struct {
	Deleted int    `json:"deleted"`
	Message string `json:"message"`
}
