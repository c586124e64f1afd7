package applicationapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recruitment-portal-backend/models"
)

func validSubmitRequest() SubmitRequest {
	return SubmitRequest{
		JobID:                7,
		FirstName:            "Asha",
		LastName:             "Verma",
		Phone:                "+919876543210",
		Email:                "asha.verma@example.com",
		DateOfBirth:          "1996-04-12",
		Gender:               "female",
		Location:             "Pune",
		PanNumber:            "ABCDE1234F",
		HighestQualification: "B.Tech",
		Specialization:       "Computer Science",
		University:           "Pune University",
		College:              "COEP",
		YearOfPassing:        2018,
		PositionApplied:      "Backend Engineer",
		PreferredWorkMode:    "hybrid",
		KeySkills:            "Go, PostgreSQL",
		ExpectedSalary:       1200000,
		WhyHireMe:            "I ship reliable services.",
		ExperienceLevel:      "experienced",
		PreviousCompany:      "Acme Corp",
		PreviousRole:         "Software Engineer",
		DateOfJoining:        "2018-07-01",
		RelievingDate:        "2023-01-31",
		CaptchaToken:         "test",
	}
}

func requireInvalidFields(t *testing.T, err error, fields ...string) {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(ValidationError)
	require.True(t, ok, "expected ValidationError, got %T", err)
	for _, field := range fields {
		require.Contains(t, vErr.Fields, field)
	}
}

func TestSubmitRequestValidate(t *testing.T) {
	t.Run("valid experienced", func(t *testing.T) {
		require.NoError(t, validSubmitRequest().Validate())
	})
	t.Run("valid fresher without history", func(t *testing.T) {
		req := validSubmitRequest()
		req.ExperienceLevel = "fresher"
		req.PreviousCompany = ""
		req.PreviousRole = ""
		req.DateOfJoining = ""
		req.RelievingDate = ""
		require.NoError(t, req.Validate())
	})
	t.Run("experienced requires history", func(t *testing.T) {
		req := validSubmitRequest()
		req.PreviousCompany = ""
		req.PreviousRole = ""
		req.DateOfJoining = ""
		req.RelievingDate = ""
		err := req.Validate()
		requireInvalidFields(t, err, "previous_company", "previous_role", "date_of_joining", "relieving_date")
	})
	t.Run("unknown experience level", func(t *testing.T) {
		req := validSubmitRequest()
		req.ExperienceLevel = "senior"
		requireInvalidFields(t, req.Validate(), "experience_level")
	})
	t.Run("bad email", func(t *testing.T) {
		req := validSubmitRequest()
		req.Email = "not-an-email"
		requireInvalidFields(t, req.Validate(), "email")
	})
	t.Run("bad date format", func(t *testing.T) {
		req := validSubmitRequest()
		req.DateOfBirth = "12.04.1996"
		requireInvalidFields(t, req.Validate(), "date_of_birth")
	})
	t.Run("missing required fields reported with form names", func(t *testing.T) {
		req := validSubmitRequest()
		req.FirstName = ""
		req.PanNumber = ""
		requireInvalidFields(t, req.Validate(), "first_name", "pan_number")
	})
	t.Run("linkedin url optional but checked when present", func(t *testing.T) {
		req := validSubmitRequest()
		req.LinkedinURL = "not a url"
		requireInvalidFields(t, req.Validate(), "linkedin_url")

		req.LinkedinURL = "https://www.linkedin.com/in/asha"
		require.NoError(t, req.Validate())
	})
}

func TestSubmitRequestToRecord(t *testing.T) {
	req := validSubmitRequest()
	rec := req.ToRecord("uploads/job_applications/a.pdf", "uploads/job_applications/b.pdf", "uploads/job_applications/c.png")

	require.Equal(t, models.ApplicationStatusPending, rec.Status)
	require.True(t, rec.CaptchaVerified)
	require.Equal(t, "uploads/job_applications/a.pdf", rec.PanCardFile)
	require.Equal(t, "uploads/job_applications/b.pdf", rec.ResumeFile)
	require.Equal(t, "uploads/job_applications/c.png", rec.PhotoFile)
	require.Equal(t, "1996-04-12", rec.DateOfBirth.Format("2006-01-02"))
	require.NotNil(t, rec.DateOfJoining)
	require.NotNil(t, rec.RelievingDate)
	require.Equal(t, "2018-07-01", rec.DateOfJoining.Format("2006-01-02"))

	t.Run("fresher leaves history dates empty", func(t *testing.T) {
		fresher := validSubmitRequest()
		fresher.ExperienceLevel = "fresher"
		fresher.PreviousCompany = ""
		fresher.PreviousRole = ""
		fresher.DateOfJoining = ""
		fresher.RelievingDate = ""
		rec := fresher.ToRecord("p", "r", "f")
		require.Nil(t, rec.DateOfJoining)
		require.Nil(t, rec.RelievingDate)
	})
}

func TestApplicationConvertDates(t *testing.T) {
	req := validSubmitRequest()
	rec := req.ToRecord("p", "r", "f")
	view := ApplicationConvert(rec)
	require.Equal(t, "1996-04-12", view.DateOfBirth)
	require.Equal(t, "2018-07-01", view.DateOfJoining)
	require.Equal(t, "2023-01-31", view.RelievingDate)

	rec.DateOfJoining = nil
	rec.RelievingDate = nil
	view = ApplicationConvert(rec)
	require.Empty(t, view.DateOfJoining)
	require.Empty(t, view.RelievingDate)
}
