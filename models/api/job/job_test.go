package jobapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validJobData() JobData {
	return JobData{
		Title:                 "Backend Engineer",
		Department:            "Engineering",
		WorkMode:              "hybrid",
		RolesResponsibilities: "Build and run services",
		RequiredSkills:        "Go, PostgreSQL",
		ExperienceMin:         2,
		ExperienceMax:         5,
		QualificationRequired: "B.Tech",
		SalaryMin:             900000,
		SalaryMax:             1500000,
		JobLocation:           "Pune",
		Openings:              3,
		ApplicationDeadline:   "2026-10-01",
	}
}

func TestJobDataValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validJobData().Validate())
	})
	t.Run("missing title", func(t *testing.T) {
		data := validJobData()
		data.Title = ""
		require.Error(t, data.Validate())
	})
	t.Run("missing department", func(t *testing.T) {
		data := validJobData()
		data.Department = ""
		require.Error(t, data.Validate())
	})
	t.Run("inverted experience range", func(t *testing.T) {
		data := validJobData()
		data.ExperienceMin = 6
		data.ExperienceMax = 2
		require.Error(t, data.Validate())
	})
	t.Run("inverted salary range", func(t *testing.T) {
		data := validJobData()
		data.SalaryMin = 2000000
		require.Error(t, data.Validate())
	})
	t.Run("bad deadline format", func(t *testing.T) {
		data := validJobData()
		data.ApplicationDeadline = "01.10.2026"
		require.Error(t, data.Validate())
	})
	t.Run("deadline is optional", func(t *testing.T) {
		data := validJobData()
		data.ApplicationDeadline = ""
		require.NoError(t, data.Validate())
	})
}

func TestJobConvertRoundTrip(t *testing.T) {
	data := validJobData()
	rec := data.ToRecord()
	rec.ID = 11

	view := JobConvert(rec)
	require.Equal(t, uint(11), view.ID)
	require.Equal(t, data, view.JobData)
}
