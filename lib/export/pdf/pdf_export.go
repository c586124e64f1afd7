package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "recruitment-portal-backend/models/db"
)

const dateLayout = "2006-01-02"

// GenerateApplicationSummary renders a one-page overview of a submission for
// offline review.
func GenerateApplicationSummary(rec dbmodels.Application) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicationSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Application #%d - %s %s", rec.ID, rec.FirstName, rec.LastName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(4)

	rows := [][2]string{
		{"Position applied", rec.PositionApplied},
		{"Job ID", fmt.Sprintf("%d", rec.JobID)},
		{"Status", string(rec.Status)},
		{"Email", rec.Email},
		{"Phone", rec.Phone},
		{"Date of birth", rec.DateOfBirth.Format(dateLayout)},
		{"Gender", rec.Gender},
		{"Location", rec.Location},
		{"Qualification", rec.HighestQualification},
		{"Specialization", rec.Specialization},
		{"University", rec.University},
		{"College", rec.College},
		{"Year of passing", fmt.Sprintf("%d", rec.YearOfPassing)},
		{"Preferred work mode", rec.PreferredWorkMode},
		{"Expected salary", fmt.Sprintf("%d", rec.ExpectedSalary)},
		{"Experience level", string(rec.ExperienceLevel)},
	}
	if rec.ExperienceLevel == "experienced" {
		rows = append(rows,
			[2]string{"Previous company", rec.PreviousCompany},
			[2]string{"Previous role", rec.PreviousRole},
		)
		if rec.DateOfJoining != nil {
			rows = append(rows, [2]string{"Date of joining", rec.DateOfJoining.Format(dateLayout)})
		}
		if rec.RelievingDate != nil {
			rows = append(rows, [2]string{"Relieving date", rec.RelievingDate.Format(dateLayout)})
		}
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 7, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, row[1], "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Key skills", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, rec.KeySkills, "", "L", false)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Why hire me", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, rec.WhyHireMe, "", "L", false)

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
