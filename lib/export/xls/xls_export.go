package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "recruitment-portal-backend/models/db"
)

type Provider interface {
	ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Name", "Contacts", "Job ID", "Position", "Experience level", "Expected salary", "Applied on", "Status"}

func (i impl) ExportApplicationList(list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Name"
		col := 1
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v %v", item.FirstName, item.LastName)); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Job ID"
		col++
		if err := writeColumn(f, sheet, col, row, item.JobID); err != nil {
			return row, err
		}

		// "Position"
		col++
		if err := writeColumn(f, sheet, col, row, item.PositionApplied); err != nil {
			return row, err
		}

		// "Experience level"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.ExperienceLevel)); err != nil {
			return row, err
		}

		// "Expected salary"
		col++
		if err := writeColumn(f, sheet, col, row, item.ExpectedSalary); err != nil {
			return row, err
		}

		// "Applied on"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}
	}
	return row, nil
}
