package service

import (
	"fmt"
	"strconv"

	"github.com/pasti-app/siswa-client/internal/models"
	"github.com/pasti-app/siswa-client/pkg/export"
)

const reportDateLayout = "02-01-2006"

// ReportService renders a fetched attendance table into downloadable report
// formats.
type ReportService struct{}

// NewReportService constructs a ReportService.
func NewReportService() *ReportService {
	return &ReportService{}
}

// AttendanceTable flattens the course page into an export table.
func (s *ReportService) AttendanceTable(info models.CourseInfoView, records []models.AttendanceRecord) export.Table {
	table := export.Table{
		Title:   fmt.Sprintf("Rekap Kehadiran %s (%s)", info.SubjectName, info.ClassName),
		Columns: []string{"Pertemuan", "Tanggal", "Materi", "Status"},
	}
	for _, record := range records {
		date := ""
		if !record.MeetingDate.IsZero() {
			date = record.MeetingDate.Format(reportDateLayout)
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(record.MeetingNumber),
			date,
			record.Material,
			string(record.Status),
		})
	}
	return table
}

// AttendanceCSV renders the attendance report as CSV bytes.
func (s *ReportService) AttendanceCSV(info models.CourseInfoView, records []models.AttendanceRecord) ([]byte, error) {
	return export.CSV(s.AttendanceTable(info, records))
}

// AttendancePDF renders the attendance report as PDF bytes.
func (s *ReportService) AttendancePDF(info models.CourseInfoView, records []models.AttendanceRecord) ([]byte, error) {
	return export.PDF(s.AttendanceTable(info, records))
}
