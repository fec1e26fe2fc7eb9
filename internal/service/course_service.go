package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/models"
	"github.com/pasti-app/siswa-client/internal/normalize"
)

type courseAPI interface {
	ListCourses(ctx context.Context, scope string, id int) ([]dto.RawCourse, error)
	CourseInfo(ctx context.Context, scheduleID int64) (dto.RawCourseInfo, error)
	AttendanceDetail(ctx context.Context, scheduleID int64, studentID int) ([]dto.RawAttendance, error)
}

// Course list scopes understood by the backend.
const (
	CourseScopeStudent = "siswa"
	CourseScopeClass   = "kelas"
)

// CourseService loads the course dashboard and attendance detail pages.
type CourseService struct {
	api    courseAPI
	logger *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(api courseAPI, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{api: api, logger: logger}
}

// Courses fetches and normalizes the course list for the given scope.
func (s *CourseService) Courses(ctx context.Context, scope string, id int) ([]models.CourseView, error) {
	raw, err := s.api.ListCourses(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return normalize.Courses(raw), nil
}

// CoursePage fetches the course header and attendance rows together. Both
// requests run concurrently and the page fails as a whole if either fails:
// a half-loaded combined view is never returned.
func (s *CourseService) CoursePage(ctx context.Context, scheduleID int64, studentID int) (*models.CoursePage, error) {
	var (
		rawInfo       dto.RawCourseInfo
		rawAttendance []dto.RawAttendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawInfo, err = s.api.CourseInfo(gctx, scheduleID)
		return err
	})
	g.Go(func() error {
		var err error
		rawAttendance, err = s.api.AttendanceDetail(gctx, scheduleID, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("course page fetch failed",
			zap.Int64("schedule_id", scheduleID),
			zap.Error(err))
		return nil, err
	}

	return &models.CoursePage{
		Info:       normalize.CourseInfo(rawInfo),
		Attendance: normalize.AttendanceList(rawAttendance),
	}, nil
}
