package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/pasti-app/siswa-client/internal/models"
)

// FilterAll is the sentinel filter value meaning "no filter applied".
const FilterAll = "Semua"

// ListingService filters, groups and paginates fetched record collections for
// display. All operations are pure over the in-memory slices; only the
// deadline check reads the clock, and it reads it at call time so the result
// stays live between renders.
type ListingService struct {
	now func() time.Time
}

// NewListingService constructs a ListingService using the wall clock.
func NewListingService() *ListingService {
	return &ListingService{now: time.Now}
}

// FilterAttendance keeps records whose material contains the term
// (case-insensitive) or whose meeting number contains it as a digit string.
// An empty term returns the input unchanged, preserving order.
func (s *ListingService) FilterAttendance(records []models.AttendanceRecord, term string) []models.AttendanceRecord {
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	filtered := make([]models.AttendanceRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Material), needle) ||
			strings.Contains(strconv.Itoa(record.MeetingNumber), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Paginate slices items for a 1-based page. totalPages is ceil(len/pageSize),
// 0 for an empty list. Out-of-range pages yield an empty slice, never a panic;
// clamping is the caller's job.
func Paginate[T any](items []T, page, pageSize int) (pageItems []T, totalPages int) {
	if pageSize <= 0 {
		return nil, 0
	}
	totalPages = (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// FilterAssignments applies the status and subject filters conjunctively. The
// FilterAll sentinel bypasses its predicate entirely.
func (s *ListingService) FilterAssignments(records []models.AssignmentRecord, statusFilter, subjectFilter string) []models.AssignmentRecord {
	if statusFilter == FilterAll && subjectFilter == FilterAll {
		return records
	}

	filtered := make([]models.AssignmentRecord, 0, len(records))
	for _, record := range records {
		if statusFilter != FilterAll && string(record.Status) != statusFilter {
			continue
		}
		if subjectFilter != FilterAll && record.SubjectLabel != subjectFilter {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// SubjectGroup is one subject bucket of the grouped assignment view.
type SubjectGroup struct {
	Subject string
	Records []models.AssignmentRecord
}

// GroupBySubject buckets records by subject label. Group order follows the
// first appearance of each subject; order within a group follows input order.
func (s *ListingService) GroupBySubject(records []models.AssignmentRecord) []SubjectGroup {
	index := make(map[string]int, len(records))
	groups := make([]SubjectGroup, 0)

	for _, record := range records {
		subject := record.SubjectLabel
		if subject == "" {
			subject = "Mata Pelajaran Tidak Diketahui"
		}
		i, ok := index[subject]
		if !ok {
			i = len(groups)
			index[subject] = i
			groups = append(groups, SubjectGroup{Subject: subject})
		}
		groups[i].Records = append(groups[i].Records, record)
	}
	return groups
}

// Statistics counts submission states over the given (already filtered)
// record set, so the numbers always reflect the active filters.
func (s *ListingService) Statistics(records []models.AssignmentRecord) models.AssignmentStatistics {
	stats := models.AssignmentStatistics{Total: len(records)}
	for _, record := range records {
		switch record.Status {
		case models.SubmissionNotStarted:
			stats.NotStarted++
		case models.SubmissionInProgress:
			stats.InProgress++
		case models.SubmissionLate:
			stats.Late++
		case models.SubmissionGraded:
			stats.Graded++
		}
	}
	return stats
}

// StatusOptions returns the filter choices: the sentinel followed by each
// status present, in first-seen order.
func (s *ListingService) StatusOptions(records []models.AssignmentRecord) []string {
	return s.options(records, func(r models.AssignmentRecord) string { return string(r.Status) })
}

// SubjectOptions returns the subject filter choices: the sentinel followed by
// each subject present, in first-seen order.
func (s *ListingService) SubjectOptions(records []models.AssignmentRecord) []string {
	return s.options(records, func(r models.AssignmentRecord) string { return r.SubjectLabel })
}

func (s *ListingService) options(records []models.AssignmentRecord, key func(models.AssignmentRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := []string{FilterAll}
	for _, record := range records {
		k := key(record)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// IsPastDeadline reports whether the deadline has passed as of now. A zero
// deadline never counts as passed.
func (s *ListingService) IsPastDeadline(deadline time.Time) bool {
	if deadline.IsZero() {
		return false
	}
	return s.now().After(deadline)
}
