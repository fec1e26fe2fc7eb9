package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/pasti-app/siswa-client/internal/api"
	"github.com/pasti-app/siswa-client/internal/models"
	"github.com/pasti-app/siswa-client/internal/service"
	"github.com/pasti-app/siswa-client/internal/session"
	"github.com/pasti-app/siswa-client/internal/validation"
	"github.com/pasti-app/siswa-client/pkg/config"
	"github.com/pasti-app/siswa-client/pkg/logger"
	"github.com/pasti-app/siswa-client/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	// Registration is the one public command; everything else needs a
	// usable token up front.
	var claims *session.Claims
	if os.Args[1] != "register" {
		claims, err = session.Decode(cfg.Auth.Token)
		if err != nil {
			logr.Sugar().Fatalw("invalid API token", "error", err)
		}
		if claims.Expired(time.Now()) {
			logr.Sugar().Fatal("API token expired, log in again")
		}
	}

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder()
	}

	client := api.NewClient(api.ClientParams{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Tokens:     session.StaticToken(cfg.Auth.Token),
		Logger:     logr,
		Metrics:    recorder,
		UserAgent:  cfg.API.UserAgent,
	})

	ctx := context.Background()

	switch os.Args[1] {
	case "courses":
		runCourses(ctx, client, logr, claims)
	case "attendance":
		runAttendance(ctx, client, logr, cfg, claims, os.Args[2:])
	case "assignments":
		runAssignments(ctx, client, logr, recorder)
	case "submit":
		runSubmit(ctx, client, logr, cfg, recorder, os.Args[2:])
	case "register":
		runRegister(ctx, client, logr, cfg, os.Args[2:])
	case "export":
		runExport(ctx, client, logr, cfg, claims, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: siswa-cli <courses | attendance <schedule-id> [page] | assignments | submit <task-id> <file> [note] | register <nip> <nama> <email> <password> | export <schedule-id> <csv|pdf>>")
}

func runCourses(ctx context.Context, client *api.Client, logr *zap.Logger, claims *session.Claims) {
	courses := service.NewCourseService(client, logr)
	list, err := courses.Courses(ctx, service.CourseScopeStudent, claims.ID)
	if err != nil {
		logr.Sugar().Fatalw("failed to fetch courses", "error", err)
	}

	for _, course := range list {
		fmt.Printf("%-6s %-40s %-10s %s (%d pertemuan)\n",
			course.ID, course.Title, course.ClassName, course.TeacherName, course.AttendanceCount)
	}
}

func runAttendance(ctx context.Context, client *api.Client, logr *zap.Logger, cfg *config.Config, claims *session.Claims, args []string) {
	scheduleID := parseID(args, "attendance <schedule-id> [page]")
	pageNum := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "invalid page %q\n", args[1])
			os.Exit(2)
		}
		pageNum = n
	}

	courses := service.NewCourseService(client, logr)
	page, err := courses.CoursePage(ctx, scheduleID, claims.ID)
	if err != nil {
		logr.Sugar().Fatalw("failed to fetch attendance", "error", err)
	}

	rows, totalPages := service.Paginate(page.Attendance, pageNum, cfg.Listing.PageSize)

	fmt.Printf("%s (%s) - %s\n\n", page.Info.SubjectName, page.Info.ClassName, page.Info.TeacherName)
	for _, record := range rows {
		date := "-"
		if !record.MeetingDate.IsZero() {
			date = record.MeetingDate.Format("02-01-2006")
		}
		fmt.Printf("Pertemuan %-3d %-12s %-40s %s\n",
			record.MeetingNumber, date, record.Material, record.Status)
	}
	if totalPages > 1 {
		fmt.Printf("\nHalaman %d dari %d\n", pageNum, totalPages)
	}
}

func runAssignments(ctx context.Context, client *api.Client, logr *zap.Logger, recorder *metrics.Recorder) {
	submissions := service.NewSubmissionService(client, logr, recorder)
	records, err := submissions.Assignments(ctx)
	if err != nil {
		logr.Sugar().Fatalw("failed to fetch assignments", "error", err)
	}

	listing := service.NewListingService()
	stats := listing.Statistics(records)
	fmt.Printf("Total %d | Belum %d | Mengerjakan %d | Terlambat %d | Dinilai %d\n\n",
		stats.Total, stats.NotStarted, stats.InProgress, stats.Late, stats.Graded)

	for _, group := range listing.GroupBySubject(records) {
		fmt.Printf("== %s (%d tugas)\n", group.Subject, len(group.Records))
		for _, record := range group.Records {
			deadline := "-"
			if !record.Deadline.IsZero() {
				deadline = record.Deadline.Format("02-01-2006 15:04")
			}
			marker := ""
			if listing.IsPastDeadline(record.Deadline) && record.Status == models.SubmissionNotStarted {
				marker = " (!)"
			}
			fmt.Printf("  [%d] %-40s deadline %s  %s%s\n",
				record.TaskID, record.Title, deadline, record.Status, marker)
		}
	}
}

func runSubmit(ctx context.Context, client *api.Client, logr *zap.Logger, cfg *config.Config, recorder *metrics.Recorder, args []string) {
	taskID := parseID(args, "submit <task-id> <file> [note]")
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: siswa-cli submit <task-id> <file> [note]")
		os.Exit(2)
	}
	filePath := args[1]

	submissions := service.NewSubmissionService(client, logr, recorder)
	records, err := submissions.Assignments(ctx)
	if err != nil {
		logr.Sugar().Fatalw("failed to fetch assignments", "error", err)
	}

	var draft *service.Draft
	for _, record := range records {
		if record.TaskID == taskID {
			draft = submissions.OpenDraft(record)
			break
		}
	}
	if draft == nil {
		logr.Sugar().Fatalw("assignment not found", "task_id", taskID)
	}
	if len(args) > 2 {
		draft.Note = args[2]
	}

	info, err := os.Stat(filePath)
	if err != nil {
		logr.Sugar().Fatalw("cannot read answer file", "path", filePath, "error", err)
	}
	policy := service.UploadPolicy{
		MaxFileSizeBytes:  cfg.Upload.MaxFileSizeBytes,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
	}
	if err := policy.Check(info.Name(), info.Size()); err != nil {
		logr.Sugar().Fatalw("answer file rejected", "path", filePath, "error", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		logr.Sugar().Fatalw("cannot open answer file", "path", filePath, "error", err)
	}
	defer file.Close()
	draft.AttachFile(info.Name(), file)

	outcome, err := submissions.Submit(ctx, draft)
	if err != nil {
		logr.Sugar().Fatalw("failed to submit assignment", "task_id", taskID, "error", err)
	}
	if outcome.Degraded {
		fmt.Println("Tersimpan (upload gagal, nama file dikirim sebagai placeholder)")
	} else {
		fmt.Println("Tersimpan")
	}
}

func runRegister(ctx context.Context, client *api.Client, logr *zap.Logger, cfg *config.Config, args []string) {
	if len(args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: siswa-cli register <nip> <nama> <email> <password>")
		os.Exit(2)
	}

	form := validation.NewForm(validation.NewValidator(cfg.Email.AllowedDomains))
	form.SetIdentifier(args[0])
	form.SetFullName(args[1])
	form.SetEmail(args[2])
	form.SetPassword(args[3])
	form.SetConfirmPassword(args[3])

	if !form.Valid() {
		fields := []struct {
			label string
			state validation.FieldState
		}{
			{"NIP", form.Identifier},
			{"Nama", form.FullName},
			{"Email", form.Email},
			{"Password", form.Password},
			{"Konfirmasi", form.ConfirmPassword},
		}
		for _, field := range fields {
			if !field.state.Valid {
				message := field.state.Message
				if message == "" {
					message = "wajib diisi"
				}
				fmt.Fprintf(os.Stderr, "%s: %s\n", field.label, message)
			}
		}
		os.Exit(1)
	}

	registrations := service.NewRegistrationService(client, nil, logr)
	if err := registrations.Register(ctx, form); err != nil {
		logr.Sugar().Fatalw("registration failed", "error", err)
	}
	fmt.Println("Pendaftaran berhasil")
}

func runExport(ctx context.Context, client *api.Client, logr *zap.Logger, cfg *config.Config, claims *session.Claims, args []string) {
	scheduleID := parseID(args, "export <schedule-id> <csv|pdf>")
	format := "csv"
	if len(args) > 1 {
		format = args[1]
	}

	courses := service.NewCourseService(client, logr)
	page, err := courses.CoursePage(ctx, scheduleID, claims.ID)
	if err != nil {
		logr.Sugar().Fatalw("failed to fetch attendance", "error", err)
	}

	reports := service.NewReportService()
	var payload []byte
	switch format {
	case "csv":
		payload, err = reports.AttendanceCSV(page.Info, page.Attendance)
	case "pdf":
		payload, err = reports.AttendancePDF(page.Info, page.Attendance)
	default:
		logr.Sugar().Fatalw("unknown export format", "format", format)
	}
	if err != nil {
		logr.Sugar().Fatalw("failed to render report", "error", err)
	}

	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		logr.Sugar().Fatalw("failed to create export dir", "error", err)
	}
	name := fmt.Sprintf("kehadiran_%d_%s.%s", scheduleID, time.Now().Format("20060102_150405"), format)
	path := filepath.Join(cfg.Export.OutputDir, name)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		logr.Sugar().Fatalw("failed to write report", "error", err)
	}
	fmt.Println(path)
}

func parseID(args []string, usageHint string) int64 {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: siswa-cli "+usageHint)
		os.Exit(2)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid schedule id %q\n", args[0])
		os.Exit(2)
	}
	return id
}
