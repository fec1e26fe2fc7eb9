package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/session"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
	"github.com/pasti-app/siswa-client/pkg/metrics"
)

func newTestServer(t *testing.T, register func(r *gin.Engine)) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server, recorder *metrics.Recorder) *Client {
	return NewClient(ClientParams{
		BaseURL:   server.URL,
		Tokens:    session.StaticToken("test-token"),
		Metrics:   recorder,
		UserAgent: "siswa-client-test",
	})
}

func TestListCoursesUnwrapsEnvelope(t *testing.T) {
	var gotAuth, gotRequestID string
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/matapelajaran/siswa/:id", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			gotRequestID = c.GetHeader("X-Request-ID")
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data": []gin.H{
					{
						"id":            "jp-3",
						"title":         "Biologi",
						"class":         "XII IPA 1",
						"semester":      "Ganjil",
						"teacher":       gin.H{"name": "Dewi Lestari", "nip": "19870101"},
						"absensi_count": 14,
					},
				},
				"count": 1,
			})
		})
	})

	client := newTestClient(server, nil)
	courses, err := client.ListCourses(context.Background(), "siswa", 42)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	require.Len(t, courses, 1)
	assert.Equal(t, "Biologi", courses[0].Title)
	assert.Equal(t, 14, courses[0].AttendanceCount)
}

func TestAttendanceDetailSendsStudentQuery(t *testing.T) {
	var gotStudentID string
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/detail-absensi/jadwal/:id", func(c *gin.Context) {
			gotStudentID = c.Query("siswa_id")
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data": []gin.H{
					{"id_pertemuan": 1, "pertemuan_ke": 1, "status_kehadiran": "Hadir"},
				},
			})
		})
	})

	client := newTestClient(server, nil)
	rows, err := client.AttendanceDetail(context.Background(), 3, 42)
	require.NoError(t, err)
	assert.Equal(t, "42", gotStudentID)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hadir", rows[0].Status)
}

func TestUnauthorizedMapsToSessionExpired(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/tugas", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token kadaluarsa"})
		})
	})

	client := newTestClient(server, nil)
	_, err := client.ListAssignments(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.IsSessionExpired(err))
}

func TestEnvelopeFailureMapsToRemoteDataError(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/tugas", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "data tidak ditemukan"})
		})
	})

	client := newTestClient(server, nil)
	_, err := client.ListAssignments(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrRemoteData))
	assert.Contains(t, err.Error(), "data tidak ditemukan")
}

func TestServerErrorMapsToRemoteDataError(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/tugas", func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "boom")
		})
	})

	client := newTestClient(server, nil)
	_, err := client.ListAssignments(context.Background())
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrRemoteData))
}

func TestSubmitAssignmentPostsJSONBody(t *testing.T) {
	var got dto.SubmitAssignmentRequest
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/users/tugas/:id/submit", func(c *gin.Context) {
			require.NoError(t, c.ShouldBindJSON(&got))
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "tersimpan"})
		})
	})

	client := newTestClient(server, nil)
	err := client.SubmitAssignment(context.Background(), 7, dto.SubmitAssignmentRequest{
		AnswerFile:  "https://cdn.example/jawaban.pdf",
		StudentNote: "selesai",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/jawaban.pdf", got.AnswerFile)
	assert.Equal(t, "selesai", got.StudentNote)
}

func TestDeleteSubmissionHitsSubmitPath(t *testing.T) {
	var hit bool
	server := newTestServer(t, func(r *gin.Engine) {
		r.DELETE("/users/tugas/:id/submit", func(c *gin.Context) {
			hit = true
			assert.Equal(t, "7", c.Param("id"))
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	})

	client := newTestClient(server, nil)
	require.NoError(t, client.DeleteSubmission(context.Background(), 7))
	assert.True(t, hit)
}

func TestRegisterTeacherSkipsAuthHeader(t *testing.T) {
	var gotAuth string
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/register-guru", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusCreated, gin.H{"success": true, "message": "terdaftar"})
		})
	})

	client := newTestClient(server, nil)
	err := client.RegisterTeacher(context.Background(), dto.RegisterTeacherRequest{
		NIP:             "198701012024",
		FullName:        "Dewi Lestari",
		Email:           "dewi@gmail.com",
		Password:        "Rahasia1!",
		ConfirmPassword: "Rahasia1!",
	})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUploadFileSendsMultipartAndUnwrapsURL(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/upload/tugas", func(c *gin.Context) {
			file, err := c.FormFile("file")
			require.NoError(t, err)
			assert.Equal(t, "jawaban.pdf", file.Filename)
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    gin.H{"url": "https://cdn.example/jawaban-7.pdf", "filename": "jawaban-7.pdf"},
			})
		})
	})

	client := newTestClient(server, nil)
	resp, err := client.UploadFile(context.Background(), "jawaban.pdf", strings.NewReader("%PDF-1.4 isi"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/jawaban-7.pdf", resp.URL)
	assert.Equal(t, "jawaban-7.pdf", resp.Filename)
}

func TestUploadFileMissingURLIsRemoteDataError(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/upload/tugas", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"filename": "jawaban.pdf"}})
		})
	})

	client := newTestClient(server, nil)
	_, err := client.UploadFile(context.Background(), "jawaban.pdf", strings.NewReader("isi"))
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrRemoteData))
}

func TestRequestsAreCounted(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/users/tugas", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": []gin.H{}})
		})
	})

	recorder := metrics.NewRecorder()
	client := newTestClient(server, recorder)
	_, err := client.ListAssignments(context.Background())
	require.NoError(t, err)

	families, err := recorder.Registry().Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() == "siswa_client_requests_total" {
			found = true
			require.Len(t, family.GetMetric(), 1)
			assert.Equal(t, float64(1), family.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}
