package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/service"
	"github.com/noah-isme/student-records-api/internal/store"
)

type testAPI struct {
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New()
	require.NoError(t, s.EnsureAdmin("Administrator", "admin@local", "0000000000", "admin123"))

	validate := validator.New()
	logger := zap.NewNop()

	auth := service.NewAuthService(s, validate, logger, service.AuthConfig{
		Secret: "test_secret", Expiration: time.Hour, Issuer: "test",
	})
	students := service.NewStudentService(s, validate, logger)
	reports := service.NewReportService(s, logger)

	r := gin.New()
	RegisterRoutes(r, "/api/v1", Services{
		Auth:        auth,
		Students:    students,
		Subjects:    service.NewSubjectService(s, validate, logger),
		Enrollments: service.NewEnrollmentService(s, validate, logger),
		Reports:     reports,
		Exports:     service.NewExportService(reports, nil, nil, logger),
		Dashboard:   service.NewDashboardService(s, logger),
	})

	return &testAPI{router: r}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}

func TestFullAcademicFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login(t, "admin@local", "admin123")

	// Admin creates a subject.
	rec := api.do(t, http.MethodPost, "/api/v1/subjects", admin, gin.H{
		"code": "CS101", "title": "Programming in C", "credits": 4, "semester": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var subjectEnvelope struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subjectEnvelope))
	subjectID := subjectEnvelope.Data.ID

	// Student signs up.
	rec = api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"full_name": "Alice", "email": "alice@example.com", "password": "secret1",
		"roll": "R1", "program": "BTech",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var signupEnvelope struct {
		Data struct {
			Student struct {
				ID string `json:"id"`
			} `json:"student"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signupEnvelope))
	studentID := signupEnvelope.Data.Student.ID

	// Admin records a mark.
	rec = api.do(t, http.MethodPost, "/api/v1/marks", admin, gin.H{
		"student_id": studentID, "subject_id": subjectID, "score": 90,
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// The student reads their own report.
	student := api.login(t, "alice@example.com", "secret1")
	rec = api.do(t, http.MethodGet, "/api/v1/students/"+studentID+"/report", student, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var reportEnvelope struct {
		Data struct {
			Semesters []struct {
				Semester    int    `json:"semester"`
				SGPADisplay string `json:"sgpa_display"`
			} `json:"semesters"`
			CGPADisplay string `json:"cgpa_display"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reportEnvelope))
	require.Len(t, reportEnvelope.Data.Semesters, 1)
	assert.Equal(t, "9.000", reportEnvelope.Data.Semesters[0].SGPADisplay)
	assert.Equal(t, "9.000", reportEnvelope.Data.CGPADisplay)

	// Deleting the subject cascades; SGPA becomes unavailable.
	rec = api.do(t, http.MethodDelete, "/api/v1/subjects/"+subjectID, admin, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/students/"+studentID+"/report", student, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reportEnvelope))
	assert.Empty(t, reportEnvelope.Data.Semesters)
	assert.Equal(t, "N/A", reportEnvelope.Data.CGPADisplay)
}

func TestRBACAndAuthBoundaries(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login(t, "admin@local", "admin123")

	rec := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"full_name": "Alice", "email": "alice@example.com", "password": "secret1", "roll": "R1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"full_name": "Bob", "email": "bob@example.com", "password": "secret1", "roll": "R2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var signupEnvelope struct {
		Data struct {
			Student struct {
				ID string `json:"id"`
			} `json:"student"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signupEnvelope))
	bobID := signupEnvelope.Data.Student.ID

	alice := api.login(t, "alice@example.com", "secret1")

	// No token at all.
	rec = api.do(t, http.MethodGet, "/api/v1/subjects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Students may not manage the catalog or other students.
	rec = api.do(t, http.MethodPost, "/api/v1/subjects", alice, gin.H{
		"code": "CS101", "title": "Programming", "credits": 4, "semester": 1,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = api.do(t, http.MethodDelete, "/api/v1/students/"+bobID, alice, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = api.do(t, http.MethodGet, "/api/v1/students/"+bobID+"/report", alice, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Duplicate signup reports a conflict.
	rec = api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"full_name": "Alice Again", "email": "ALICE@example.com", "password": "secret1", "roll": "R3",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Bad credentials stay generic.
	rec = api.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "ghost@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Admin summary counts.
	rec = api.do(t, http.MethodGet, "/api/v1/summary", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summaryEnvelope struct {
		Data struct {
			StudentCount int `json:"student_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaryEnvelope))
	assert.Equal(t, 2, summaryEnvelope.Data.StudentCount)
}

func TestReportExportEndpoint(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login(t, "admin@local", "admin123")

	rec := api.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"full_name": "Alice", "email": "alice@example.com", "password": "secret1", "roll": "R1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var signupEnvelope struct {
		Data struct {
			Student struct {
				ID string `json:"id"`
			} `json:"student"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signupEnvelope))
	studentID := signupEnvelope.Data.Student.ID

	rec = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/students/%s/report/export?format=csv", studentID), admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report_R1.csv")

	rec = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/students/%s/report/export?format=xlsx", studentID), admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
