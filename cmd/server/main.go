package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-records-api/internal/handler"
	"github.com/noah-isme/student-records-api/internal/middleware"
	"github.com/noah-isme/student-records-api/internal/models"
	"github.com/noah-isme/student-records-api/internal/service"
	"github.com/noah-isme/student-records-api/internal/store"
	"github.com/noah-isme/student-records-api/pkg/config"
	"github.com/noah-isme/student-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-records-api/pkg/middleware/requestid"
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New()
	if err := st.EnsureAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Phone, cfg.Admin.Password); err != nil {
		logr.Sugar().Fatalw("failed to bootstrap admin account", "error", err)
	}
	if cfg.Demo.Seed {
		seedDemo(st, logr)
	}

	validate := validator.New()

	authService := service.NewAuthService(st, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	studentService := service.NewStudentService(st, validate, logr)
	subjectService := service.NewSubjectService(st, validate, logr)
	enrollmentService := service.NewEnrollmentService(st, validate, logr)
	reportService := service.NewReportService(st, logr)
	exportService := service.NewExportService(reportService, nil, nil, logr)
	dashboardService := service.NewDashboardService(st, logr)
	metricsService := service.NewMetricsService(st.Counts)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Services{
		Auth:        authService,
		Students:    studentService,
		Subjects:    subjectService,
		Enrollments: enrollmentService,
		Reports:     reportService,
		Exports:     exportService,
		Dashboard:   dashboardService,
		Metrics:     metricsService,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// seedDemo loads one subject and one student so a fresh instance has
// something to show. Errors are logged and skipped; a half-seeded demo is
// not fatal.
func seedDemo(st *store.Store, logr *zap.Logger) {
	subject, err := st.CreateSubject(models.Subject{
		Code:     "CS101",
		Title:    "Programming in C",
		Credits:  4,
		Semester: 1,
	})
	if err != nil {
		logr.Sugar().Warnw("demo seed: subject skipped", "error", err)
		return
	}

	hash, err := store.HashPassword("student123")
	if err != nil {
		logr.Sugar().Warnw("demo seed: student skipped", "error", err)
		return
	}
	user, student, err := st.CreateStudentAccount(models.User{
		Email:        "demo@local",
		PasswordHash: hash,
		FullName:     "Demo Student",
	}, models.Student{
		Roll:    "DEMO-1",
		Program: "BTech",
	})
	if err != nil {
		logr.Sugar().Warnw("demo seed: student skipped", "error", err)
		return
	}

	if err := st.UpsertMark(models.Mark{StudentID: student.ID, SubjectID: subject.ID, Score: 90}); err != nil {
		logr.Sugar().Warnw("demo seed: mark skipped", "error", err)
	}

	logr.Sugar().Infow("demo data seeded",
		"subject", subject.Code,
		"student", user.Email,
	)
}
