package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-records-api/internal/middleware"
	"github.com/noah-isme/student-records-api/internal/models"
	"github.com/noah-isme/student-records-api/internal/service"
)

// Services groups everything the router needs.
type Services struct {
	Auth        *service.AuthService
	Students    *service.StudentService
	Subjects    *service.SubjectService
	Enrollments *service.EnrollmentService
	Reports     *service.ReportService
	Exports     *service.ExportService
	Dashboard   *service.DashboardService
	Metrics     *service.MetricsService
}

// RegisterRoutes mounts the API surface under the given prefix.
func RegisterRoutes(r *gin.Engine, prefix string, svcs Services) {
	authHandler := NewAuthHandler(svcs.Auth, svcs.Students)
	subjectHandler := NewSubjectHandler(svcs.Subjects)
	studentHandler := NewStudentHandler(svcs.Students)
	enrollmentHandler := NewEnrollmentHandler(svcs.Enrollments)
	reportHandler := NewReportHandler(svcs.Reports, svcs.Exports, svcs.Students)
	dashboardHandler := NewDashboardHandler(svcs.Dashboard)

	api := r.Group(prefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/signup", authHandler.Signup)

	authed := api.Group("")
	authed.Use(middleware.JWT(svcs.Auth))

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	subjects := authed.Group("/subjects")
	subjects.GET("", subjectHandler.List)
	subjects.GET("/:id", subjectHandler.Get)
	subjects.POST("", adminOnly, subjectHandler.Create)
	subjects.DELETE("/:id", adminOnly, subjectHandler.Delete)

	students := authed.Group("/students")
	students.GET("", adminOnly, studentHandler.List)
	students.GET("/:id", adminOnly, studentHandler.Get)
	students.DELETE("/:id", adminOnly, studentHandler.Delete)

	// Legacy behavior: any authenticated user may record marks and
	// attendance, not only admins.
	authed.POST("/marks", enrollmentHandler.EnterMarks)
	authed.POST("/attendance", enrollmentHandler.EnterAttendance)
	students.GET("/:id/marks/:subjectId", enrollmentHandler.GetMark)
	students.GET("/:id/attendance/:subjectId", enrollmentHandler.GetAttendance)

	students.GET("/:id/report", reportHandler.Get)
	students.GET("/:id/report/export", reportHandler.Export)

	authed.GET("/summary", adminOnly, dashboardHandler.Summary)

	if svcs.Metrics != nil {
		r.GET("/metrics", gin.WrapH(svcs.Metrics.Handler()))
	}
}
