package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/refdata"
	"github.com/Artexxx/HR-Console/internal/session"
	"github.com/Artexxx/HR-Console/internal/staging"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// @title           HR Console API
// @version         1.0
// @description     Бэкенд административной консоли HR: карточки сотрудников, справочники должностей и подразделений, история должностей со staging-списком и двумя вариантами коммита (аддитивный и полная замена).
//
//@license.name  MIT
// @license.url   https://opensource.org/license/mit
//
// @BasePath  /
// @schemes   http
// @accept    json
// @produce   json

type EmployeeRepository interface {
	Update(ctx context.Context, e dto.Employee) error
	Delete(ctx context.Context, employeeNumber int64) error
	Get(ctx context.Context, employeeNumber int64) (*dto.Employee, error)
	List(ctx context.Context) ([]dto.Employee, error)
}

type RefDataRepository interface {
	CreateJob(ctx context.Context, j dto.Job) error
	UpdateJob(ctx context.Context, j dto.Job) error
	DeleteJob(ctx context.Context, jobCode string) error
	CreateDepartment(ctx context.Context, d dto.Department) error
	UpdateDepartment(ctx context.Context, d dto.Department) error
	DeleteDepartment(ctx context.Context, departmentCode string) error
	ResetAll(ctx context.Context) error
}

type HistoryReader interface {
	ListByEmployee(ctx context.Context, employeeNumber int64) ([]dto.JobHistoryEntry, error)
}

type Committer interface {
	CommitCreate(ctx context.Context, list *staging.List, employee dto.Employee) (int64, error)
	CommitReplace(ctx context.Context, list *staging.List, employeeNumber int64) error
}

type SessionProvider interface {
	CurrentUser(ctx context.Context, accessToken string) (*session.User, error)
}

type Producer interface {
	ProduceEmployeeChange(ctx context.Context, action string, e dto.Employee) error
	ProduceHistoryReplaced(ctx context.Context, employeeNumber int64, entries []dto.JobHistoryEntry) error
}

type ServiceDeps struct {
	Port int

	EmployeeRepo EmployeeRepository
	RefDataRepo  RefDataRepository
	HistoryRepo  HistoryReader

	Committer Committer
	RefCache  *refdata.Cache
	Sessions  SessionProvider
	Producer  Producer
}

type Service struct {
	r    *router.Router
	port int

	employees EmployeeRepository
	refdata   RefDataRepository
	history   HistoryReader
	committer Committer
	cache     *refdata.Cache
	sessions  SessionProvider
	producer  Producer
}

func NewService(d ServiceDeps) *Service {
	rt := router.New()

	s := &Service{
		r:         rt,
		port:      d.Port,
		employees: d.EmployeeRepo,
		refdata:   d.RefDataRepo,
		history:   d.HistoryRepo,
		committer: d.Committer,
		cache:     d.RefCache,
		sessions:  d.Sessions,
		producer:  d.Producer,
	}

	s.mountRoutes()

	return s
}

func (s *Service) Start(ctx context.Context) error {
	mainHandler := RecoveryMiddleware(LoggingMiddleware(CORS(s.r.Handler)))

	server := fasthttp.Server{
		Handler:            mainHandler,
		Name:               "hr-console-api",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 2 << 20, // 2 MiB
	}

	log.Info().Int("port", s.port).Msg("Starting HR console API")

	emergencyShutdown := make(chan error)
	go func() {
		err := server.ListenAndServe(fmt.Sprintf(":%d", s.port))
		emergencyShutdown <- err
	}()

	select {
	case <-ctx.Done():
		return server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	// Employees
	s.r.GET("/employees", s.listEmployees)
	s.r.POST("/employees", s.createEmployee)
	s.r.GET("/employees/{employee_number}", s.getEmployee)
	s.r.PUT("/employees/{employee_number}", s.updateEmployee)
	s.r.DELETE("/employees/{employee_number}", s.deleteEmployee)

	// Job history
	s.r.GET("/employees/{employee_number}/history", s.listHistory)
	s.r.PUT("/employees/{employee_number}/history", s.replaceHistory)

	// Reference data
	s.r.GET("/refdata", s.getRefData)
	s.r.POST("/jobs", s.createJob)
	s.r.PUT("/jobs/{job_code}", s.updateJob)
	s.r.DELETE("/jobs/{job_code}", s.deleteJob)
	s.r.POST("/departments", s.createDepartment)
	s.r.PUT("/departments/{department_code}", s.updateDepartment)
	s.r.DELETE("/departments/{department_code}", s.deleteDepartment)

	// Session & export
	s.r.GET("/session", s.getSession)
	s.r.GET("/export/employees", s.exportEmployees)

	// Admin & Health
	s.r.GET("/health", s.healthHandler)
	s.r.POST("/admin/reset", s.resetHandler)
}
