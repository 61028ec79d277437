package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "hr-attendance-service/internal/adapter/http"
	"hr-attendance-service/internal/adapter/middleware"
	"hr-attendance-service/internal/adapter/repository/mysql"
	"hr-attendance-service/internal/config"
	domAtt "hr-attendance-service/internal/domain/attendance"
	domEmp "hr-attendance-service/internal/domain/employee"
	domReq "hr-attendance-service/internal/domain/request"
	"hr-attendance-service/internal/infrastructure/cache"
	"hr-attendance-service/internal/infrastructure/db"
	ucAttendance "hr-attendance-service/internal/usecase/attendance"
	ucAuth "hr-attendance-service/internal/usecase/auth"
	ucEmployee "hr-attendance-service/internal/usecase/employee"
	ucRequest "hr-attendance-service/internal/usecase/request"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %s", err.Error())
	}
	if err := gdb.AutoMigrate(&domEmp.Employee{}, &domAtt.Record{}, &domReq.Approval{}); err != nil {
		log.Fatalf("migrate: %s", err.Error())
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %s", err.Error())
	}

	employeeRepo := mysql.NewEmployeeRepository(gdb)
	attendanceRepo := mysql.NewAttendanceRepository(gdb)
	requestRepo := mysql.NewRequestRepository(gdb)
	unitOfWork := mysql.NewGormUoW(gdb)

	requestUC := ucRequest.NewUsecase(unitOfWork, requestRepo, attendanceRepo, ucRequest.Config{
		LeaveAdmissionCap: cfg.LeaveAdmissionCap,
		AdminLevel:        cfg.AdminLevel,
	})
	attendanceUC := ucAttendance.NewUsecase(attendanceRepo, employeeRepo, ucAttendance.Config{
		LeaveReportingCap: cfg.LeaveReportingCap,
	})
	employeeUC := ucEmployee.NewUsecase(employeeRepo)
	authUC := ucAuth.NewUsecase(employeeRepo, []byte(cfg.JWTSecret),
		time.Duration(cfg.TokenTTLMins)*time.Minute)

	healthH := httpadp.NewHealthHandler()
	authH := httpadp.NewAuthHandler(authUC)
	employeeH := httpadp.NewEmployeeHandler(employeeUC)
	attendanceH := httpadp.NewAttendanceHandler(attendanceUC)
	requestH := httpadp.NewRequestHandler(requestUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	authMW := middleware.Auth([]byte(cfg.JWTSecret), cfg.APIKey)
	apiKeyMW := middleware.APIKeyOnly(cfg.APIKey)
	idempMW := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// public
	e.GET("/health", healthH.Health)
	e.POST("/login", authH.Login)

	// directory; registration and removal are bootstrap operations
	e.POST("/employees", employeeH.Register, apiKeyMW)
	e.POST("/employees/bulk", employeeH.BulkRegister, apiKeyMW)
	e.DELETE("/employees/:id", employeeH.Delete, apiKeyMW)
	e.GET("/employees", employeeH.List, authMW)
	e.GET("/employees/:id", employeeH.Get, authMW)
	e.PATCH("/employees/:id", employeeH.Update, authMW)

	// attendance ledger
	e.POST("/attendance", attendanceH.Upsert, authMW)
	e.POST("/attendance/bulk", attendanceH.BulkAdd, apiKeyMW)
	e.POST("/attendance/search", attendanceH.Search, authMW)
	e.GET("/employees/:id/attendance", attendanceH.History, authMW)
	e.GET("/employees/:id/attendance/:date", attendanceH.ByDate, authMW)
	e.DELETE("/employees/:id/attendance/:date", attendanceH.Delete, authMW)

	// request workflow; idempotency guards the mutating routes and must
	// run after auth so keys are actor-scoped
	e.POST("/request-approvals", requestH.Create, authMW, idempMW)
	e.PATCH("/request-approvals/:request_id", requestH.SetStatus, authMW, idempMW)
	e.DELETE("/request-approvals/:request_id", requestH.Delete, authMW, idempMW)
	e.GET("/request-approvals", requestH.Query, authMW)
	e.GET("/employees/:id/requests", requestH.ListForEmployee, authMW)
	e.GET("/employees/:id/leave-usage", requestH.LeaveUsage, authMW)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
