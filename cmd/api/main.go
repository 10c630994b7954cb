package main

import (
	"fmt"
	"net/http"

	"github.com/wellpay/wellpay-backend-go/internal/config"
	appHTTP "github.com/wellpay/wellpay-backend-go/internal/handler/http"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/jwt"
	"github.com/wellpay/wellpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wellpay/wellpay-backend-go/internal/service/attendance"
	authService "github.com/wellpay/wellpay-backend-go/internal/service/auth"
	dashboardService "github.com/wellpay/wellpay-backend-go/internal/service/dashboard"
	employeeService "github.com/wellpay/wellpay-backend-go/internal/service/employee"
	"github.com/wellpay/wellpay-backend-go/internal/service/leave"
	payrollService "github.com/wellpay/wellpay-backend-go/internal/service/payroll"
	reminderService "github.com/wellpay/wellpay-backend-go/internal/service/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	stressRepo := postgresql.NewStressRecordRepository(db)
	reminderRepo := postgresql.NewReminderRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	accountant := leave.NewAccountant(attendanceRepo)

	authSvc := authService.NewAuthService(db, userRepo, jwtRepo, jwtSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(payslipRepo, stressRepo, accountant, profileRepo)
	employeeSvc := employeeService.NewEmployeeService(profileRepo, userRepo)
	reminderSvc := reminderService.NewReminderService(reminderRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, attendanceRepo, payslipRepo, stressRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	reminderHandler := appHTTP.NewReminderHandler(reminderSvc)
	wellnessHandler := appHTTP.NewWellnessHandler()
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:     "wellpay",
			AppVersion:  "v1.0.0",
			AppEnv:      cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtSvc,
		authHandler,
		attendanceHandler,
		payrollHandler,
		employeeHandler,
		reminderHandler,
		wellnessHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
