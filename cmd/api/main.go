package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/config"
	appHTTP "github.com/simon1400/barbitch-admin/internal/handler/http"
	"github.com/simon1400/barbitch-admin/internal/pkg/database"
	"github.com/simon1400/barbitch-admin/internal/pkg/jwt"
	"github.com/simon1400/barbitch-admin/internal/pkg/noona"
	"github.com/simon1400/barbitch-admin/internal/pkg/strapi"
	"github.com/simon1400/barbitch-admin/internal/repository/postgresql"
	"github.com/simon1400/barbitch-admin/internal/repository/recordstore"
	authService "github.com/simon1400/barbitch-admin/internal/service/auth"
	dashboardService "github.com/simon1400/barbitch-admin/internal/service/dashboard"
	expenseService "github.com/simon1400/barbitch-admin/internal/service/expense"
	financeService "github.com/simon1400/barbitch-admin/internal/service/finance"
	procedureService "github.com/simon1400/barbitch-admin/internal/service/procedure"
	reportService "github.com/simon1400/barbitch-admin/internal/service/report"
	reservationService "github.com/simon1400/barbitch-admin/internal/service/reservation"
	salaryService "github.com/simon1400/barbitch-admin/internal/service/salary"
	staffService "github.com/simon1400/barbitch-admin/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	strapiClient := strapi.New(cfg.Strapi.BaseURL, cfg.Strapi.Token)
	noonaClient := noona.New(cfg.Noona.BaseURL, cfg.Noona.Token, cfg.Noona.CompanyID)

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	records := recordstore.New(strapiClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	reservationSvc := reservationService.NewReservationService(noonaClient)
	salarySvc := salaryService.NewSalaryService(records, staffRepo, reservationSvc)
	financeSvc := financeService.NewFinanceService(records, salarySvc)
	expenseSvc := expenseService.NewExpenseService(records)
	procedureSvc := procedureService.NewProcedureService(records)
	reportSvc := reportService.NewReportService(salarySvc)
	dashboardSvc := dashboardService.NewDashboardService(salarySvc, financeSvc, reservationSvc)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	staffSvc := staffService.NewStaffService(staffRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	financeHandler := appHTTP.NewFinanceHandler(financeSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	procedureHandler := appHTTP.NewProcedureHandler(procedureSvc)
	reservationHandler := appHTTP.NewReservationHandler(reservationSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		dashboardHandler,
		salaryHandler,
		financeHandler,
		expenseHandler,
		procedureHandler,
		reservationHandler,
		staffHandler,
		reportHandler,
		cfg.App.CORSOrigin,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
