package main

import (
	"fmt"
	"net/http"

	"github.com/addis-furniture/backoffice-go/internal/config"
	appHTTP "github.com/addis-furniture/backoffice-go/internal/handler/http"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/addis-furniture/backoffice-go/internal/pkg/jwt"
	"github.com/addis-furniture/backoffice-go/internal/repository/postgresql"
	authService "github.com/addis-furniture/backoffice-go/internal/service/auth"
	employeeService "github.com/addis-furniture/backoffice-go/internal/service/employee"
	expenseService "github.com/addis-furniture/backoffice-go/internal/service/expense"
	orderService "github.com/addis-furniture/backoffice-go/internal/service/order"
	purchaseService "github.com/addis-furniture/backoffice-go/internal/service/purchase"
	reportService "github.com/addis-furniture/backoffice-go/internal/service/report"
	saleService "github.com/addis-furniture/backoffice-go/internal/service/sale"
	userService "github.com/addis-furniture/backoffice-go/internal/service/user"
	wageService "github.com/addis-furniture/backoffice-go/internal/service/wage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	wageRepo := postgresql.NewWageRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	saleRepo := postgresql.NewSaleRepository(db)
	purchaseRepo := postgresql.NewPurchaseRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	wageSvc := wageService.NewWageService(wageRepo, employeeRepo)
	orderSvc := orderService.NewOrderService(orderRepo)
	saleSvc := saleService.NewSaleService(saleRepo)
	purchaseSvc := purchaseService.NewPurchaseService(purchaseRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	reportSvc := reportService.NewReportService(orderRepo, saleRepo, purchaseRepo, expenseRepo, wageRepo, userRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authSvc, jwtService),
		User:     appHTTP.NewUserHandler(userSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Wage:     appHTTP.NewWageHandler(wageSvc),
		Order:    appHTTP.NewOrderHandler(orderSvc),
		Sale:     appHTTP.NewSaleHandler(saleSvc),
		Purchase: appHTTP.NewPurchaseHandler(purchaseSvc),
		Expense:  appHTTP.NewExpenseHandler(expenseSvc),
		Report:   appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
