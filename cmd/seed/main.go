// Command seed bootstraps the first admin account and optionally imports
// expense fixtures from a JSON file. It talks to the repositories directly,
// so it runs without a token.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/addis-furniture/backoffice-go/internal/config"
	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/addis-furniture/backoffice-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// expenseFixture tolerates amounts exported as either JSON numbers or
// strings; ParseNumber rejects anything non-finite or malformed.
type expenseFixture struct {
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Amount      interface{} `json:"amount"`
	Paid        interface{} `json:"paid"`
	Description string      `json:"description"`
	Location    *string     `json:"location"`
}

func main() {
	fixturesPath := flag.String("fixtures", "", "path to an expense fixtures JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	if err := seedAdmin(ctx, userRepo); err != nil {
		fmt.Println("Error seeding admin:", err)
		os.Exit(1)
	}

	if *fixturesPath != "" {
		expenseRepo := postgresql.NewExpenseRepository(db)
		// Fixture import is all or nothing.
		var n int
		err := postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
			var err error
			n, err = importExpenses(ctx, expenseRepo, *fixturesPath)
			return err
		})
		if err != nil {
			fmt.Println("Error importing fixtures:", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d expenses\n", n)
	}
}

func seedAdmin(ctx context.Context, userRepo user.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		fmt.Println("Admin already exists, skipping")
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	created, err := userRepo.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		Locations:    config.EnvSlice("ADMIN_LOCATIONS"),
	})
	if err != nil {
		return err
	}

	fmt.Println("Admin created:", created.Email)
	return nil
}

func importExpenses(ctx context.Context, expenseRepo expense.ExpenseRepository, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var fixtures []expenseFixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return 0, fmt.Errorf("parse fixtures: %w", err)
	}

	count := 0
	for i, f := range fixtures {
		amount, err := finance.ParseNumber(f.Amount)
		if err != nil {
			return count, fmt.Errorf("fixture %d amount: %w", i, err)
		}
		paid, err := finance.ParseNumber(f.Paid)
		if err != nil {
			return count, fmt.Errorf("fixture %d paid: %w", i, err)
		}

		_, err = expenseRepo.Create(ctx, expense.Expense{
			Title:       f.Title,
			Category:    f.Category,
			Amount:      amount,
			Paid:        paid,
			Balance:     finance.ExpenseBalance(amount, paid),
			Status:      finance.PaymentStatusOf(paid, amount),
			Description: f.Description,
			Location:    f.Location,
		})
		if err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
