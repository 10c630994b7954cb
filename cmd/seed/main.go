package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/wellpay/wellpay-backend-go/internal/config"
	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
	"github.com/wellpay/wellpay-backend-go/internal/domain/employee"
	"github.com/wellpay/wellpay-backend-go/internal/domain/reminder"
	"github.com/wellpay/wellpay-backend-go/internal/domain/user"
	"github.com/wellpay/wellpay-backend-go/internal/pkg/database"
	"github.com/wellpay/wellpay-backend-go/internal/repository/postgresql"
)

type seedEmployee struct {
	username   string
	email      string
	fullName   string
	department string
	position   string
	baseSalary string
}

var seedEmployees = []seedEmployee{
	{"budi.santoso", "budi@wellpay.dev", "Budi Santoso", "Engineering", "Backend Engineer", "75000"},
	{"sari.wijaya", "sari@wellpay.dev", "Sari Wijaya", "Finance", "Accountant", "68000"},
	{"andi.pratama", "andi@wellpay.dev", "Andi Pratama", "Marketing", "Content Specialist", "54000"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reminderRepo := postgresql.NewReminderRepository(db)

	if err := seed(ctx, userRepo, profileRepo, attendanceRepo, reminderRepo); err != nil {
		log.Fatal("Seed failed: ", err)
	}
	fmt.Println("Seed completed")
}

func seed(
	ctx context.Context,
	userRepo user.UserRepository,
	profileRepo employee.ProfileRepository,
	attendanceRepo attendance.AttendanceRepository,
	reminderRepo reminder.ReminderRepository,
) error {
	if err := seedHRAdmin(ctx, userRepo); err != nil {
		return err
	}

	for _, se := range seedEmployees {
		exists, err := userRepo.ExistsByUsername(ctx, se.username)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		created, err := userRepo.Create(ctx, user.User{
			Username:     se.username,
			Email:        se.email,
			PasswordHash: string(passwordHash),
			FullName:     se.fullName,
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		baseSalary, err := decimal.NewFromString(se.baseSalary)
		if err != nil {
			return err
		}

		if _, err := profileRepo.Create(ctx, employee.Profile{
			UserID:             created.ID,
			Phone:              "+62-811-0000-000",
			Department:         se.department,
			Position:           se.position,
			BaseSalary:         baseSalary,
			PaidLeavesPerMonth: 2,
		}); err != nil {
			return err
		}

		if err := seedAttendance(ctx, attendanceRepo, created.ID); err != nil {
			return err
		}

		if _, err := reminderRepo.Create(ctx, reminder.Reminder{
			UserID: created.ID,
			Text:   "Submit this month's overtime hours",
		}); err != nil {
			return err
		}

		fmt.Println("Seeded employee:", se.username)
	}

	return nil
}

func seedHRAdmin(ctx context.Context, userRepo user.UserRepository) error {
	exists, err := userRepo.ExistsByUsername(ctx, "hr.admin")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("hradmin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, user.User{
		Username:     "hr.admin",
		Email:        "hr@wellpay.dev",
		PasswordHash: string(passwordHash),
		FullName:     "HR Admin",
		Role:         user.RoleHR,
	})
	if err != nil {
		return err
	}

	fmt.Println("Seeded HR admin")
	return nil
}

// seedAttendance fills the current month up to yesterday: weekdays PRESENT,
// except one paid and one unpaid leave day to exercise the deduction path.
func seedAttendance(ctx context.Context, attendanceRepo attendance.AttendanceRepository, employeeID string) error {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	leaveDaysUsed := 0
	for day := monthStart; day.Before(now.Truncate(24 * time.Hour)); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		status := attendance.StatusPresent
		if leaveDaysUsed == 0 && day.Day() >= 3 {
			status = attendance.StatusPaidLeave
			leaveDaysUsed++
		} else if leaveDaysUsed == 1 && day.Day() >= 10 {
			status = attendance.StatusUnpaidLeave
			leaveDaysUsed++
		}

		if _, err := attendanceRepo.Create(ctx, attendance.Record{
			EmployeeID: employeeID,
			Date:       day,
			Status:     status,
		}); err != nil {
			return err
		}
	}

	return nil
}
