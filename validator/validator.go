package validator

import (
	"regexp"
	"time"

	"resto/errors"
	"resto/models"
)

// ValidateUser checks account fields
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must have at least 6 characters", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	return nil
}

// ValidateEmployee checks employee fields before create/update
func ValidateEmployee(employee *models.Employee) error {
	if employee.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "employee name is required", nil)
	}

	if employee.RestaurantID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "restaurant id is required", nil)
	}

	if employee.HireDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "hire date is required", nil)
	}

	if employee.BankSalary < 0 || employee.HandSalary < 0 || employee.AttendanceBonus < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "salary amounts cannot be negative", nil)
	}

	if employee.TerminationDate != nil && employee.TerminationDate.Before(employee.HireDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "termination date precedes hire date", nil)
	}

	if employee.ExpectedCheckIn != "" && !isValidWallClock(employee.ExpectedCheckIn) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "expected check-in must be HH:MM", nil)
	}

	if employee.ExpectedCheckOut != "" && !isValidWallClock(employee.ExpectedCheckOut) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "expected check-out must be HH:MM", nil)
	}

	return nil
}

// ValidateSupplierPayment checks a supplier payment before create
func ValidateSupplierPayment(payment *models.SupplierPayment) error {
	if payment.SupplierID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "supplier id is required", nil)
	}

	if payment.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "payment amount must be positive", nil)
	}

	return nil
}

// ValidateSale checks a daily sales close
func ValidateSale(sale *models.Sale) error {
	if sale.RestaurantID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "restaurant id is required", nil)
	}

	if sale.CashAmount < 0 || sale.CardAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "sale amounts cannot be negative", nil)
	}

	if sale.Date.IsZero() || sale.Date.After(time.Now().AddDate(0, 0, 1)) {
		return errors.NewAppError(errors.ErrCodeValidation, "sale date is invalid", nil)
	}

	return nil
}

// ValidateAmount checks a monetary amount
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "amount cannot be negative", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

func isValidWallClock(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
