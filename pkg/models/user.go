package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a person using the finance tracker. It owns all other resources.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex:user_username;not null"`
	PasswordHash string `json:"-"`
	Email        string
}

var validate = validator.New()

// DefaultCategories are created for every new user.
var DefaultCategories = []Category{
	{Name: "Salary", Kind: ledger.KindIncome, Color: "#10b981"},
	{Name: "Groceries", Kind: ledger.KindExpense, Color: "#ef4444"},
	{Name: "Transportation", Kind: ledger.KindExpense, Color: "#f59e0b"},
	{Name: "Entertainment", Kind: ledger.KindExpense, Color: "#8b5cf6"},
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	return nil
}

// Validate checks the user for invalid values.
func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrUsernameEmpty
	}

	if err := validate.Var(strings.TrimSpace(u.Email), "omitempty,email"); err != nil {
		return ErrEmailInvalid
	}

	return nil
}

// CreateUser creates a user with the default categories.
func CreateUser(db *gorm.DB, username, password, email string) (User, error) {
	var user User

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = createUser(tx, username, password, email, DefaultCategories)
		return err
	})

	return user, err
}

// createUser creates a user and its categories with the passed connection.
func createUser(tx *gorm.DB, username, password, email string, categories []Category) (User, error) {
	if password == "" {
		return User{}, ErrPasswordEmpty
	}

	user := User{
		Username: username,
		Email:    email,
	}

	if err := user.Validate(); err != nil {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	err = tx.Create(&user).Error
	if err != nil {
		return User{}, err
	}

	for _, c := range categories {
		c.OwnerID = user.ID
		err = tx.Create(&c).Error
		if err != nil {
			return User{}, err
		}
	}

	return user, nil
}

// Authenticate returns the user with the username if the password is correct.
// A blank username never matches.
func Authenticate(db *gorm.DB, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, ErrInvalidCredentials
	}

	var user User
	err := db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, ErrResourceNotFound) {
		return User{}, ErrInvalidCredentials
	} else if err != nil {
		return User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}
