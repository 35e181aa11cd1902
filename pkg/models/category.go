package models

import (
	"regexp"
	"strings"

	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryColor is used when no color is set for a category.
const DefaultCategoryColor = "#3b82f6"

var hexColor = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// Category classifies transactions as income or expense.
type Category struct {
	DefaultModel
	Owner   User        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	OwnerID uuid.UUID   `gorm:"uniqueIndex:category_owner_name"`
	Name    string      `gorm:"uniqueIndex:category_owner_name"`
	Kind    ledger.Kind `gorm:"not null"`
	Color   string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	return nil
}

// Validate checks the category for invalid values.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameEmpty
	}

	if !c.Kind.Valid() {
		return ErrCategoryKindInvalid
	}

	if c.Color != "" && !hexColor.MatchString(c.Color) {
		return ErrCategoryColorInvalid
	}

	return nil
}

// Referenced reports whether at least one transaction references the category.
func (c Category) Referenced(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&Transaction{}).Where("category_id = ?", c.ID).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
