package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/finance-tracker/backend/internal/types"
	ft_uuid "github.com/finance-tracker/backend/internal/uuid"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category. Its kind defines if the transaction is an income or an expense
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"14.03"`               // The amount. Must be larger than zero
	Description string          `json:"description" example:"Weekly groceries"`                    // A description of the transaction
	Date        types.Date      `json:"date" swaggertype:"string" example:"2024-02-03"`            // Date of the transaction. Defaults to today
}

func (e TransactionEditable) model() models.Transaction {
	return models.Transaction{
		CategoryID:  e.CategoryID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
	}
}

type TransactionCategory struct {
	Name  string      `json:"name" example:"Groceries"` // Name of the category
	Kind  ledger.Kind `json:"kind" example:"expense"`   // Kind of the category
	Color string      `json:"color" example:"#ef4444"`  // Color of the category
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/6ac2b5b5-bbb2-4b20-ba05-4fd8ac0ba3a3"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the transaction
}

// Transaction is a transaction enriched with the data of its category.
type Transaction struct {
	ID        uuid.UUID `json:"id" example:"6ac2b5b5-bbb2-4b20-ba05-4fd8ac0ba3a3"` // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`   // Time the resource was created
	TransactionEditable
	Category TransactionCategory `json:"category"` // The category of the transaction
	Links    TransactionLinks    `json:"links"`    // Links to related resources
}

// entryOf converts a transaction with its preloaded category to an entry.
func entryOf(t models.Transaction) ledger.Entry {
	return ledger.Entry{
		ID:          t.ID,
		OwnerID:     t.OwnerID,
		CategoryID:  t.CategoryID,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
		Category: ledger.CategoryRef{
			ID:      t.Category.ID,
			OwnerID: t.Category.OwnerID,
			Name:    t.Category.Name,
			Kind:    t.Category.Kind,
			Color:   t.Category.Color,
		},
	}
}

func newTransaction(c *gin.Context, e ledger.Entry) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		TransactionEditable: TransactionEditable{
			CategoryID:  e.CategoryID,
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
		},
		Category: TransactionCategory{
			Name:  e.Category.Name,
			Kind:  e.Category.Kind,
			Color: e.Category.Color,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, e.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, e.CategoryID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// appendError appends a TransactionResponse with the error and returns the updated HTTP status
func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	QueryDateRange
	CategoryID ft_uuid.UUID `form:"category"` // By ID of the category
	Search     string       `form:"search"`   // Glob pattern matched against the description, case insensitive
}

// matches reports whether the entry matches the category and search
// parameters of the filter.
func (f TransactionQueryFilter) matches(e ledger.Entry) bool {
	if !f.CategoryID.IsNil() && e.CategoryID != f.CategoryID.UUID {
		return false
	}

	if f.Search == "" {
		return true
	}

	// A pattern without wildcards matches anywhere in the description
	pattern := strings.ToLower(f.Search)
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	return glob.Glob(pattern, strings.ToLower(e.Description))
}
