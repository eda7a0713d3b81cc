package http

import (
	"fmt"
	"time"

	"wallet/internal/core"
)

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func categoryRef(id int64, name string) envelope {
	return envelope{"id": id, "name": name}
}

// incomeData is the full income payload used by list and detail responses.
func incomeData(inc core.Income) envelope {
	return envelope{
		"id":         inc.ID,
		"source":     inc.Source,
		"category":   categoryRef(inc.CategoryID, inc.CategoryName),
		"amount":     inc.Amount.Dollars(),
		"date":       inc.Date.String(),
		"note":       inc.Note,
		"created_at": formatTimestamp(inc.CreatedAt),
		"updated_at": formatTimestamp(inc.UpdatedAt),
	}
}

// incomeCreatedData omits updated_at, which equals created_at on a fresh record.
func incomeCreatedData(inc core.Income) envelope {
	data := incomeData(inc)
	delete(data, "updated_at")
	return data
}

func expenseData(exp core.Expense) envelope {
	return envelope{
		"id":         exp.ID,
		"title":      exp.Title,
		"amount":     exp.Amount.Dollars(),
		"date":       exp.Date.String(),
		"created_at": formatTimestamp(exp.CreatedAt),
		"updated_at": formatTimestamp(exp.UpdatedAt),
	}
}

func expenseCreatedData(exp core.Expense) envelope {
	data := expenseData(exp)
	delete(data, "updated_at")
	return data
}

func categoryData(cat core.Category) envelope {
	return envelope{
		"id":         cat.ID,
		"name":       cat.Name,
		"created_at": formatTimestamp(cat.CreatedAt),
	}
}

// transactionListItem serializes a merged-listing entry. Expenses carry
// the synthetic category {id: null, name: "Expense"}.
func transactionListItem(t core.Transaction) envelope {
	category := envelope{"id": nil, "name": "Expense"}
	if t.Kind == core.KindIncome {
		category = categoryRef(t.Income.CategoryID, t.Income.CategoryName)
	}
	return envelope{
		"id":         t.ID(),
		"type":       string(t.Kind),
		"title":      t.Title(),
		"category":   category,
		"amount":     t.Amount().Dollars(),
		"date":       t.Date().String(),
		"note":       t.Note(),
		"created_at": formatTimestamp(t.CreatedAt()),
		"updated_at": formatTimestamp(t.UpdatedAt()),
	}
}

// recentTransactionItem is the compact shape the dashboard uses.
func recentTransactionItem(t core.Transaction) envelope {
	return envelope{
		"id":       t.ID(),
		"type":     string(t.Kind),
		"title":    t.Title(),
		"category": t.CategoryName(),
		"amount":   t.Amount().Dollars(),
		"date":     t.Date().String(),
		"note":     t.Note(),
	}
}

// searchResultItem extends the compact shape with the edit URL.
func searchResultItem(t core.Transaction) envelope {
	item := recentTransactionItem(t)
	item["url"] = fmt.Sprintf("/%s/%d/edit/", t.Kind, t.ID())
	return item
}
