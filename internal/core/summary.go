package core

import "sort"

// RecentTransactionsLimit caps the recent-activity feed of the dashboard.
const RecentTransactionsLimit = 10

// DashboardSummary aggregates every stored record.
type DashboardSummary struct {
	TotalIncome        float64       `json:"total_income"`
	TotalExpense       float64       `json:"total_expense"`
	Balance            float64       `json:"balance"`
	RecentTransactions []Transaction `json:"recent_transactions"`
}

// Summarize computes totals and the newest transactions across both kinds.
// Input order does not matter.
func Summarize(incomes []Income, expenses []Expense) DashboardSummary {
	var totalIncome, totalExpense float64
	txs := make([]Transaction, 0, len(incomes)+len(expenses))

	for _, in := range incomes {
		totalIncome += in.Amount
		txs = append(txs, IncomeTransaction(in))
	}
	for _, e := range expenses {
		totalExpense += e.Amount
		txs = append(txs, ExpenseTransaction(e))
	}

	sort.SliceStable(txs, func(i, j int) bool { return newerFirst(txs[i], txs[j]) })
	if len(txs) > RecentTransactionsLimit {
		txs = txs[:RecentTransactionsLimit]
	}

	return DashboardSummary{
		TotalIncome:        totalIncome,
		TotalExpense:       totalExpense,
		Balance:            totalIncome - totalExpense,
		RecentTransactions: txs,
	}
}

// SortIncomes orders incomes newest first, ties by id.
func SortIncomes(items []Income) {
	sort.SliceStable(items, func(i, j int) bool {
		return newerFirst(IncomeTransaction(items[i]), IncomeTransaction(items[j]))
	})
}

// SortExpenses orders expenses newest first, ties by id.
func SortExpenses(items []Expense) {
	sort.SliceStable(items, func(i, j int) bool {
		return newerFirst(ExpenseTransaction(items[i]), ExpenseTransaction(items[j]))
	})
}
