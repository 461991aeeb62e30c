package service

import "github.com/shopspring/decimal"

// ComputeBalance sums positive amounts into Income and everything else,
// zero included, into Outcome.
func ComputeBalance(transactions []Transaction) Balance {
	balance := Balance{
		Income:  decimal.Zero,
		Outcome: decimal.Zero,
		Total:   decimal.Zero,
	}

	for _, tx := range transactions {
		if tx.Amount.IsPositive() {
			balance.Income = balance.Income.Add(tx.Amount)
		} else {
			balance.Outcome = balance.Outcome.Add(tx.Amount)
		}
	}

	balance.Total = balance.Income.Add(balance.Outcome)
	return balance
}
