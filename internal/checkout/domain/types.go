package domain

import "time"

const CurrencyJPY = "JPY"

type Money struct {
	Currency string
	Amount   int64
}

type QuoteLine struct {
	ProductID int
	Title     string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}

func (q Quote) ItemCount() int64 {
	var n int64
	for _, l := range q.Lines {
		n += l.Quantity
	}
	return n
}

// Receipt records a completed simulated purchase.
type Receipt struct {
	ID        string
	Total     Money
	ItemCount int64
	PlacedAt  time.Time
}
