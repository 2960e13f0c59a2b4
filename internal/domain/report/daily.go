// Package report holds the daily sales report of a store.
package report

import "encoding/json"

// HourlySales is one hour bucket of the daily report.
type HourlySales struct {
	Hour         int
	Sales        float64
	Transactions int

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}

// Daily is the sales summary of one store for one business date.
type Daily struct {
	StoreID          string
	BusinessDate     string
	Currency         string
	GrossSales       float64
	NetSales         float64
	Discounts        float64
	TransactionCount int
	AverageTicket    float64
	Hourly           []HourlySales

	// Extra holds upstream fields this record does not model, unchanged.
	Extra map[string]json.RawMessage
}
