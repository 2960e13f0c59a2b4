// Package sample bundles static payloads served when an upstream cannot be
// used yet, so the dashboard stays usable in an unconfigured environment.
package sample

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed daily_report.json
var dailyReport []byte

// DailyReport returns the bundled daily sales report in upstream wire form,
// stamped with the requested store and business date.
func DailyReport(storeID, date string) (json.RawMessage, error) {
	var doc map[string]any
	if err := json.Unmarshal(dailyReport, &doc); err != nil {
		return nil, fmt.Errorf("decoding bundled daily report: %w", err)
	}

	doc["store_id"] = storeID
	doc["business_date"] = date

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding sample daily report: %w", err)
	}
	return b, nil
}
