package report

import (
	"encoding/json"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/adapters"
	"github.com/jsamuelsen11/storeops-gateway/internal/domain/report"
)

type hourlyDTO struct {
	Hour         int     `json:"hour"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *hourlyDTO) UnmarshalJSON(b []byte) error {
	type plain hourlyDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d hourlyDTO) MarshalJSON() ([]byte, error) {
	type plain hourlyDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

type dailyDTO struct {
	StoreID          string      `json:"store_id"`
	BusinessDate     string      `json:"business_date"`
	Currency         string      `json:"currency"`
	GrossSales       float64     `json:"gross_sales"`
	NetSales         float64     `json:"net_sales"`
	Discounts        float64     `json:"discounts"`
	TransactionCount int         `json:"transaction_count"`
	AverageTicket    float64     `json:"average_ticket"`
	Hourly           []hourlyDTO `json:"hourly"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (d *dailyDTO) UnmarshalJSON(b []byte) error {
	type plain dailyDTO
	return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
}

func (d dailyDTO) MarshalJSON() ([]byte, error) {
	type plain dailyDTO
	return adapters.MarshalOpen(plain(d), d.Extra)
}

func toDomainDaily(dto *dailyDTO) report.Daily {
	d := report.Daily{
		StoreID:          dto.StoreID,
		BusinessDate:     dto.BusinessDate,
		Currency:         dto.Currency,
		GrossSales:       dto.GrossSales,
		NetSales:         dto.NetSales,
		Discounts:        dto.Discounts,
		TransactionCount: dto.TransactionCount,
		AverageTicket:    dto.AverageTicket,
		Extra:            dto.Extra,
	}
	if dto.Hourly != nil {
		d.Hourly = make([]report.HourlySales, len(dto.Hourly))
	}
	for i, h := range dto.Hourly {
		d.Hourly[i] = report.HourlySales(h)
	}
	return d
}

func fromDomainDaily(d *report.Daily) dailyDTO {
	dto := dailyDTO{
		StoreID:          d.StoreID,
		BusinessDate:     d.BusinessDate,
		Currency:         d.Currency,
		GrossSales:       d.GrossSales,
		NetSales:         d.NetSales,
		Discounts:        d.Discounts,
		TransactionCount: d.TransactionCount,
		AverageTicket:    d.AverageTicket,
		Extra:            d.Extra,
	}
	if d.Hourly != nil {
		dto.Hourly = make([]hourlyDTO, len(d.Hourly))
	}
	for i, h := range d.Hourly {
		dto.Hourly[i] = hourlyDTO(h)
	}
	return dto
}
