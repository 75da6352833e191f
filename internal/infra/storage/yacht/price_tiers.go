package yacht

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

type priceTierRow struct {
	CharterHours int   `json:"charterHours"`
	RetailCents  int64 `json:"retailCents"`
}

// priceTiers хранит тарифы яхты в колонке JSONB, порядок сохраняется
type priceTiers []domain.PriceTier

// Value реализует driver.Valuer
func (p priceTiers) Value() (driver.Value, error) {
	rows := make([]priceTierRow, len(p))
	for i, t := range p {
		rows[i] = priceTierRow{CharterHours: t.CharterHours, RetailCents: t.RetailCents}
	}
	return json.Marshal(rows)
}

// Scan реализует sql.Scanner
func (p *priceTiers) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("price_tiers: unsupported type %T", src)
	}

	var rows []priceTierRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("price_tiers: %w", err)
	}

	out := make(priceTiers, len(rows))
	for i, r := range rows {
		out[i] = domain.PriceTier{CharterHours: r.CharterHours, RetailCents: r.RetailCents}
	}
	*p = out
	return nil
}
