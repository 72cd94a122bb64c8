package ledger

import (
	"strings"

	ledgerDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/ledger"
)

// Payment method tags as stored in the sheet. Anything outside this set
// still aggregates, it just renders under a generic fallback style.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyTWD Currency = "TWD"
)

// Record is one ledger line. Amounts are whole currency units; exactly
// one of AmountTWD/AmountINR is nonzero per record: a record is a
// single payment in a single currency and the zero field is a
// placeholder, not missing data. There is no stored conversion rate.
type Record struct {
	RowIndex      int    `json:"row_index"`
	Date          string `json:"date"`
	Item          string `json:"item"`
	PaymentMethod string `json:"payment_method"`
	AmountTWD     int64  `json:"amount_twd"`
	AmountINR     int64  `json:"amount_inr"`
	Note          string `json:"note"`
}

// Currency reports which side of the record carries the payment,
// mirroring the edit form's derivation rule: TWD only when the TWD
// amount is positive, INR otherwise (including the both-zero case).
func (r Record) Currency() Currency {
	if r.AmountTWD > 0 {
		return CurrencyTWD
	}
	return CurrencyINR
}

// Amount returns the single nonzero amount per the derived currency.
func (r Record) Amount() int64 {
	if r.Currency() == CurrencyTWD {
		return r.AmountTWD
	}
	return r.AmountINR
}

// EditDate normalizes the record's stored date to YYYY-MM-DD for the
// entry form. Stored dates may carry a time suffix or use slashes.
func (r Record) EditDate() string {
	d := r.Date
	if i := strings.IndexByte(d, 'T'); i >= 0 {
		d = d[:i]
	}
	return strings.ReplaceAll(d, "/", "-")
}

func FromDataModel(r ledgerDatamodel.Record) Record {
	return Record{
		RowIndex:      r.RowIndex,
		Date:          r.Date,
		Item:          r.Item,
		PaymentMethod: r.PaymentMethod,
		AmountTWD:     r.AmountTWD,
		AmountINR:     r.AmountINR,
		Note:          r.Note,
	}
}

func ToDataModel(r Record) ledgerDatamodel.Record {
	return ledgerDatamodel.Record{
		RowIndex:      r.RowIndex,
		Date:          r.Date,
		Item:          r.Item,
		PaymentMethod: r.PaymentMethod,
		AmountTWD:     r.AmountTWD,
		AmountINR:     r.AmountINR,
		Note:          r.Note,
	}
}

func FromDataModelSlice(records []ledgerDatamodel.Record) []Record {
	result := make([]Record, len(records))
	for i, r := range records {
		result[i] = FromDataModel(r)
	}
	return result
}
