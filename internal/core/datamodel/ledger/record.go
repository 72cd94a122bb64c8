package ledger

// Sheet column layout for an expense row:
// A date, B item, C payment method, D TWD amount, E INR amount,
// F legacy (unused), G note, H row index.
const (
	ColDate = iota
	ColItem
	ColPaymentMethod
	ColAmountTWD
	ColAmountINR
	ColLegacy
	ColNote
	ColRowIndex
)

// Record is the wire/storage shape of one ledger line. RowIndex is the
// stable identity assigned by the remote store; it is never reused.
type Record struct {
	RowIndex      int    `json:"rowIndex"`
	Date          string `json:"date"`
	Item          string `json:"item"`
	PaymentMethod string `json:"paymentMethod"`
	AmountTWD     int64  `json:"amountTwd"`
	AmountINR     int64  `json:"amountInr"`
	Note          string `json:"note"`
}
