package ledger

// EntryFormDTO carries the expense entry form as submitted by a client.
// Amount stays a string on purpose: the form treats an empty amount as
// "nothing to submit" rather than as zero.
type EntryFormDTO struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Item          string `json:"item"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"` // INR or TWD
	PaymentMethod string `json:"payment_method"`
	Note          string `json:"note"`
}

// Mutation action tags understood by the remote store's single write
// endpoint.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// MutationPayload is the body of an add/edit write, field names exactly
// as the spreadsheet web app expects them. RowIndex is nil for adds.
// Exactly one of AmountTWD/AmountINR is nonzero; the other is forced to
// zero. PaymentType is a legacy column kept empty on every write.
type MutationPayload struct {
	Action      string `json:"action"`
	RowIndex    *int   `json:"rowIndex"`
	Date        string `json:"date"` // YYYY/MM/DD
	Item        string `json:"item"`
	Payer       string `json:"payer"`
	AmountTWD   int64  `json:"amountTwd"`
	AmountINR   int64  `json:"amountInr"`
	PaymentType string `json:"paymentType"`
	Note        string `json:"note"`
}

// DeletePayload is the body of a delete write.
type DeletePayload struct {
	Action   string `json:"action"`
	RowIndex int    `json:"rowIndex"`
}

// LedgerResponse is the read-side response: the full record list plus
// the aggregate view computed from it, and the sheet link for clients
// that want to jump to the raw spreadsheet.
type LedgerResponse struct {
	Records  []Record `json:"records"`
	Summary  Summary  `json:"summary"`
	SheetURL string   `json:"sheet_url,omitempty"`
}
