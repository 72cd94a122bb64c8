package ledger

import (
	"strconv"
	"strings"
	"time"
)

type EditorMode string

const (
	EditorClosed EditorMode = "closed"
	EditorAdd    EditorMode = "add"
	EditorEdit   EditorMode = "edit"
)

// EditorState is the expense entry form as an explicit value object:
// mode, the row being edited (nil for add), and the field values. It is
// pure data; the submission round-trip lives in Service.
type EditorState struct {
	Mode          EditorMode `json:"mode"`
	TargetRow     *int       `json:"target_row,omitempty"`
	Date          string     `json:"date"` // YYYY-MM-DD
	Item          string     `json:"item"`
	Amount        string     `json:"amount"`
	Currency      Currency   `json:"currency"`
	PaymentMethod string     `json:"payment_method"`
	Note          string     `json:"note"`
}

// OpenForAdd resets the form for a new entry: today's date, empty
// amount/item/note, INR selected, cash.
func OpenForAdd(today time.Time) EditorState {
	return EditorState{
		Mode:          EditorAdd,
		Date:          today.Format("2006-01-02"),
		Currency:      CurrencyINR,
		PaymentMethod: PaymentMethodCash,
	}
}

// OpenForEdit populates the form from an existing record. The currency
// selection is derived, not stored: TWD when the TWD amount is
// positive, INR otherwise. A record with both amounts zero (or a
// negative amount) therefore opens as INR with the INR value; that is
// the documented rule, not an accident to fix.
func OpenForEdit(r Record) EditorState {
	method := r.PaymentMethod
	if method == "" {
		method = PaymentMethodCash
	}

	s := EditorState{
		Mode:          EditorEdit,
		TargetRow:     &r.RowIndex,
		Date:          r.EditDate(),
		Item:          r.Item,
		PaymentMethod: method,
		Note:          r.Note,
		Currency:      r.Currency(),
	}
	s.Amount = strconv.FormatInt(r.Amount(), 10)
	return s
}

// BuildPayload turns the form into the remote write body. It returns
// ok=false when item or amount is empty; submission is then a silent
// no-op and the form stays as it is. The typed amount is routed
// entirely into the selected currency's field; the other side is forced
// to zero so the single-currency invariant holds regardless of what the
// edited record used to contain.
func (s EditorState) BuildPayload() (MutationPayload, bool) {
	if strings.TrimSpace(s.Item) == "" || s.Amount == "" {
		return MutationPayload{}, false
	}

	// decimal input is tolerated and truncated to whole units, anything
	// unparseable becomes zero
	parsed, err := strconv.ParseFloat(strings.TrimSpace(s.Amount), 64)
	if err != nil {
		parsed = 0
	}
	total := int64(parsed)

	p := MutationPayload{
		Action:      ActionAdd,
		RowIndex:    s.TargetRow,
		Date:        WireDate(s.Date),
		Item:        strings.TrimSpace(s.Item),
		Payer:       s.PaymentMethod,
		PaymentType: "",
		Note:        strings.TrimSpace(s.Note),
	}
	if s.Mode == EditorEdit {
		p.Action = ActionEdit
	}

	if s.Currency == CurrencyTWD {
		p.AmountTWD = total
	} else {
		p.AmountINR = total
	}

	return p, true
}

// WireDate converts the form's YYYY-MM-DD into the YYYY/MM/DD the store
// expects.
func WireDate(d string) string {
	return strings.ReplaceAll(d, "-", "/")
}

// DeleteFlow is the two-step delete confirmation: idle → staged →
// confirmed/cancelled. Only one row can be staged at a time; staging a
// new one replaces the previous stage.
type DeleteFlow struct {
	staged *int
}

func (f *DeleteFlow) Stage(rowIndex int) {
	f.staged = &rowIndex
}

func (f *DeleteFlow) Cancel() {
	f.staged = nil
}

// Staged returns the staged row index, or nil when idle.
func (f *DeleteFlow) Staged() *int {
	return f.staged
}
