package ledger

import (
	"fmt"
	"strconv"
)

// Breakdown is a per-payment-method subtotal pair. The two currencies
// are independent running sums; they are never converted into one
// another.
type Breakdown struct {
	TWD int64 `json:"twd"`
	INR int64 `json:"inr"`
}

// Display renders a breakdown cell: a zero-valued currency is omitted,
// and only when both are zero does the cell fall back to the "no data"
// marker. "₹500", "$300", "₹500 / $300", "-".
func (b Breakdown) Display() string {
	switch {
	case b.INR > 0 && b.TWD > 0:
		return fmt.Sprintf("₹%s / $%s", groupDigits(b.INR), groupDigits(b.TWD))
	case b.INR > 0:
		return "₹" + groupDigits(b.INR)
	case b.TWD > 0:
		return "$" + groupDigits(b.TWD)
	default:
		return "-"
	}
}

// Summary is the aggregate view recomputed from the full record list on
// every read.
type Summary struct {
	TotalTWD int64                `json:"total_twd"`
	TotalINR int64                `json:"total_inr"`
	ByMethod map[string]Breakdown `json:"by_method"`
}

// Breakdown returns the subtotal pair for a payment method tag,
// zero-valued when the tag never occurs.
func (s Summary) Breakdown(method string) Breakdown {
	return s.ByMethod[method]
}

// Summarize computes grand totals and per-method breakdowns over a
// record list. Records with an unknown payment method tag group under
// their own tag so the sum over all breakdowns always equals the grand
// totals.
func Summarize(records []Record) Summary {
	s := Summary{ByMethod: map[string]Breakdown{
		PaymentMethodCash: {},
		PaymentMethodCard: {},
	}}

	for _, r := range records {
		s.TotalTWD += r.AmountTWD
		s.TotalINR += r.AmountINR

		b := s.ByMethod[r.PaymentMethod]
		b.TWD += r.AmountTWD
		b.INR += r.AmountINR
		s.ByMethod[r.PaymentMethod] = b
	}

	return s
}

// DisplayAmount renders a record's single payment the way the ledger
// list shows it: the INR side wins when positive, the TWD side
// otherwise.
func DisplayAmount(r Record) string {
	if r.AmountINR > 0 {
		return "₹" + groupDigits(r.AmountINR)
	}
	return "$" + groupDigits(r.AmountTWD)
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
