package donation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	standardDisclosure = "Following are the details for your recent online gift. " +
		"Unless indicated below, no goods or services were provided in exchange for this gift."

	extendedDisclosure = "Following are the details for your recent online gift. " +
		"Unless indicated below, no goods or services were provided in exchange for this gift, " +
		"but it does entitle you to a discount(s) on purchases of certain goods and/or services." +
		" If used, a portion of your gift may not be tax deductible; please consult your tax advisor."
)

const allocationRowFormat = `<tr>
                                        <td align="left" valign="top">
                                            <p>%s:</p>
                                        </td>
                                        <td align="right">
                                            <p>%s</p>
                                        </td>
                                    </tr>`

// FormatAllocations renders the donation's fund allocations as HTML
// table rows in slot order 1..4. A row is emitted only when the slot has
// both a name and an amount. No qualifying slot yields an empty
// fragment. Duplicate names across slots are rendered as-is.
func FormatAllocations(rec *Record) string {
	var funds strings.Builder
	for _, a := range rec.Allocations {
		if a.Name == "" || a.Amount == nil {
			continue
		}
		fmt.Fprintf(&funds, allocationRowFormat, a.Name, FormatCurrency(a.Amount))
	}
	return funds.String()
}

// Disclosure selects the receipt disclosure language. A trimmed flag of
// "Y" selects the extended discount-bearing text; anything else selects
// the standard text.
func Disclosure(flag string) string {
	if strings.TrimSpace(flag) == "Y" {
		return extendedDisclosure
	}
	return standardDisclosure
}

// FormatCurrency renders an amount as US currency with two decimal
// places and thousands separators. A nil amount renders as $0.00.
func FormatCurrency(d *decimal.Decimal) string {
	if d == nil {
		return "$0.00"
	}
	return FormatCurrencyValue(*d)
}

// FormatCurrencyValue renders a non-optional amount as US currency.
func FormatCurrencyValue(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := "$" + grouped.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
