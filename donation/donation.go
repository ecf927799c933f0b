// Package donation defines the donation record pulled from the gift
// ledger and the derivation rules for its financial totals.
package donation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// derivedTotalsCode is the sort-order second character that switches
// total derivation from pass-through to allocation summation.
const derivedTotalsCode = "3"

// Allocation is one named fund within a donation. Amount is nil when the
// ledger row carries no amount for the slot; nil is treated as zero in
// all arithmetic, never as an error.
type Allocation struct {
	Name   string
	Amount *decimal.Decimal
}

// Params carries the raw ledger row values for one donation. Totals are
// derived from these at construction; the raw total/gift values are only
// used verbatim when the sort order does not select derivation.
type Params struct {
	DonorID           string
	TransactionNumber string
	ReceiptNumber     string
	DonorName         string
	EmailAddress      string

	Street1        string
	Street2        string
	Street3        string
	City           string
	State          string
	Zipcode        string
	Country        string
	ForeignAddress string

	GiftReceivedDate time.Time

	Allocations     [4]Allocation
	TotalGiftAmount *decimal.Decimal
	PremiumAmount   *decimal.Decimal

	RawTotalAmount decimal.Decimal
	RawGiftAmount  decimal.Decimal

	SortOrder          string
	DisclosureRequired string
}

// Record is a validated donation ready for the mailing pipeline.
// TotalAmount and GiftAmount are fixed at construction by DeriveTotals;
// the record is immutable afterwards.
type Record struct {
	DonorID           string
	TransactionNumber string
	ReceiptNumber     string
	DonorName         string
	EmailAddress      string

	Street1        string
	Street2        string
	Street3        string
	City           string
	State          string
	Zipcode        string
	Country        string
	ForeignAddress string

	GiftReceivedDate time.Time

	Allocations     [4]Allocation
	TotalGiftAmount *decimal.Decimal
	PremiumAmount   *decimal.Decimal

	SortOrder          string
	DisclosureRequired string

	TotalAmount decimal.Decimal
	GiftAmount  decimal.Decimal
}

// NewRecord validates the raw row and constructs a Record with its
// totals derived. Malformed rows are rejected here so they never reach
// the dispatcher.
func NewRecord(p Params) (*Record, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	total, gift := DeriveTotals(p.Allocations, p.PremiumAmount, p.RawTotalAmount, p.RawGiftAmount, p.SortOrder)

	return &Record{
		DonorID:            p.DonorID,
		TransactionNumber:  p.TransactionNumber,
		ReceiptNumber:      p.ReceiptNumber,
		DonorName:          p.DonorName,
		EmailAddress:       p.EmailAddress,
		Street1:            p.Street1,
		Street2:            p.Street2,
		Street3:            p.Street3,
		City:               p.City,
		State:              p.State,
		Zipcode:            p.Zipcode,
		Country:            p.Country,
		ForeignAddress:     p.ForeignAddress,
		GiftReceivedDate:   p.GiftReceivedDate,
		Allocations:        p.Allocations,
		TotalGiftAmount:    p.TotalGiftAmount,
		PremiumAmount:      p.PremiumAmount,
		SortOrder:          p.SortOrder,
		DisclosureRequired: p.DisclosureRequired,
		TotalAmount:        total,
		GiftAmount:         gift,
	}, nil
}

// DeriveTotals computes the canonical total and gift amounts for a
// donation. When the second character of the sort order (trimmed) is
// "3", the total is the sum of the four allocation amounts plus the
// premium and the gift amount is the allocation sum alone, absent
// amounts counting as zero. Any other sort order, including one shorter
// than two characters, passes the raw values through verbatim.
//
// The sort order is an input rather than a field read mid-assignment:
// derivation happens exactly once, eliminating the ordering hazard of
// the original setter-based design.
func DeriveTotals(allocations [4]Allocation, premium *decimal.Decimal, rawTotal, rawGift decimal.Decimal, sortOrder string) (total, gift decimal.Decimal) {
	if len(sortOrder) < 2 {
		return rawTotal, rawGift
	}

	if strings.TrimSpace(sortOrder[1:2]) != derivedTotalsCode {
		return rawTotal, rawGift
	}

	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(amountOrZero(a.Amount))
	}

	return sum.Add(amountOrZero(premium)), sum
}

func amountOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func validate(p Params) error {
	required := []struct {
		field string
		value string
	}{
		{"donor_id", p.DonorID},
		{"transaction_number", p.TransactionNumber},
		{"receipt_number", p.ReceiptNumber},
		{"donor_name", p.DonorName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "required field is empty")
		}
	}

	if _, err := mail.ParseAddress(p.EmailAddress); err != nil {
		return NewValidationError("email_address", fmt.Sprintf("invalid address %q", p.EmailAddress))
	}

	for i, a := range p.Allocations {
		if a.Amount != nil && a.Amount.IsNegative() {
			return NewValidationError(fmt.Sprintf("allocation_amount_%d", i+1), "amount is negative")
		}
	}
	if p.PremiumAmount != nil && p.PremiumAmount.IsNegative() {
		return NewValidationError("premium_amount", "amount is negative")
	}
	if p.TotalGiftAmount != nil && p.TotalGiftAmount.IsNegative() {
		return NewValidationError("total_gift_amount", "amount is negative")
	}

	return nil
}
