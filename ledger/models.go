package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ggarcia209/go-receipt-recon/donation"
)

// dateLayout is the calendar-day format used for DATE_OF_RECORD values
// in the gift receipt table.
const dateLayout = "2006-01-02"

// ReceiptRow is one gift receipt row as stored in the ledger table.
// Attribute names follow the ledger's reporting column names.
type ReceiptRow struct {
	TransRecNumber      string   `dynamodbav:"TRANS_REC_NUMBER"`
	DonorIDNumber       string   `dynamodbav:"DONOR_ID_NUMBER"`
	MailingName         string   `dynamodbav:"MAILING_NAME"`
	EmailAddress        string   `dynamodbav:"EMAIL_ADDRESS"`
	Line1               string   `dynamodbav:"LINE_1"`
	Line2               string   `dynamodbav:"LINE_2"`
	Line3               string   `dynamodbav:"LINE_3"`
	DateOfRecord        string   `dynamodbav:"DATE_OF_RECORD"`
	AllocName1          string   `dynamodbav:"ALLOC_NAME1"`
	AllocName2          string   `dynamodbav:"ALLOC_NAME2"`
	AllocName3          string   `dynamodbav:"ALLOC_NAME3"`
	AllocName4          string   `dynamodbav:"ALLOC_NAME4"`
	AllocAmt1           *float64 `dynamodbav:"ALLOC_AMT1"`
	AllocAmt2           *float64 `dynamodbav:"ALLOC_AMT2"`
	AllocAmt3           *float64 `dynamodbav:"ALLOC_AMT3"`
	AllocAmt4           *float64 `dynamodbav:"ALLOC_AMT4"`
	GiftAmt             *float64 `dynamodbav:"GIFT_AMT"`
	Premium             *float64 `dynamodbav:"PREMIUM"`
	TotalAmt            *float64 `dynamodbav:"TOTAL_AMT"`
	SortOrder           string   `dynamodbav:"SORT_ORDER"`
	InclDiscDisclosure  string   `dynamodbav:"INCL_DISC_DISCLOSURE"`
	GiftTypeCode        string   `dynamodbav:"GIFT_TYPE_CODE"`
	PaymentType         string   `dynamodbav:"PAYMENT_TYPE"`
	PrimGiftBatchNumber string   `dynamodbav:"PRIM_GIFT_BATCH_NUMBER"`
	EmailProgram        bool     `dynamodbav:"EMAIL_PROGRAM"`
}

// FetchReceiptsParams filters the mailing fetch. ReceiptNumber and
// BatchNumber narrow the window when non-empty.
type FetchReceiptsParams struct {
	StartDate     time.Time
	EndDate       time.Time
	ReceiptNumber string
	BatchNumber   string
}

// ReconRows groups the reconciliation row sets for one date window.
type ReconRows struct {
	All       []ReceiptRow
	EReceipts []ReceiptRow
	Paper     []ReceiptRow
}

// DonationParams maps a ledger row onto the donation constructor input.
func (r ReceiptRow) DonationParams() donation.Params {
	received, _ := time.Parse(dateLayout, r.DateOfRecord)

	return donation.Params{
		DonorID:           r.DonorIDNumber,
		TransactionNumber: r.TransRecNumber,
		ReceiptNumber:     r.TransRecNumber,
		DonorName:         r.MailingName,
		EmailAddress:      r.EmailAddress,
		Street1:           r.Line1,
		Street2:           r.Line2,
		Street3:           r.Line3,
		GiftReceivedDate:  received,
		Allocations: [4]donation.Allocation{
			{Name: r.AllocName1, Amount: toDecimal(r.AllocAmt1)},
			{Name: r.AllocName2, Amount: toDecimal(r.AllocAmt2)},
			{Name: r.AllocName3, Amount: toDecimal(r.AllocAmt3)},
			{Name: r.AllocName4, Amount: toDecimal(r.AllocAmt4)},
		},
		TotalGiftAmount:    toDecimal(r.GiftAmt),
		PremiumAmount:      toDecimal(r.Premium),
		RawTotalAmount:     valueOrZero(r.TotalAmt),
		RawGiftAmount:      valueOrZero(r.GiftAmt),
		SortOrder:          r.SortOrder,
		DisclosureRequired: r.InclDiscDisclosure,
	}
}

func toDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func valueOrZero(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}

// ExportColumns returns the CSV header names for the receipt export, in
// fixed order.
func ExportColumns() []string {
	return []string{
		"TRANS_REC_NUMBER", "DONOR_ID_NUMBER", "MAILING_NAME", "EMAIL_ADDRESS",
		"LINE_1", "LINE_2", "LINE_3", "DATE_OF_RECORD",
		"ALLOC_NAME1", "ALLOC_AMT1", "ALLOC_NAME2", "ALLOC_AMT2",
		"ALLOC_NAME3", "ALLOC_AMT3", "ALLOC_NAME4", "ALLOC_AMT4",
		"GIFT_AMT", "PREMIUM", "TOTAL_AMT", "SORT_ORDER",
		"INCL_DISC_DISCLOSURE", "GIFT_TYPE_CODE", "PAYMENT_TYPE",
		"PRIM_GIFT_BATCH_NUMBER",
	}
}

// ExportValues returns the row's CSV field values in ExportColumns order.
func (r ReceiptRow) ExportValues() []string {
	return []string{
		r.TransRecNumber, r.DonorIDNumber, r.MailingName, r.EmailAddress,
		r.Line1, r.Line2, r.Line3, r.DateOfRecord,
		r.AllocName1, amountString(r.AllocAmt1), r.AllocName2, amountString(r.AllocAmt2),
		r.AllocName3, amountString(r.AllocAmt3), r.AllocName4, amountString(r.AllocAmt4),
		amountString(r.GiftAmt), amountString(r.Premium), amountString(r.TotalAmt), r.SortOrder,
		r.InclDiscDisclosure, r.GiftTypeCode, r.PaymentType,
		r.PrimGiftBatchNumber,
	}
}

func amountString(f *float64) string {
	if f == nil {
		return ""
	}
	return decimal.NewFromFloat(*f).StringFixed(2)
}
