// Package ledger queries the gift receipt table, the external system of
// record for donations. Rows come back filtered to the requested date
// window with matching-gift rows excluded before they reach the mailing
// pipeline.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ggarcia209/go-receipt-recon/apperr"
)

// matchingGiftsCode marks ledger rows that are receipted through the
// matching-gifts process and must never be emailed by this pipeline.
const matchingGiftsCode = "MG"

//go:generate mockgen -destination=../mocks/ledgermock/ledger.go -package=ledgermock . LedgerLogic
type LedgerLogic interface {
	FetchReceipts(ctx context.Context, params FetchReceiptsParams) ([]ReceiptRow, error)
	FetchReconRows(ctx context.Context, startDate, endDate time.Time) (*ReconRows, error)
}

// DynamoDBClientAPI defines the interface for the AWS DynamoDB client methods used by this package.
//
//go:generate mockgen -destination=./dynamodb_client_api_test.go -package=ledger . DynamoDBClientAPI
type DynamoDBClientAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type Ledger struct {
	svc   DynamoDBClientAPI
	table string
}

func NewLedger(cfg aws.Config, table string) *Ledger {
	return &Ledger{
		svc:   dynamodb.NewFromConfig(cfg),
		table: table,
	}
}

// NewLedgerWithClient wires an explicit client. Used by tests.
func NewLedgerWithClient(svc DynamoDBClientAPI, table string) *Ledger {
	return &Ledger{svc: svc, table: table}
}

// FetchReceipts returns the rows to receipt for the window, excluding
// matching-gift rows. Optional receipt/batch filters narrow the scan.
func (l *Ledger) FetchReceipts(ctx context.Context, params FetchReceiptsParams) ([]ReceiptRow, error) {
	cond := dateWindowCondition(params.StartDate, params.EndDate)
	if params.ReceiptNumber != "" {
		cond = cond.And(expression.Name("TRANS_REC_NUMBER").Equal(expression.Value(params.ReceiptNumber)))
	}
	if params.BatchNumber != "" {
		cond = cond.And(expression.Name("PRIM_GIFT_BATCH_NUMBER").Equal(expression.Value(params.BatchNumber)))
	}

	rows, err := l.scan(ctx, cond)
	if err != nil {
		return nil, err
	}

	out := make([]ReceiptRow, 0, len(rows))
	for _, row := range rows {
		if row.GiftTypeCode == matchingGiftsCode {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// FetchReconRows returns the full receipt set for the window plus its
// e-receipt/paper partitions for the reconciliation report. Matching
// gifts stay in the report: reconciliation covers everything receipted.
func (l *Ledger) FetchReconRows(ctx context.Context, startDate, endDate time.Time) (*ReconRows, error) {
	rows, err := l.scan(ctx, dateWindowCondition(startDate, endDate))
	if err != nil {
		return nil, err
	}

	recon := &ReconRows{
		All:       rows,
		EReceipts: make([]ReceiptRow, 0),
		Paper:     make([]ReceiptRow, 0),
	}
	for _, row := range rows {
		if row.EmailProgram {
			recon.EReceipts = append(recon.EReceipts, row)
		} else {
			recon.Paper = append(recon.Paper, row)
		}
	}
	return recon, nil
}

func dateWindowCondition(start, end time.Time) expression.ConditionBuilder {
	return expression.Name("DATE_OF_RECORD").Between(
		expression.Value(start.Format(dateLayout)),
		expression.Value(end.Format(dateLayout)),
	)
}

func (l *Ledger) scan(ctx context.Context, cond expression.ConditionBuilder) ([]ReceiptRow, error) {
	expr, err := expression.NewBuilder().WithFilter(cond).Build()
	if err != nil {
		return nil, apperr.NewInternalError(fmt.Errorf("expression.Build: %w", err))
	}

	rows := make([]ReceiptRow, 0)
	var startKey map[string]types.AttributeValue
	for {
		input := &dynamodb.ScanInput{
			TableName:                 aws.String(l.table),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		}

		page, err := l.svc.Scan(ctx, input)
		if err != nil {
			return nil, NewQueryError(l.table, err)
		}

		var pageRows []ReceiptRow
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageRows); err != nil {
			return nil, apperr.NewInternalError(fmt.Errorf("attributevalue.UnmarshalListOfMaps: %w", err))
		}
		rows = append(rows, pageRows...)

		if page.LastEvaluatedKey == nil {
			return rows, nil
		}
		startKey = page.LastEvaluatedKey
	}
}
