package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// AthenaAPI is the subset of the Athena client used by the engine.
type AthenaAPI interface {
	StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	GetQueryResults(ctx context.Context, params *athena.GetQueryResultsInput, optFns ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error)
}

// AthenaEngine runs queries through AWS Athena.
type AthenaEngine struct {
	client         AthenaAPI
	database       string
	outputLocation string
	logger         *slog.Logger
}

// NewAthenaEngine creates an Engine backed by Athena. Results are written to
// outputLocation, an s3:// URI the workgroup can write to.
func NewAthenaEngine(client AthenaAPI, database, outputLocation string, logger *slog.Logger) *AthenaEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &AthenaEngine{
		client:         client,
		database:       database,
		outputLocation: outputLocation,
		logger:         logger,
	}
}

// Submit starts a query execution.
func (e *AthenaEngine) Submit(ctx context.Context, sql string) (string, error) {
	out, err := e.client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString: aws.String(sql),
		QueryExecutionContext: &types.QueryExecutionContext{
			Database: aws.String(e.database),
		},
		ResultConfiguration: &types.ResultConfiguration{
			OutputLocation: aws.String(e.outputLocation),
		},
	})
	if err != nil {
		return "", fmt.Errorf("start query execution: %w", err)
	}

	id := aws.ToString(out.QueryExecutionId)
	e.logger.Info("query submitted", "execution_id", id, "database", e.database)
	return id, nil
}

// Status fetches the execution status for a query.
func (e *AthenaEngine) Status(ctx context.Context, executionID string) (Status, error) {
	out, err := e.client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(executionID),
	})
	if err != nil {
		return Status{}, fmt.Errorf("get query execution %s: %w", executionID, err)
	}

	st := out.QueryExecution.Status
	return Status{
		State:  State(st.State),
		Reason: aws.ToString(st.StateChangeReason),
	}, nil
}

// Results fetches all rows of a completed query, header included.
func (e *AthenaEngine) Results(ctx context.Context, executionID string) ([]Row, error) {
	var rows []Row
	var nextToken *string

	for {
		out, err := e.client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
			QueryExecutionId: aws.String(executionID),
			NextToken:        nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("get query results %s: %w", executionID, err)
		}

		for _, r := range out.ResultSet.Rows {
			row := make(Row, len(r.Data))
			for i, d := range r.Data {
				row[i] = aws.ToString(d.VarCharValue)
			}
			rows = append(rows, row)
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return rows, nil
}
