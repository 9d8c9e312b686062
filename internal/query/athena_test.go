package query

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// mockAthena scripts the three Athena calls.
type mockAthena struct {
	startInput *athena.StartQueryExecutionInput
	state      types.QueryExecutionState
	reason     string
	pages      [][]Row // result pages, paginated via NextToken
	pageCalls  int
}

func (m *mockAthena) StartQueryExecution(ctx context.Context, params *athena.StartQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error) {
	m.startInput = params
	return &athena.StartQueryExecutionOutput{QueryExecutionId: aws.String("exec-42")}, nil
}

func (m *mockAthena) GetQueryExecution(ctx context.Context, params *athena.GetQueryExecutionInput, optFns ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error) {
	return &athena.GetQueryExecutionOutput{
		QueryExecution: &types.QueryExecution{
			Status: &types.QueryExecutionStatus{
				State:             m.state,
				StateChangeReason: aws.String(m.reason),
			},
		},
	}, nil
}

func (m *mockAthena) GetQueryResults(ctx context.Context, params *athena.GetQueryResultsInput, optFns ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error) {
	page := m.pages[m.pageCalls]
	m.pageCalls++

	rows := make([]types.Row, len(page))
	for i, r := range page {
		data := make([]types.Datum, len(r))
		for j, col := range r {
			data[j] = types.Datum{VarCharValue: aws.String(col)}
		}
		rows[i] = types.Row{Data: data}
	}

	out := &athena.GetQueryResultsOutput{
		ResultSet: &types.ResultSet{Rows: rows},
	}
	if m.pageCalls < len(m.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestAthenaEngine_Submit(t *testing.T) {
	mock := &mockAthena{}
	engine := NewAthenaEngine(mock, "options_analytics", "s3://bucket/results/", nil)

	id, err := engine.Submit(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if id != "exec-42" {
		t.Errorf("execution id = %s, want exec-42", id)
	}
	if got := aws.ToString(mock.startInput.QueryExecutionContext.Database); got != "options_analytics" {
		t.Errorf("database = %s, want options_analytics", got)
	}
	if got := aws.ToString(mock.startInput.ResultConfiguration.OutputLocation); got != "s3://bucket/results/" {
		t.Errorf("output location = %s, want s3://bucket/results/", got)
	}
}

func TestAthenaEngine_Status(t *testing.T) {
	mock := &mockAthena{state: types.QueryExecutionStateFailed, reason: "exhausted resources"}
	engine := NewAthenaEngine(mock, "db", "s3://b/", nil)

	status, err := engine.Status(context.Background(), "exec-42")
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if status.State != StateFailed {
		t.Errorf("state = %s, want %s", status.State, StateFailed)
	}
	if status.Reason != "exhausted resources" {
		t.Errorf("reason = %q, want the provider's reason", status.Reason)
	}
	if !status.State.Terminal() {
		t.Error("FAILED should be terminal")
	}
}

func TestAthenaEngine_ResultsPagination(t *testing.T) {
	mock := &mockAthena{
		pages: [][]Row{
			{{"header"}, {"row1"}},
			{{"row2"}},
		},
	}
	engine := NewAthenaEngine(mock, "db", "s3://b/", nil)

	rows, err := engine.Results(context.Background(), "exec-42")
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 across pages", len(rows))
	}
	if rows[2][0] != "row2" {
		t.Errorf("rows[2][0] = %s, want row2", rows[2][0])
	}
}

func TestState_Terminal(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateQueued, false},
		{StateRunning, false},
		{StateSucceeded, true},
		{StateFailed, true},
		{StateCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
