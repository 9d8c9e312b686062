package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rickgao/options-data/internal/model"
)

func TestKeyFor(t *testing.T) {
	createdAt := time.Date(2024, 1, 15, 12, 30, 45, 0, time.UTC)
	batch := model.NewBatch(createdAt)

	got := KeyFor("magnificent-seven-options", batch)
	want := "magnificent-seven-options/2024-01-15-12-30.json"
	if got != want {
		t.Errorf("KeyFor = %s, want %s", got, want)
	}
}

func TestKeyFor_TruncatesSeconds(t *testing.T) {
	a := model.NewBatch(time.Date(2024, 1, 15, 12, 30, 1, 0, time.UTC))
	b := model.NewBatch(time.Date(2024, 1, 15, 12, 30, 59, 0, time.UTC))

	if KeyFor("p", a) != KeyFor("p", b) {
		t.Error("keys within the same minute should be identical")
	}
}

// mockS3 captures the last PutObject call.
type mockS3 struct {
	bucket string
	key    string
	body   []byte
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.bucket = *params.Bucket
	m.key = *params.Key
	m.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	mock := &mockS3{}
	store := NewS3Store(mock, "faang-options", nil)

	batch := model.NewBatch(time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC))
	batch.Append(model.OptionRecord{
		UnderlyingTicker: "AAPL",
		CurrentPrice:     187.50,
		Strike:           190,
		ContractTicker:   "O:AAPL240119C00190000",
		Expiration:       "2024-01-19",
	})

	key := KeyFor("magnificent-seven-options", batch)
	if err := store.Put(context.Background(), key, batch); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if mock.bucket != "faang-options" {
		t.Errorf("bucket = %s, want faang-options", mock.bucket)
	}
	if mock.key != key {
		t.Errorf("key = %s, want %s", mock.key, key)
	}

	var decoded struct {
		Records []model.OptionRecord `json:"records"`
	}
	if err := json.Unmarshal(mock.body, &decoded); err != nil {
		t.Fatalf("stored body is not valid JSON: %v", err)
	}
	if len(decoded.Records) != 1 {
		t.Fatalf("stored records = %d, want 1", len(decoded.Records))
	}
	if decoded.Records[0].UnderlyingTicker != "AAPL" {
		t.Errorf("underlying_ticker = %s, want AAPL", decoded.Records[0].UnderlyingTicker)
	}
}
