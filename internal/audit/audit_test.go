package audit

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/01moynul/taptosell-console/internal/database"
)

type failingRecorder struct {
	NoopRecorder
	calls int
}

func (f *failingRecorder) Record(context.Context, Entry) error {
	f.calls++
	return errors.New("connection reset")
}

func TestSafeSwallowsRecorderErrors(t *testing.T) {
	r := &failingRecorder{}
	record := Safe(r)
	record(context.Background(), Entry{Resource: "admin/payouts", Action: "patch"})
	if r.calls != 1 {
		t.Fatalf("expected one Record call, got %d", r.calls)
	}
}

func TestNoopRecorderListsNothing(t *testing.T) {
	entries, err := NoopRecorder{}.Recent(context.Background(), 10)
	if err != nil || entries == nil || len(entries) != 0 {
		t.Fatalf("Recent = %#v, %v", entries, err)
	}
}

func TestClampAndTruncate(t *testing.T) {
	for in, want := range map[int]int{0: 50, -3: 50, 20: 20, 1000: 200} {
		if got := clampLimit(in); got != want {
			t.Fatalf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
	if got := truncate(strings.Repeat("é", 600), 512); len([]rune(got)) != 512 {
		t.Fatalf("truncate kept %d runes", len([]rune(got)))
	}
}

// TestMySQLRecorderRoundTrip runs against a real MySQL when AUDIT_TEST_DSN is set.
func TestMySQLRecorderRoundTrip(t *testing.T) {
	dsn := os.Getenv("AUDIT_TEST_DSN")
	if dsn == "" {
		t.Skip("AUDIT_TEST_DSN not set")
	}
	db, err := database.OpenDB(dsn)
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	rec, err := NewMySQLRecorder(ctx, db)
	if err != nil {
		t.Fatalf("NewMySQLRecorder: %v", err)
	}
	want := Entry{RequestID: "req-test", ActorID: 1, Resource: "admin/subscription-plans", EntityID: "7", Action: "update", OK: true, Message: "ok"}
	if err := rec.Record(ctx, want); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := rec.Recent(ctx, 1)
	if err != nil || len(got) != 1 {
		t.Fatalf("Recent = %+v, %v", got, err)
	}
	if got[0].RequestID != want.RequestID || got[0].EntityID != want.EntityID || !got[0].OK {
		t.Fatalf("unexpected entry %+v", got[0])
	}
}

func TestOpenDBRequiresDSN(t *testing.T) {
	if _, err := database.OpenDB(""); !errors.Is(err, database.ErrNoDSN) {
		t.Fatalf("expected ErrNoDSN, got %v", err)
	}
}
