package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "bee.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sq,
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Load(ctx, CurrentGame); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Load on empty store: err = %v, want ErrNotFound", err)
			}
			if err := st.Save(ctx, CurrentGame, []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := st.Save(ctx, CurrentGame, []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Save overwrite: %v", err)
			}
			got, err := st.Load(ctx, CurrentGame)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !bytes.Equal(got, []byte(`{"a":2}`)) {
				t.Fatalf("Load = %s", got)
			}
		})
	}
}

func TestRecordDaily(t *testing.T) {
	ctx := context.Background()
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			rows := []DailyResult{
				{Date: "2026-10-18", Difficulty: "easy", GuessedPoints: 10, PossiblePoints: 100, WordsFound: 4, Rank: "Good Start"},
				{Date: "2026-10-19", Difficulty: "hard", GuessedPoints: 5, PossiblePoints: 60, WordsFound: 2, Rank: "Moving Up"},
				{Date: "2026-10-19", Difficulty: "hard", GuessedPoints: 12, PossiblePoints: 60, WordsFound: 5, Rank: "Good"},
				// lower score for the same day is ignored
				{Date: "2026-10-19", Difficulty: "hard", GuessedPoints: 3, PossiblePoints: 60, WordsFound: 1, Rank: "Beginner"},
			}
			for _, r := range rows {
				if err := st.RecordDaily(ctx, r); err != nil {
					t.Fatalf("RecordDaily: %v", err)
				}
			}

			got, err := st.DailyResults(ctx, 10)
			if err != nil {
				t.Fatalf("DailyResults: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("len = %d, want 2: %+v", len(got), got)
			}
			if got[0].Date != "2026-10-19" || got[0].GuessedPoints != 12 || got[0].WordsFound != 5 {
				t.Errorf("newest = %+v", got[0])
			}
			if got[1].Date != "2026-10-18" {
				t.Errorf("oldest = %+v", got[1])
			}
			if got[0].CreatedAt.IsZero() {
				t.Error("CreatedAt not populated")
			}

			limited, err := st.DailyResults(ctx, 1)
			if err != nil || len(limited) != 1 {
				t.Fatalf("limited = %v, %v", limited, err)
			}
		})
	}
}

func TestMigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bee.db")
	for i := 0; i < 2; i++ {
		st, err := OpenSQLite(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i+1, err)
		}
		if err := st.Save(context.Background(), "k", []byte("v")); err != nil {
			t.Fatalf("Save #%d: %v", i+1, err)
		}
		var n int
		if err := st.db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Fatalf("_migrations rows = %d, want 2", n)
		}
		_ = st.Close()
	}
}

func TestWithParams(t *testing.T) {
	tests := []struct{ dsn, want string }{
		{"bee.db", "bee.db?_busy_timeout=1"},
		{"bee.db?cache=private", "bee.db?cache=private&_busy_timeout=1"},
		{"file:bee.db?mode=rwc", "file:bee.db?mode=rwc&_busy_timeout=1"},
	}
	for _, tt := range tests {
		if got := withParams(tt.dsn, "_busy_timeout=1"); got != tt.want {
			t.Errorf("withParams(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestOpenSQLiteWithQuery(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	st, err := OpenSQLite(filepath.Join(dir, "bee.db") + "?_synchronous=NORMAL")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()
	if err := st.Save(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bee.db")); err != nil {
		t.Fatalf("database file: %v", err)
	}
}
