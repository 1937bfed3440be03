package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/vovakirdan/tui-battleship/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(id, winner, kind string, shots int) game.Result {
	loserKind := "human"
	if kind == "human" {
		loserKind = "cpu"
	}
	return game.Result{
		MatchID:    id,
		Winner:     winner,
		WinnerKind: kind,
		Loser:      "Other",
		LoserKind:  loserKind,
		Turns:      shots*2 - 1,
		Shots:      shots,
		Hits:       17,
		Duration:   1500 * time.Millisecond,
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []game.Result{
		result("m1", "Jack Sparrow", "cpu", 50),
		result("m2", "Will Turner", "human", 40),
		result("m3", "Jack Sparrow", "cpu", 45),
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recent))
	}
	if recent[0].MatchID != "m3" || recent[1].MatchID != "m2" {
		t.Errorf("order = %s, %s; expected m3, m2", recent[0].MatchID, recent[1].MatchID)
	}

	r := recent[1]
	if r.Winner != "Will Turner" || r.WinnerKind != "human" || r.Shots != 40 || r.Hits != 17 {
		t.Errorf("record = %+v", r)
	}
	if r.Duration != 1500*time.Millisecond {
		t.Errorf("duration = %v", r.Duration)
	}
	if !r.FinishedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("finished at = %v", r.FinishedAt)
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(result("dup", "A", "cpu", 30)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveResult(result("dup", "A", "cpu", 30)); err == nil {
		t.Error("saving the same match twice should fail")
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("empty summary = %+v", sum)
	}

	store.SaveResult(result("m1", "Jack Sparrow", "cpu", 50))
	store.SaveResult(result("m2", "Will Turner", "human", 40))
	store.SaveResult(result("m3", "Jack Sparrow", "cpu", 60))

	sum, err = store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Games != 3 || sum.CPUWins != 2 || sum.HumanWins != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.AvgShotsToWin != 50 || sum.BestShots != 40 {
		t.Errorf("shots: avg %v best %d", sum.AvgShotsToWin, sum.BestShots)
	}
}

func TestStoreLeaders(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result("m1", "Jack Sparrow", "cpu", 50))
	store.SaveResult(result("m2", "Will Turner", "human", 40))
	store.SaveResult(result("m3", "Jack Sparrow", "cpu", 60))
	store.SaveResult(result("m4", "Elizabeth Swann", "human", 35))

	leaders, err := store.Leaders(10)
	if err != nil {
		t.Fatalf("Leaders() failed: %v", err)
	}
	want := []Standing{
		{Name: "Jack Sparrow", Wins: 2, BestShots: 50},
		{Name: "Elizabeth Swann", Wins: 1, BestShots: 35},
		{Name: "Will Turner", Wins: 1, BestShots: 40},
	}
	if len(leaders) != len(want) {
		t.Fatalf("leaders = %+v", leaders)
	}
	for i := range want {
		if leaders[i] != want[i] {
			t.Errorf("leaders[%d] = %+v, expected %+v", i, leaders[i], want[i])
		}
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveResult(result("m1", "A", "cpu", 30))

	sum, err := b.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Games != 0 {
		t.Errorf("second store sees %d games", sum.Games)
	}
}

func TestStoreSaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS matches").
		WillReturnResult(sqlmock.NewResult(0, 0))
	diskFull := errors.New("disk full")
	mock.ExpectExec("INSERT INTO matches").
		WillReturnError(diskFull)

	store, err := OpenDB(db)
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}

	_, err = store.SaveResult(result("m1", "A", "cpu", 30))
	if !errors.Is(err, diskFull) {
		t.Errorf("SaveResult() error = %v, expected wrapped disk full", err)
	}
	if err == nil || !strings.Contains(err.Error(), "storage: cannot save match m1") {
		t.Errorf("error message = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStoreMigrationError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("read-only"))

	if _, err := OpenDB(db); err == nil || !strings.Contains(err.Error(), "migration failed") {
		t.Errorf("OpenDB() error = %v, expected migration failure", err)
	}
}

func TestStoreSummaryQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	store, err := OpenDB(db)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Summary(); err == nil || !strings.Contains(err.Error(), "cannot query summary") {
		t.Errorf("Summary() error = %v", err)
	}
}

func TestStoreRecentScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() failed: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	rows := sqlmock.NewRows([]string{
		"id", "match_id", "winner", "winner_kind", "loser", "loser_kind",
		"turns", "shots", "hits", "duration_ms", "finished_at",
	}).AddRow(7, "abc", "Jack Sparrow", "cpu", "Will Turner", "human", 99, 50, 17, 2500, "2024-05-01T12:00:00Z")
	mock.ExpectQuery("SELECT id, match_id").WithArgs(5).WillReturnRows(rows)

	store, err := OpenDB(db)
	if err != nil {
		t.Fatal(err)
	}
	recent, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != 7 || recent[0].Duration != 2500*time.Millisecond {
		t.Errorf("recent = %+v", recent)
	}
}
