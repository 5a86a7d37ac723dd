package store

import (
	"testing"
	"time"
)

func TestReadScoreUnknownIdentity(t *testing.T) {
	db := testDB(t)

	rec, err := db.ReadScore("never-written")
	if err != nil {
		t.Fatalf("ReadScore: %v", err)
	}
	if rec.Score != 0 {
		t.Errorf("Score = %d, want 0", rec.Score)
	}
	if rec.UpdatedAt != nil {
		t.Errorf("UpdatedAt = %v, want nil", rec.UpdatedAt)
	}
	if rec.Identity != "never-written" {
		t.Errorf("Identity = %q, want %q", rec.Identity, "never-written")
	}

	// Reading must not create a row
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("row count after read = %d, want 0", count)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	db := testDB(t)

	at := time.UnixMilli(time.Now().UnixMilli())
	if err := db.WriteScore("api-health", 42, at); err != nil {
		t.Fatalf("WriteScore: %v", err)
	}

	rec, err := db.ReadScore("api-health")
	if err != nil {
		t.Fatalf("ReadScore: %v", err)
	}
	if rec.Score != 42 {
		t.Errorf("Score = %d, want 42", rec.Score)
	}
	if rec.UpdatedAt == nil {
		t.Fatal("UpdatedAt = nil, want timestamp")
	}
	if !rec.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt = %v, want %v", rec.UpdatedAt, at)
	}
}

func TestWriteScoreOverwrites(t *testing.T) {
	db := testDB(t)

	t1 := time.UnixMilli(1000)
	t2 := time.UnixMilli(2000)
	if err := db.WriteScore("api-health", 10, t1); err != nil {
		t.Fatalf("first WriteScore: %v", err)
	}
	if err := db.WriteScore("api-health", 0, t2); err != nil {
		t.Fatalf("second WriteScore: %v", err)
	}

	rec, err := db.ReadScore("api-health")
	if err != nil {
		t.Fatalf("ReadScore: %v", err)
	}
	if rec.Score != 0 {
		t.Errorf("Score = %d, want 0", rec.Score)
	}
	if !rec.UpdatedAt.Equal(t2) {
		t.Errorf("UpdatedAt = %v, want %v", rec.UpdatedAt, t2)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestIdentitiesAreIndependent(t *testing.T) {
	db := testDB(t)

	now := time.Now()
	if err := db.WriteScore("disk-health", 5, now); err != nil {
		t.Fatalf("WriteScore: %v", err)
	}
	if err := db.WriteScore("api-health", 90, now); err != nil {
		t.Fatalf("WriteScore: %v", err)
	}

	rec, err := db.ReadScore("disk-health")
	if err != nil {
		t.Fatalf("ReadScore: %v", err)
	}
	if rec.Score != 5 {
		t.Errorf("disk-health Score = %d, want 5", rec.Score)
	}
}

func TestScoreSurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/scorekeep.db"

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	at := time.UnixMilli(time.Now().UnixMilli())
	if err := db.WriteScore("api-health", 77, at); err != nil {
		t.Fatalf("WriteScore: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	rec, err := db2.ReadScore("api-health")
	if err != nil {
		t.Fatalf("ReadScore after reopen: %v", err)
	}
	if rec.Score != 77 {
		t.Errorf("Score after reopen = %d, want 77", rec.Score)
	}
	if rec.UpdatedAt == nil || !rec.UpdatedAt.Equal(at) {
		t.Errorf("UpdatedAt after reopen = %v, want %v", rec.UpdatedAt, at)
	}
}
