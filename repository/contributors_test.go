package repository

import (
	"context"
	"testing"

	"notebuddy/model"
	"notebuddy/store"
)

func TestUpsertCreatesThenUpdatesByName(t *testing.T) {
	repo := NewContributorsRepo(store.NewMemoryStore())
	ctx := context.Background()

	firstID, err := repo.Upsert(ctx, model.Contributor{Name: "Asha", Points: 10, College: "LBA"})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if firstID == "" {
		t.Fatal("Upsert returned empty id")
	}

	secondID, err := repo.Upsert(ctx, model.Contributor{Name: "Asha", Points: 25, College: "Other"})
	if err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}
	if secondID != firstID {
		t.Errorf("Upsert by name must reuse the existing document, got %q and %q", firstID, secondID)
	}

	asha, err := repo.FindByName(ctx, "Asha")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if asha == nil {
		t.Fatal("Contributor missing after upsert")
	}
	if asha.Points != 25 || asha.College != "Other" {
		t.Errorf("Upsert did not overwrite fields: %+v", asha)
	}
}

func TestFindByNameMissingIsNotAnError(t *testing.T) {
	repo := NewContributorsRepo(store.NewMemoryStore())

	found, err := repo.FindByName(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("FindByName must not fail on absence: %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil for missing contributor, got %+v", found)
	}
}

func TestLeaderboardOrdersByPointsDescending(t *testing.T) {
	repo := NewContributorsRepo(store.NewMemoryStore())
	ctx := context.Background()

	for name, points := range map[string]int{"Asha": 15, "Ravi": 40, "Mina": 5} {
		if _, err := repo.Create(ctx, model.Contributor{Name: name, Points: points}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	board, err := repo.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(board))
	}
	if board[0].Name != "Ravi" || board[1].Name != "Asha" {
		t.Errorf("Wrong ordering: %+v", board)
	}
}
