package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateStampsTimestampsAndID(t *testing.T) {
	st := NewMemoryStore()

	doc, err := st.Create(context.Background(), "note", Document{"title": "Algebra Notes"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	id, _ := doc["id"].(string)
	if id == "" {
		t.Error("Created document has no id")
	}
	if !IsValidID(id) {
		t.Errorf("Created id %q is not a valid public id", id)
	}
	if _, leaked := doc["_id"]; leaked {
		t.Error("Internal identifier leaked into document")
	}

	created, _ := doc["created_at"].(string)
	updated, _ := doc["updated_at"].(string)
	if created == "" || created != updated {
		t.Errorf("Expected created_at == updated_at, got %q and %q", created, updated)
	}
	if _, err := time.Parse(TimeLayout, created); err != nil {
		t.Errorf("created_at %q does not parse: %v", created, err)
	}
}

func TestUpdateAdvancesUpdatedAtOnly(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	doc, err := st.Create(ctx, "note", Document{"title": "Before"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id := doc["id"].(string)
	createdAt := doc["created_at"].(string)

	time.Sleep(5 * time.Millisecond)

	modified, err := st.Update(ctx, "note", Query{IDEq(id)}, Document{
		"title":      "After",
		"id":         "hijacked",
		"created_at": "hijacked",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if modified != 1 {
		t.Fatalf("Expected 1 modified document, got %d", modified)
	}

	after, err := st.FindOne(ctx, "note", Query{IDEq(id)})
	if err != nil {
		t.Fatalf("FindOne after update failed: %v", err)
	}
	if after["title"] != "After" {
		t.Errorf("Expected title After, got %v", after["title"])
	}
	if after["id"] != id {
		t.Error("Update must not rename the id")
	}
	if after["created_at"] != createdAt {
		t.Error("Update must not change created_at")
	}
	if after["updated_at"].(string) <= createdAt {
		t.Errorf("Expected updated_at to advance past %q, got %q", createdAt, after["updated_at"])
	}
}

func TestFindPaginationHasNoOverlap(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := st.Create(ctx, "note", Document{"n": i}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	seen := map[any]bool{}
	for skip := int64(0); skip < 5; skip += 2 {
		page, err := st.Find(ctx, "note", Query{}, FindOptions{
			Sort:  Sort{Field: "n"},
			Skip:  skip,
			Limit: 2,
		})
		if err != nil {
			t.Fatalf("Find failed: %v", err)
		}
		if len(page) > 2 {
			t.Fatalf("Page of limit 2 has %d items", len(page))
		}
		for _, doc := range page {
			if seen[doc["n"]] {
				t.Errorf("Document n=%v returned on two pages", doc["n"])
			}
			seen[doc["n"]] = true
		}
	}
	if len(seen) != 5 {
		t.Errorf("Expected 5 distinct documents across pages, got %d", len(seen))
	}
}

func TestMalformedIDMatchesNothing(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if _, err := st.Create(ctx, "note", Document{"title": "x"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := st.FindOne(ctx, "note", Query{IDEq("not-a-valid-id")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for malformed id, got %v", err)
	}

	docs, err := st.Find(ctx, "note", Query{IDEq("not-a-valid-id")}, FindOptions{})
	if err != nil {
		t.Fatalf("Find with malformed id must not fail, got %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("Malformed id matched %d documents", len(docs))
	}
}

func TestIncrementRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	doc, err := st.Create(ctx, "contributor", Document{"name": "Asha", "points": 10})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id := doc["id"].(string)

	up, err := st.Increment(ctx, "contributor", Query{IDEq(id)}, "points", 5)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if toFloat(up["points"]) != 15 {
		t.Errorf("Expected 15 points, got %v", up["points"])
	}

	down, err := st.Increment(ctx, "contributor", Query{IDEq(id)}, "points", -5)
	if err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if toFloat(down["points"]) != 10 {
		t.Errorf("Expected points back at 10, got %v", down["points"])
	}

	if _, err := st.Increment(ctx, "contributor", Query{IDEq("507f1f77bcf86cd799439011")}, "points", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing contributor, got %v", err)
	}
}

func TestFindOrCreateKeepsSingleton(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	first, err := st.FindOrCreate(ctx, "settings", Query{}, Document{"language_default": "en"})
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}
	second, err := st.FindOrCreate(ctx, "settings", Query{}, Document{"language_default": "ne"})
	if err != nil {
		t.Fatalf("FindOrCreate failed: %v", err)
	}

	if first["id"] != second["id"] {
		t.Error("FindOrCreate created a second singleton document")
	}
	if second["language_default"] != "en" {
		t.Errorf("Second FindOrCreate must return the existing document, got %v", second["language_default"])
	}
	if st.Count("settings") != 1 {
		t.Errorf("Expected exactly one settings document, got %d", st.Count("settings"))
	}
}

func TestContainsFoldMatchesLiterally(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for _, title := range []string{"Algebra Notes", "Biology Basics", "C++ Primer"} {
		if _, err := st.Create(ctx, "note", Document{"title": title}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	docs, err := st.Find(ctx, "note", Query{ContainsFold("title", "algebra")}, FindOptions{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(docs) != 1 || docs[0]["title"] != "Algebra Notes" {
		t.Errorf("Expected the Algebra note, got %v", docs)
	}

	// Metacharacters in the query are literal text, not a pattern.
	docs, err = st.Find(ctx, "note", Query{ContainsFold("title", "c++")}, FindOptions{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(docs) != 1 || docs[0]["title"] != "C++ Primer" {
		t.Errorf("Expected the C++ note, got %v", docs)
	}
}

func TestDeleteReturnsRemovedCount(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := st.Create(ctx, "note", Document{"subject": "Math"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if _, err := st.Create(ctx, "note", Document{"subject": "Biology"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	removed, err := st.Delete(ctx, "note", Query{Eq("subject", "Math")})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 removed, got %d", removed)
	}
	if st.Count("note") != 1 {
		t.Errorf("Expected 1 document left, got %d", st.Count("note"))
	}
}
