package store

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestQueryToBSONEq(t *testing.T) {
	filter := Query{Eq("subject", "Math"), Eq("class_level", "12")}.toBSON()
	if filter["subject"] != "Math" || filter["class_level"] != "12" {
		t.Errorf("Unexpected filter: %v", filter)
	}
}

func TestQueryToBSONQuotesSearchInput(t *testing.T) {
	filter := Query{ContainsFold("title", "a+b(c")}.toBSON()
	regex, ok := filter["title"].(primitive.Regex)
	if !ok {
		t.Fatalf("Expected a regex filter, got %T", filter["title"])
	}
	if regex.Options != "i" {
		t.Errorf("Expected case-insensitive options, got %q", regex.Options)
	}
	if regex.Pattern != `a\+b\(c` {
		t.Errorf("Search input must be quoted, got %q", regex.Pattern)
	}
}

func TestQueryToBSONIDMapping(t *testing.T) {
	oid := primitive.NewObjectID()
	filter := Query{IDEq(oid.Hex())}.toBSON()
	if filter["_id"] != oid {
		t.Errorf("Expected public id mapped to %v, got %v", oid, filter["_id"])
	}

	filter = Query{IDEq("definitely-not-hex")}.toBSON()
	if filter["_id"] != primitive.NilObjectID {
		t.Errorf("Malformed id must match nothing, got %v", filter["_id"])
	}
}
