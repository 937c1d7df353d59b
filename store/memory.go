package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used by tests and local development.
// The mutex gives it the same single-document atomicity the Mongo adapter
// gets from the server.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Document),
	}
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(collection, doc), nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, q Query, opts FindOptions) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []Document
	for _, doc := range s.collections[collection] {
		if q.matches(doc) {
			matched = append(matched, doc)
		}
	}

	if opts.Sort.Field != "" {
		field, desc := opts.Sort.Field, opts.Sort.Desc
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i][field], matched[j][field])
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if opts.Skip > 0 {
		if opts.Skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[opts.Skip:]
		}
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	result := make([]Document, 0, len(matched))
	for _, doc := range matched {
		result = append(result, copyDocument(doc))
	}
	return result, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, q Query) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc := s.findFirst(collection, q); doc != nil {
		return copyDocument(doc), nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindOrCreate(ctx context.Context, collection string, q Query, defaults Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc := s.findFirst(collection, q); doc != nil {
		return copyDocument(doc), nil
	}
	return s.insert(collection, defaults), nil
}

func (s *MemoryStore) Update(ctx context.Context, collection string, q Query, patch Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findFirst(collection, q)
	if doc == nil {
		return 0, nil
	}
	for k, v := range patch {
		if protectedField(k) {
			continue
		}
		doc[k] = v
	}
	doc["updated_at"] = Now()
	return 1, nil
}

func (s *MemoryStore) Increment(ctx context.Context, collection string, q Query, field string, delta int64) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findFirst(collection, q)
	if doc == nil {
		return nil, ErrNotFound
	}
	doc[field] = toFloat(doc[field]) + float64(delta)
	doc["updated_at"] = Now()
	return copyDocument(doc), nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection string, q Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []Document
	var removed int64
	for _, doc := range s.collections[collection] {
		if q.matches(doc) {
			removed++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return removed, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Count reports the number of documents in a collection, for test assertions.
func (s *MemoryStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// insert expects the lock to be held.
func (s *MemoryStore) insert(collection string, doc Document) Document {
	stored := copyDocument(doc)
	now := Now()
	stored["id"] = primitive.NewObjectID().Hex()
	stored["created_at"] = now
	stored["updated_at"] = now
	s.collections[collection] = append(s.collections[collection], stored)
	return copyDocument(stored)
}

// findFirst expects the lock to be held and returns the live document.
func (s *MemoryStore) findFirst(collection string, q Query) Document {
	for _, doc := range s.collections[collection] {
		if q.matches(doc) {
			return doc
		}
	}
	return nil
}

func (q Query) matches(doc Document) bool {
	for _, cond := range q {
		switch cond.Op {
		case OpContainsFold:
			field, _ := doc[cond.Field].(string)
			if !strings.Contains(strings.ToLower(field), strings.ToLower(fmt.Sprint(cond.Value))) {
				return false
			}
		case OpIDEq:
			id, _ := doc["id"].(string)
			if id == "" || id != fmt.Sprint(cond.Value) {
				return false
			}
		default:
			if compareValues(doc[cond.Field], cond.Value) != 0 {
				return false
			}
		}
	}
	return true
}

// compareValues orders two document values, comparing numerically when both
// sides are numbers and as strings otherwise.
func compareValues(a, b any) int {
	if isNumber(a) && isNumber(b) {
		fa, fb := toFloat(a), toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case Document:
		return copyDocument(val)
	case map[string]any:
		return copyDocument(Document(val))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
