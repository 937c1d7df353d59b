package repository

import (
	"context"

	"notebuddy/model"
	"notebuddy/store"
)

const (
	subjectsCollection = "subject"
	collegesCollection = "college"
)

// LookupsRepo manages the Subject and College reference lists.
type LookupsRepo struct {
	Store store.Store
}

func NewLookupsRepo(st store.Store) *LookupsRepo {
	return &LookupsRepo{Store: st}
}

func (r *LookupsRepo) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	docs, err := r.Store.Find(ctx, subjectsCollection, store.Query{}, store.FindOptions{
		Sort: store.Sort{Field: "name"},
	})
	if err != nil {
		return nil, err
	}
	subjects := make([]model.Subject, 0, len(docs))
	if err := store.DecodeAll(docs, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *LookupsRepo) CreateSubject(ctx context.Context, subject model.Subject) (string, error) {
	return r.create(ctx, subjectsCollection, subject)
}

func (r *LookupsRepo) ListColleges(ctx context.Context) ([]model.College, error) {
	docs, err := r.Store.Find(ctx, collegesCollection, store.Query{}, store.FindOptions{
		Sort: store.Sort{Field: "name"},
	})
	if err != nil {
		return nil, err
	}
	colleges := make([]model.College, 0, len(docs))
	if err := store.DecodeAll(docs, &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *LookupsRepo) CreateCollege(ctx context.Context, college model.College) (string, error) {
	return r.create(ctx, collegesCollection, college)
}

func (r *LookupsRepo) create(ctx context.Context, collection string, v any) (string, error) {
	doc, err := store.Encode(v)
	if err != nil {
		return "", err
	}
	created, err := r.Store.Create(ctx, collection, doc)
	if err != nil {
		return "", err
	}
	id, _ := created["id"].(string)
	return id, nil
}
