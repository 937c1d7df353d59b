package repository

import (
	"context"
	"errors"

	"notebuddy/model"
	"notebuddy/store"
)

const contributorsCollection = "contributor"

type ContributorsRepo struct {
	Store store.Store
}

func NewContributorsRepo(st store.Store) *ContributorsRepo {
	return &ContributorsRepo{Store: st}
}

// Leaderboard returns contributors ordered by points, highest first.
func (r *ContributorsRepo) Leaderboard(ctx context.Context, limit int64) ([]model.Contributor, error) {
	return r.list(ctx, 0, limit)
}

func (r *ContributorsRepo) List(ctx context.Context, skip, limit int64) ([]model.Contributor, error) {
	return r.list(ctx, skip, limit)
}

func (r *ContributorsRepo) list(ctx context.Context, skip, limit int64) ([]model.Contributor, error) {
	docs, err := r.Store.Find(ctx, contributorsCollection, store.Query{}, store.FindOptions{
		Sort:  store.Sort{Field: "points", Desc: true},
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	contributors := make([]model.Contributor, 0, len(docs))
	if err := store.DecodeAll(docs, &contributors); err != nil {
		return nil, err
	}
	return contributors, nil
}

// FindByName returns (nil, nil) when no contributor carries the name.
func (r *ContributorsRepo) FindByName(ctx context.Context, name string) (*model.Contributor, error) {
	doc, err := r.Store.FindOne(ctx, contributorsCollection, store.Query{store.Eq("name", name)})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var contributor model.Contributor
	if err := store.Decode(doc, &contributor); err != nil {
		return nil, err
	}
	return &contributor, nil
}

func (r *ContributorsRepo) Create(ctx context.Context, contributor model.Contributor) (model.Contributor, error) {
	doc, err := store.Encode(contributor)
	if err != nil {
		return model.Contributor{}, err
	}
	created, err := r.Store.Create(ctx, contributorsCollection, doc)
	if err != nil {
		return model.Contributor{}, err
	}
	var out model.Contributor
	if err := store.Decode(created, &out); err != nil {
		return model.Contributor{}, err
	}
	return out, nil
}

// Upsert creates the contributor, or overwrites the fields of an existing
// one matched by name. Returns the contributor's id either way.
func (r *ContributorsRepo) Upsert(ctx context.Context, contributor model.Contributor) (string, error) {
	existing, err := r.FindByName(ctx, contributor.Name)
	if err != nil {
		return "", err
	}
	if existing == nil {
		created, err := r.Create(ctx, contributor)
		if err != nil {
			return "", err
		}
		return created.ID, nil
	}

	patch, err := store.Encode(contributor)
	if err != nil {
		return "", err
	}
	if _, err := r.Store.Update(ctx, contributorsCollection, store.Query{store.IDEq(existing.ID)}, patch); err != nil {
		return "", err
	}
	return existing.ID, nil
}

// AdjustPoints atomically adds delta to a contributor's points and returns
// the new total. Negative totals are allowed; no clamping is performed.
func (r *ContributorsRepo) AdjustPoints(ctx context.Context, id string, delta int) (int, error) {
	doc, err := r.Store.Increment(ctx, contributorsCollection, store.Query{store.IDEq(id)}, "points", int64(delta))
	if err != nil {
		return 0, err
	}
	var contributor model.Contributor
	if err := store.Decode(doc, &contributor); err != nil {
		return 0, err
	}
	return contributor.Points, nil
}
