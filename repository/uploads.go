package repository

import (
	"context"

	"notebuddy/model"
	"notebuddy/store"
)

const uploadsCollection = "upload"

type UploadsRepo struct {
	Store store.Store
}

func NewUploadsRepo(st store.Store) *UploadsRepo {
	return &UploadsRepo{Store: st}
}

func (r *UploadsRepo) Create(ctx context.Context, upload model.Upload) (model.Upload, error) {
	doc, err := store.Encode(upload)
	if err != nil {
		return model.Upload{}, err
	}
	created, err := r.Store.Create(ctx, uploadsCollection, doc)
	if err != nil {
		return model.Upload{}, err
	}
	var out model.Upload
	if err := store.Decode(created, &out); err != nil {
		return model.Upload{}, err
	}
	return out, nil
}

func (r *UploadsRepo) Get(ctx context.Context, id string) (*model.Upload, error) {
	doc, err := r.Store.FindOne(ctx, uploadsCollection, store.Query{store.IDEq(id)})
	if err != nil {
		return nil, err
	}
	var upload model.Upload
	if err := store.Decode(doc, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

// List returns uploads newest-first, optionally filtered by review status.
func (r *UploadsRepo) List(ctx context.Context, status string, skip, limit int64) ([]model.Upload, error) {
	q := store.Query{}
	if status != "" {
		q = append(q, store.Eq("status", status))
	}

	docs, err := r.Store.Find(ctx, uploadsCollection, q, store.FindOptions{
		Sort:  store.Sort{Field: "created_at", Desc: true},
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	uploads := make([]model.Upload, 0, len(docs))
	if err := store.DecodeAll(docs, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *UploadsRepo) MarkAccepted(ctx context.Context, id string, assignedPoints int, reviewerNote *string) error {
	patch := store.Document{
		"status":          model.UploadStatusAccepted,
		"assigned_points": assignedPoints,
		"reviewer_note":   reviewerNote,
	}
	_, err := r.Store.Update(ctx, uploadsCollection, store.Query{store.IDEq(id)}, patch)
	return err
}

func (r *UploadsRepo) MarkRejected(ctx context.Context, id string, reason string) error {
	patch := store.Document{
		"status":        model.UploadStatusRejected,
		"reviewer_note": reason,
	}
	_, err := r.Store.Update(ctx, uploadsCollection, store.Query{store.IDEq(id)}, patch)
	return err
}
