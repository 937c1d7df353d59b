package repository

import (
	"context"

	"notebuddy/model"
	"notebuddy/store"
)

const notesCollection = "note"

type NotesRepo struct {
	Store store.Store
}

func NewNotesRepo(st store.Store) *NotesRepo {
	return &NotesRepo{Store: st}
}

// ListNotesOptions filters and paginates the public catalog.
type ListNotesOptions struct {
	Query      string // case-insensitive title match
	Subject    string
	ClassLevel string
	College    string
	SortKey    string // new (default), likes, downloads
	Skip       int64
	Limit      int64
}

func (r *NotesRepo) List(ctx context.Context, opts ListNotesOptions) ([]model.Note, error) {
	q := store.Query{}
	if opts.Subject != "" {
		q = append(q, store.Eq("subject", opts.Subject))
	}
	if opts.ClassLevel != "" {
		q = append(q, store.Eq("class_level", opts.ClassLevel))
	}
	if opts.College != "" {
		q = append(q, store.Eq("college", opts.College))
	}
	if opts.Query != "" {
		q = append(q, store.ContainsFold("title", opts.Query))
	}

	sort := store.Sort{Field: "created_at", Desc: true}
	switch opts.SortKey {
	case "likes":
		sort = store.Sort{Field: "likes", Desc: true}
	case "downloads":
		sort = store.Sort{Field: "downloads", Desc: true}
	}

	docs, err := r.Store.Find(ctx, notesCollection, q, store.FindOptions{
		Sort:  sort,
		Skip:  opts.Skip,
		Limit: opts.Limit,
	})
	if err != nil {
		return nil, err
	}

	notes := make([]model.Note, 0, len(docs))
	if err := store.DecodeAll(docs, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) Get(ctx context.Context, id string) (*model.Note, error) {
	doc, err := r.Store.FindOne(ctx, notesCollection, store.Query{store.IDEq(id)})
	if err != nil {
		return nil, err
	}
	var note model.Note
	if err := store.Decode(doc, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NotesRepo) Create(ctx context.Context, note model.Note) (model.Note, error) {
	doc, err := store.Encode(note)
	if err != nil {
		return model.Note{}, err
	}
	created, err := r.Store.Create(ctx, notesCollection, doc)
	if err != nil {
		return model.Note{}, err
	}
	var out model.Note
	if err := store.Decode(created, &out); err != nil {
		return model.Note{}, err
	}
	return out, nil
}
