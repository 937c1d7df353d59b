package repository

import (
	"context"
	"errors"

	"notebuddy/model"
	"notebuddy/store"
)

const settingsCollection = "settings"

type SettingsRepo struct {
	Store store.Store
}

func NewSettingsRepo(st store.Store) *SettingsRepo {
	return &SettingsRepo{Store: st}
}

// GetOrCreate returns the singleton settings document, creating it with the
// schema defaults on first read. The find-or-insert is atomic in the store,
// so concurrent first reads cannot duplicate the singleton.
func (r *SettingsRepo) GetOrCreate(ctx context.Context) (model.Settings, error) {
	defaults, err := store.Encode(model.DefaultSettings())
	if err != nil {
		return model.Settings{}, err
	}

	doc, err := r.Store.FindOrCreate(ctx, settingsCollection, store.Query{}, defaults)
	if err != nil {
		return model.Settings{}, err
	}

	var settings model.Settings
	if err := store.Decode(doc, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}

// Update overwrites the singleton in place, creating it if absent. Returns
// the settings document id.
func (r *SettingsRepo) Update(ctx context.Context, settings model.Settings) (string, error) {
	patch, err := store.Encode(settings)
	if err != nil {
		return "", err
	}

	existing, err := r.Store.FindOne(ctx, settingsCollection, store.Query{})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			created, err := r.Store.Create(ctx, settingsCollection, patch)
			if err != nil {
				return "", err
			}
			id, _ := created["id"].(string)
			return id, nil
		}
		return "", err
	}

	id, _ := existing["id"].(string)
	if _, err := r.Store.Update(ctx, settingsCollection, store.Query{store.IDEq(id)}, patch); err != nil {
		return "", err
	}
	return id, nil
}
