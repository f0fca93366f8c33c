package repository

import (
    "context"
    "encoding/json"
    "sort"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// GalleryRepo stores gallery photos and YouTube video references.
type GalleryRepo struct {
    kv store.Store
}

// NewGalleryRepo returns a gallery repo backed by kv.
func NewGalleryRepo(kv store.Store) *GalleryRepo { return &GalleryRepo{kv: kv} }

// Photos returns all gallery photos, newest first.
func (r *GalleryRepo) Photos(ctx context.Context) ([]model.GalleryPhoto, error) {
    items, err := r.kv.ScanPrefix(ctx, photoPrefix)
    if err != nil {
        return nil, err
    }
    out := make([]model.GalleryPhoto, 0, len(items))
    for _, b := range items {
        var p model.GalleryPhoto
        if err := json.Unmarshal(b, &p); err != nil {
            continue
        }
        out = append(out, p)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
    return out, nil
}

// SavePhoto persists a photo record.
func (r *GalleryRepo) SavePhoto(ctx context.Context, p model.GalleryPhoto) error {
    b, err := json.Marshal(p)
    if err != nil {
        return err
    }
    return r.kv.Put(ctx, photoPrefix+p.ID, b, 0)
}

// DeletePhoto removes a photo; missing ids are a no-op.
func (r *GalleryRepo) DeletePhoto(ctx context.Context, id string) error {
    return r.kv.Delete(ctx, photoPrefix+id)
}

// Videos returns all gallery videos, newest first.
func (r *GalleryRepo) Videos(ctx context.Context) ([]model.GalleryVideo, error) {
    items, err := r.kv.ScanPrefix(ctx, videoPrefix)
    if err != nil {
        return nil, err
    }
    out := make([]model.GalleryVideo, 0, len(items))
    for _, b := range items {
        var v model.GalleryVideo
        if err := json.Unmarshal(b, &v); err != nil {
            continue
        }
        out = append(out, v)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
    return out, nil
}

// SaveVideo persists a video record.
func (r *GalleryRepo) SaveVideo(ctx context.Context, v model.GalleryVideo) error {
    b, err := json.Marshal(v)
    if err != nil {
        return err
    }
    return r.kv.Put(ctx, videoPrefix+v.ID, b, 0)
}

// DeleteVideo removes a video; missing ids are a no-op.
func (r *GalleryRepo) DeleteVideo(ctx context.Context, id string) error {
    return r.kv.Delete(ctx, videoPrefix+id)
}
