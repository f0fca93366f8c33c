package repository

import (
    "context"
    "encoding/json"
    "errors"
    "sort"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/store"
)

// BlogRepo stores site articles.  Lookups by slug walk the full prefix scan
// because the store has no secondary index; the blog set is small.
type BlogRepo struct {
    kv store.Store
}

// NewBlogRepo returns a blog repo backed by kv.
func NewBlogRepo(kv store.Store) *BlogRepo { return &BlogRepo{kv: kv} }

// All returns blogs newest first.  Draft posts are excluded unless
// includeDrafts is set (admin listings want them).
func (r *BlogRepo) All(ctx context.Context, includeDrafts bool) ([]model.Blog, error) {
    items, err := r.kv.ScanPrefix(ctx, blogPrefix)
    if err != nil {
        return nil, err
    }
    out := make([]model.Blog, 0, len(items))
    for _, b := range items {
        var bl model.Blog
        if err := json.Unmarshal(b, &bl); err != nil {
            continue
        }
        if bl.Draft && !includeDrafts {
            continue
        }
        out = append(out, bl)
    }
    sort.Slice(out, func(i, j int) bool { return out[i].Datetime.After(out[j].Datetime) })
    return out, nil
}

// ByID fetches one blog or ErrNotFound.
func (r *BlogRepo) ByID(ctx context.Context, id string) (model.Blog, error) {
    b, err := r.kv.Get(ctx, blogPrefix+id)
    if err != nil {
        if errors.Is(err, store.ErrNotFound) {
            return model.Blog{}, ErrNotFound
        }
        return model.Blog{}, err
    }
    var bl model.Blog
    if err := json.Unmarshal(b, &bl); err != nil {
        return model.Blog{}, err
    }
    return bl, nil
}

// BySlug fetches the published-or-draft blog carrying slug, or ErrNotFound.
func (r *BlogRepo) BySlug(ctx context.Context, slug string) (model.Blog, error) {
    all, err := r.All(ctx, true)
    if err != nil {
        return model.Blog{}, err
    }
    for _, bl := range all {
        if bl.Slug == slug {
            return bl, nil
        }
    }
    return model.Blog{}, ErrNotFound
}

// Save creates or overwrites a blog record.
func (r *BlogRepo) Save(ctx context.Context, bl model.Blog) error {
    b, err := json.Marshal(bl)
    if err != nil {
        return err
    }
    return r.kv.Put(ctx, blogPrefix+bl.ID, b, 0)
}

// Delete removes a blog; missing ids are a no-op.
func (r *BlogRepo) Delete(ctx context.Context, id string) error {
    return r.kv.Delete(ctx, blogPrefix+id)
}
