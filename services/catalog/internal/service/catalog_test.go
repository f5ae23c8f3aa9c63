package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshopx/microservices/services/catalog/internal/models"
	"github.com/eshopx/microservices/services/catalog/internal/repo"
)

type fakeRepo struct {
	products map[string]models.Product
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]models.Product{}}
}

func (f *fakeRepo) GetProduct(_ context.Context, id string) (*models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRepo) GetProducts(_ context.Context, offset, limit int) (int64, []models.Product, error) {
	if f.failWith != nil {
		return 0, nil, f.failWith
	}
	all := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		all = append(all, p)
	}
	if offset >= len(all) {
		return int64(len(f.products)), nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return int64(len(f.products)), all[offset:end], nil
}

func (f *fakeRepo) GetProductsByCategory(_ context.Context, category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateProduct(_ context.Context, product *models.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeRepo) UpdateProduct(_ context.Context, product *models.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return repo.ErrNotFound
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeRepo) DeleteProduct(_ context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.products[id]
	delete(f.products, id)
	return ok, nil
}

type fakeIndexer struct {
	indexed  []string
	removed  []string
	failWith error
}

func (f *fakeIndexer) IndexProduct(_ context.Context, product *models.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.indexed = append(f.indexed, product.ID)
	return nil
}

func (f *fakeIndexer) RemoveProduct(_ context.Context, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeIndexer) SearchProducts(_ context.Context, query string, _, _ int) (int64, []models.Product, error) {
	if f.failWith != nil {
		return 0, nil, f.failWith
	}
	return 1, []models.Product{{ID: "hit", Name: query}}, nil
}

func newService() (*CatalogService, *fakeRepo, *fakeIndexer) {
	r := newFakeRepo()
	idx := &fakeIndexer{}
	return &CatalogService{Repo: r, Search: idx}, r, idx
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and indexes", func(t *testing.T) {
		t.Parallel()
		svc, r, idx := newService()

		p := &models.Product{Name: "IPhone X", Category: "Smart Phone", Price: 950}
		require.NoError(t, svc.CreateProduct(context.Background(), p))

		assert.NotEmpty(t, p.ID)
		assert.Contains(t, r.products, p.ID)
		assert.Equal(t, []string{p.ID}, idx.indexed)
	})

	t.Run("keeps caller id", func(t *testing.T) {
		t.Parallel()
		svc, r, _ := newService()

		p := &models.Product{ID: "fixed-id", Name: "IPhone X", Price: 950}
		require.NoError(t, svc.CreateProduct(context.Background(), p))

		assert.Equal(t, "fixed-id", p.ID)
		assert.Contains(t, r.products, "fixed-id")
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService()

		cases := []struct {
			name    string
			product models.Product
		}{
			{"empty name", models.Product{Price: 10}},
			{"negative price", models.Product{Name: "x", Price: -1}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := svc.CreateProduct(context.Background(), &tc.product)
				require.ErrorIs(t, err, ErrValidation)
			})
		}
	})

	t.Run("index failure does not fail the write", func(t *testing.T) {
		t.Parallel()
		svc, r, idx := newService()
		idx.failWith = errors.New("es down")

		p := &models.Product{Name: "IPhone X", Price: 950}
		require.NoError(t, svc.CreateProduct(context.Background(), p))
		assert.Contains(t, r.products, p.ID)
	})
}

func TestGetProduct(t *testing.T) {
	t.Parallel()
	svc, r, _ := newService()
	r.products["p1"] = models.Product{ID: "p1", Name: "IPhone X"}

	got, err := svc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "IPhone X", got.Name)

	_, err = svc.GetProduct(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("replaces and reindexes", func(t *testing.T) {
		t.Parallel()
		svc, r, idx := newService()
		r.products["p1"] = models.Product{ID: "p1", Name: "IPhone X", Price: 950}

		err := svc.UpdateProduct(context.Background(), &models.Product{ID: "p1", Name: "IPhone 11", Price: 999})
		require.NoError(t, err)
		assert.Equal(t, "IPhone 11", r.products["p1"].Name)
		assert.Equal(t, []string{"p1"}, idx.indexed)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService()

		err := svc.UpdateProduct(context.Background(), &models.Product{ID: "ghost", Name: "x"})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService()

		err := svc.UpdateProduct(context.Background(), &models.Product{Name: "x"})
		require.ErrorIs(t, err, ErrValidation)

		err = svc.UpdateProduct(context.Background(), &models.Product{ID: "p1"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	t.Run("removes and unindexes", func(t *testing.T) {
		t.Parallel()
		svc, r, idx := newService()
		r.products["p1"] = models.Product{ID: "p1"}

		existed, err := svc.DeleteProduct(context.Background(), "p1")
		require.NoError(t, err)
		assert.True(t, existed)
		assert.NotContains(t, r.products, "p1")
		assert.Equal(t, []string{"p1"}, idx.removed)
	})

	t.Run("absent id reports false", func(t *testing.T) {
		t.Parallel()
		svc, _, idx := newService()

		existed, err := svc.DeleteProduct(context.Background(), "ghost")
		require.NoError(t, err)
		assert.False(t, existed)
		assert.Empty(t, idx.removed)
	})
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService()

	total, hits, err := svc.SearchProducts(context.Background(), "phone", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, hits, 1)
	assert.True(t, strings.Contains(hits[0].Name, "phone"))

	_, _, err = svc.SearchProducts(context.Background(), "", 0, 20)
	require.ErrorIs(t, err, ErrValidation)
}

func TestGetProductsByCategoryRequiresCategory(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService()

	_, err := svc.GetProductsByCategory(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
}
