package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/eshopx/microservices/services/catalog/internal/models"
)

// Indexer keeps the product search index in step with the catalog and answers
// free-text queries against it.
type Indexer interface {
	IndexProduct(ctx context.Context, product *models.Product) error
	RemoveProduct(ctx context.Context, id string) error
	SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error)
}

type ESIndexer struct {
	Client *elasticsearch.Client
	Index  string
}

func (s *ESIndexer) IndexProduct(ctx context.Context, product *models.Product) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(product); err != nil {
		return fmt.Errorf("encode product: %w", err)
	}

	res, err := s.Client.Index(s.Index, &buf,
		s.Client.Index.WithDocumentID(product.ID),
		s.Client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index product: %s", res.Status())
	}
	return nil
}

func (s *ESIndexer) RemoveProduct(ctx context.Context, id string) error {
	res, err := s.Client.Delete(s.Index, id, s.Client.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("remove product from index: %w", err)
	}
	defer res.Body.Close()
	// 404 means the document was never indexed, nothing to remove
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("remove product from index: %s", res.Status())
	}
	return nil
}

func (s *ESIndexer) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("encode query: %w", err)
	}

	res, err := s.Client.Search(
		s.Client.Search.WithContext(ctx),
		s.Client.Search.WithIndex(s.Index),
		s.Client.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search products: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search products: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	products := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		products[i] = hit.Source
	}
	return r.Hits.Total.Value, products, nil
}
