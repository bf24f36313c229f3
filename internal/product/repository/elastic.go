package repository

import (
	"context"
	"encoding/json"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product"
	"github.com/fekuna/eyewear-storefront-service/pkg/search"
)

const productMapping = `{
	"mappings": {
		"properties": {
			"name_ar": { "type": "text", "analyzer": "arabic" },
			"name_en": { "type": "text", "analyzer": "english" },
			"description_ar": { "type": "text", "analyzer": "arabic" },
			"description_en": { "type": "text", "analyzer": "english" },
			"price": { "type": "scaled_float", "scaling_factor": 100 },
			"quantity": { "type": "integer" },
			"parent_category": { "type": "keyword" },
			"subcategory": { "type": "keyword" },
			"images": { "type": "keyword", "index": false },
			"created_at": { "type": "date" },
			"updated_at": { "type": "date" }
		}
	}
}`

type ESRepository struct {
	client *search.Client
	index  string
}

func NewESRepository(client *search.Client, index string) *ESRepository {
	return &ESRepository{client: client, index: index}
}

var _ product.SearchIndex = (*ESRepository)(nil)

func (r *ESRepository) EnsureIndex(ctx context.Context) error {
	return r.client.CreateIndex(ctx, r.index, productMapping)
}

func (r *ESRepository) Index(ctx context.Context, p *model.Product) error {
	return r.client.Index(ctx, r.index, p.ID, p)
}

func (r *ESRepository) Remove(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.index, id)
}

func (r *ESRepository) Search(ctx context.Context, query string, limit int) ([]model.Product, error) {
	q := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name_en^3", "name_ar^3", "description_en", "description_ar"},
				"fuzziness": "AUTO",
			},
		},
	}

	res, err := r.client.Search(ctx, r.index, q)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err != nil {
			continue
		}
		if p.ID == "" {
			p.ID = hit.ID
		}
		products = append(products, p)
	}
	return products, nil
}
