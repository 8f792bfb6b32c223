package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/narendranaragani/printmaania/internal/catalog"
	"github.com/narendranaragani/printmaania/internal/catalog/dto"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/pkg/cache"
	"github.com/narendranaragani/printmaania/pkg/logger"
	"github.com/narendranaragani/printmaania/pkg/search"
	"go.uber.org/zap"
)

const productIndex = "products"

type catalogUseCase struct {
	repo   catalog.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

// NewCatalogUseCase wires the catalog reads. cache and es may be nil; the
// usecase degrades to the pure in-memory path.
func NewCatalogUseCase(repo catalog.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *catalogUseCase) List(ctx context.Context, input *dto.ListInput) ([]model.Product, int, error) {
	cacheKey, keyErr := uc.generateCacheKey(input)
	if keyErr == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, len(cached), nil
			}
		}
	}

	products, err := uc.candidates(ctx, input.Query)
	if err != nil {
		return nil, 0, err
	}

	result := filterProducts(products, input.Filters)
	result = sortProducts(result, input.SortBy)

	if keyErr == nil && uc.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return result, len(result), nil
}

// candidates runs the search leg. With elasticsearch configured the text
// query goes there first; any failure falls back to the in-memory substring
// scan so a down cluster never empties the storefront.
func (uc *catalogUseCase) candidates(ctx context.Context, query string) ([]model.Product, error) {
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" || uc.es == nil {
		return searchProducts(all, query), nil
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", query),
				"fields": []string{"title^3", "short_description", "full_description", "category", "tags", "printing_methods"},
			},
		},
	}

	res, err := uc.es.Search(ctx, productIndex, q)
	if err != nil {
		uc.logger.Error("ES search failed, falling back to in-memory scan", zap.Error(err))
		return searchProducts(all, query), nil
	}

	var esProducts []model.Product
	for _, hit := range res.Hits.Hits {
		var p model.Product
		if err := json.Unmarshal(hit.Source, &p); err == nil {
			esProducts = append(esProducts, p)
		}
	}
	return esProducts, nil
}

func (uc *catalogUseCase) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return uc.repo.FindBySlug(ctx, slug)
}

func (uc *catalogUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var categories []string
	for _, p := range all {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// SyncIndex pushes the whole catalog into elasticsearch. Called once at
// startup when search is enabled.
func (uc *catalogUseCase) SyncIndex(ctx context.Context) error {
	if uc.es == nil {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"title": { "type": "text" },
				"short_description": { "type": "text" },
				"full_description": { "type": "text" },
				"category": { "type": "keyword" },
				"tags": { "type": "keyword" },
				"printing_methods": { "type": "keyword" }
			}
		}
	}`
	if err := uc.es.CreateIndex(ctx, productIndex, mapping); err != nil {
		return err
	}

	all, err := uc.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range all {
		if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
			uc.logger.Error("failed to index product", zap.String("product_id", p.ID), zap.Error(err))
		}
	}
	return nil
}

func (uc *catalogUseCase) generateCacheKey(input *dto.ListInput) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:list:%x", md5.Sum(data)), nil
}
