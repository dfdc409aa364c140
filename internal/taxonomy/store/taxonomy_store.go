/*
 * Copyright (c) 2026, Vendra Labs Pvt Ltd. (https://www.vendra.io).
 *
 * Vendra Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
	"github.com/vendra/commerce-storefront-service/internal/taxonomy/model"
)

// TaxonomyStore handles MongoDB operations for categories and brands. It
// also holds a handle on the product collection for the opt-in per-category
// count aggregation.
type TaxonomyStore struct {
	categories *mongo.Collection
	products   *mongo.Collection
}

// NewTaxonomyStore creates a store over the taxonomy collections.
func NewTaxonomyStore(db *mongo.Database) *TaxonomyStore {
	return &TaxonomyStore{
		categories: db.Collection(constants.CategoryCollection),
		products:   db.Collection(constants.ProductCollection),
	}
}

// ListCategories returns the tenant's active categories, name-ordered.
func (s *TaxonomyStore) ListCategories(ctx context.Context, orgID string) ([]model.Category, error) {
	predicate := bson.M{"org_id": orgID, "is_active": true}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := s.categories.Find(ctx, predicate, opts)
	if err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_TAXONOMY, err)
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_TAXONOMY, err)
	}
	return categories, nil
}

// FindCategoriesByIDs fetches the active categories matching the given ids
// within the org. Missing ids are silently absent.
func (s *TaxonomyStore) FindCategoriesByIDs(ctx context.Context, orgID string, ids []string) ([]model.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	predicate := bson.M{
		"org_id":      orgID,
		"category_id": bson.M{"$in": ids},
		"is_active":   true,
	}

	cursor, err := s.categories.Find(ctx, predicate)
	if err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_TAXONOMY, err)
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_TAXONOMY, err)
	}
	return categories, nil
}

// CountProductsByCategory returns the number of active products in one
// category. This is the most expensive taxonomy sub-operation and is only
// run when a section explicitly asks for counts.
func (s *TaxonomyStore) CountProductsByCategory(ctx context.Context, orgID, categoryID string) (int64, error) {
	predicate := bson.M{
		"org_id":      orgID,
		"category_id": categoryID,
		"is_active":   true,
	}

	count, err := s.products.CountDocuments(ctx, predicate)
	if err != nil {
		return 0, systemerrors.NewServerError(systemerrors.QUERY_TAXONOMY, err)
	}
	return count, nil
}
