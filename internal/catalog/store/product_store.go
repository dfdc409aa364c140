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

	"github.com/vendra/commerce-storefront-service/internal/catalog/model"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
)

// ProductStore handles MongoDB operations for the product catalog. The
// catalog is an external, already-consistent read source for the composition
// engine; the only write this store performs is the best-effort view-count
// increment.
type ProductStore struct {
	collection *mongo.Collection
}

// NewProductStore creates a store over the given collection.
func NewProductStore(db *mongo.Database, collectionName string) *ProductStore {
	return &ProductStore{
		collection: db.Collection(collectionName),
	}
}

// Query runs a predicate with sort and limit and decodes the matching
// documents. An empty result is a normal outcome, not an error.
func (s *ProductStore) Query(ctx context.Context, predicate bson.M, sort bson.D, limit int64) ([]model.Product, error) {
	opts := options.Find().SetLimit(limit)
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := s.collection.Find(ctx, predicate, opts)
	if err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_PRODUCTS, err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_PRODUCTS, err)
	}
	return products, nil
}

// FindByIDs fetches the active products matching the given ids within the
// org. Ids that do not resolve are silently absent from the result.
func (s *ProductStore) FindByIDs(ctx context.Context, orgID string, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	predicate := bson.M{
		"org_id":     orgID,
		"product_id": bson.M{"$in": ids},
		"is_active":  true,
	}

	cursor, err := s.collection.Find(ctx, predicate)
	if err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_PRODUCTS, err)
	}
	defer cursor.Close(ctx)

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, systemerrors.NewServerError(systemerrors.QUERY_PRODUCTS, err)
	}
	return products, nil
}

// IncrementViewCounts bumps the view counter on the given products. Callers
// run this detached and tolerate failure.
func (s *ProductStore) IncrementViewCounts(ctx context.Context, orgID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	predicate := bson.M{
		"org_id":     orgID,
		"product_id": bson.M{"$in": ids},
	}
	update := bson.M{"$inc": bson.M{"view_count": 1}}

	_, err := s.collection.UpdateMany(ctx, predicate, update)
	return err
}
