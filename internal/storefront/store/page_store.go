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

	"github.com/vendra/commerce-storefront-service/internal/storefront/model"
)

// PageStore handles MongoDB operations for storefront page definitions.
type PageStore struct {
	collection *mongo.Collection
}

// NewPageStore creates a store over the given collection.
func NewPageStore(db *mongo.Database, collectionName string) *PageStore {
	return &PageStore{
		collection: db.Collection(collectionName),
	}
}

// GetPublishedPageBySlug fetches one published page by slug within the org.
// A missing page is reported as nil.
func (s *PageStore) GetPublishedPageBySlug(ctx context.Context, orgID, slug string) (*model.Page, error) {
	predicate := bson.M{"org_id": orgID, "slug": slug, "is_published": true}

	var page model.Page
	err := s.collection.FindOne(ctx, predicate).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// ListPublishedPages returns the org's published pages without their section
// bodies, for navigation building.
func (s *PageStore) ListPublishedPages(ctx context.Context, orgID string) ([]model.Page, error) {
	predicate := bson.M{"org_id": orgID, "is_published": true}
	opts := options.Find().
		SetProjection(bson.M{"sections": 0}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.collection.Find(ctx, predicate, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pages []model.Page
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// UpdatePageSections replaces a page's section list. This is the page
// builder's write path; the composition engine itself never writes here.
func (s *PageStore) UpdatePageSections(ctx context.Context, orgID, pageID string, sections []model.Section, updatedAt int64) error {
	predicate := bson.M{"org_id": orgID, "page_id": pageID}
	update := bson.M{"$set": bson.M{
		"sections":   sections,
		"updated_at": updatedAt,
	}}

	result, err := s.collection.UpdateOne(ctx, predicate, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
