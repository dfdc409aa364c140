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

	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
)

// RulesStore handles MongoDB operations for saved smart rules. Every
// operation is org-scoped.
type RulesStore struct {
	collection *mongo.Collection
}

// NewRulesStore creates a store over the given collection.
func NewRulesStore(db *mongo.Database, collectionName string) *RulesStore {
	return &RulesStore{
		collection: db.Collection(collectionName),
	}
}

// AddRule persists a new rule.
func (s *RulesStore) AddRule(ctx context.Context, rule model.SmartRule) error {
	_, err := s.collection.InsertOne(ctx, rule)
	return err
}

// GetRule fetches one rule by id within the org. A missing rule is not an
// error; it is reported as nil.
func (s *RulesStore) GetRule(ctx context.Context, orgID, ruleID string) (*model.SmartRule, error) {
	var rule model.SmartRule
	err := s.collection.FindOne(ctx, bson.M{"org_id": orgID, "rule_id": ruleID}).Decode(&rule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// GetRules fetches all of the org's rules, newest first.
func (s *RulesStore) GetRules(ctx context.Context, orgID string) ([]model.SmartRule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"org_id": orgID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []model.SmartRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// UpdateRule replaces a rule's mutable fields. Returns mongo.ErrNoDocuments
// when the rule does not exist in the org.
func (s *RulesStore) UpdateRule(ctx context.Context, rule model.SmartRule) error {
	predicate := bson.M{"org_id": rule.OrgID, "rule_id": rule.RuleID}
	update := bson.M{"$set": bson.M{
		"rule_name":            rule.RuleName,
		"rule_type":            rule.RuleType,
		"filters":              rule.Filters,
		"sort_by":              rule.SortBy,
		"sort_order":           rule.SortOrder,
		"limit":                rule.Limit,
		"manual_product_ids":   rule.ManualProductIDs,
		"min_discount_percent": rule.MinDiscountPercent,
		"is_active":            rule.IsActive,
		"updated_at":           rule.UpdatedAt,
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

// DeleteRule removes a rule. Returns mongo.ErrNoDocuments when nothing
// matched.
func (s *RulesStore) DeleteRule(ctx context.Context, orgID, ruleID string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"org_id": orgID, "rule_id": ruleID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
