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

package service

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
)

// documentFields maps the rule filter language onto catalog document fields.
var documentFields = map[string]string{
	model.FieldCategory:  "category_id",
	model.FieldBrand:     "brand_id",
	model.FieldPrice:     "selling_price",
	model.FieldStock:     "total_stock",
	model.FieldTags:      "tags",
	model.FieldCreatedAt: "created_at",
	model.FieldLastSold:  "last_sold_at",
}

// CatalogQuery is a compiled rule: a predicate plus sort and limit, ready
// for the product store.
type CatalogQuery struct {
	Predicate bson.M
	Sort      bson.D
	Limit     int64
}

// QueryBuilder translates a validated rule into a catalog query. The tenant
// scope is always injected as a mandatory clause; no filter content can
// widen a query across org boundaries.
type QueryBuilder struct {
	specs map[model.RuleType]model.RuleTypeSpec
	now   func() time.Time
}

// NewQueryBuilder creates a builder over the given rule-type table.
func NewQueryBuilder(specs map[model.RuleType]model.RuleTypeSpec) *QueryBuilder {
	return &QueryBuilder{specs: specs, now: time.Now}
}

// Build compiles the rule. The rule must already have passed validation;
// unknown types still fail here rather than producing an unscoped query.
func (b *QueryBuilder) Build(rule *model.SmartRule, orgID string) (*CatalogQuery, error) {
	spec, known := b.specs[rule.RuleType]
	if !known || rule.RuleType == model.RuleTypeManualSelection {
		return nil, systemerrors.NewValidationError(systemerrors.INVALID_RULE_TYPE,
			fmt.Sprintf("Rule type %q cannot be compiled to a catalog query.", rule.RuleType))
	}

	predicate := bson.M{
		"org_id":    orgID,
		"is_active": true,
	}

	b.applyBasePredicate(rule, predicate)

	for _, filter := range rule.Filters {
		if err := applyFilter(predicate, filter); err != nil {
			return nil, err
		}
	}

	return &CatalogQuery{
		Predicate: predicate,
		Sort:      b.sortFor(rule, spec),
		Limit:     limitFor(rule),
	}, nil
}

// applyBasePredicate adds the rule type's fixed base condition.
func (b *QueryBuilder) applyBasePredicate(rule *model.SmartRule, predicate bson.M) {
	switch rule.RuleType {
	case model.RuleTypeBestSellers, model.RuleTypeTrending:
		predicate["last_sold_at"] = bson.M{"$exists": true, "$ne": nil}

	case model.RuleTypeClearanceSale:
		// A product qualifies only if its discounted price undercuts the
		// selling price by at least the configured percentage. This is a
		// same-document field comparison, hence $expr.
		minPercent := rule.MinDiscountPercent
		if minPercent <= 0 {
			minPercent = constants.DefaultMinDiscountPercent
		}
		predicate["discounted_price"] = bson.M{"$gt": 0}
		predicate["$expr"] = bson.M{
			"$lte": bson.A{
				"$discounted_price",
				bson.M{"$multiply": bson.A{"$selling_price", 1 - minPercent/100}},
			},
		}

	case model.RuleTypeLowStock:
		predicate["total_stock"] = bson.M{"$lte": constants.LowStockReorderThreshold}

	case model.RuleTypeDeadStock:
		cutoff := b.now().AddDate(0, 0, -constants.DeadStockCutoffDays)
		predicate["last_sold_at"] = bson.M{"$lte": cutoff}
	}
}

// applyFilter folds one filter into the predicate. Multiple operators on the
// same field merge into a single bson.M so gte+lte pairs behave like between.
func applyFilter(predicate bson.M, filter model.Filter) error {
	field, known := documentFields[filter.Field]
	if !known {
		return systemerrors.NewValidationError(systemerrors.INVALID_FILTER_FIELD,
			fmt.Sprintf("Field %q has no catalog mapping.", filter.Field))
	}

	switch filter.Operator {
	case model.OperatorEquals:
		predicate[field] = filter.Value

	case model.OperatorIn:
		predicate[field] = bson.M{"$in": asSlice(filter.Value)}

	case model.OperatorGte:
		mergeBound(predicate, field, "$gte", filter.Value)

	case model.OperatorLte:
		mergeBound(predicate, field, "$lte", filter.Value)

	case model.OperatorBetween:
		mergeBound(predicate, field, "$gte", filter.Value)
		mergeBound(predicate, field, "$lte", filter.Value2)

	case model.OperatorContains:
		// Tags are arrays, so a direct match is membership. Everything else
		// falls back to a case-insensitive substring match.
		if filter.Field == model.FieldTags {
			predicate[field] = filter.Value
		} else {
			predicate[field] = bson.M{"$regex": fmt.Sprint(filter.Value), "$options": "i"}
		}

	default:
		return systemerrors.NewValidationError(systemerrors.INVALID_FILTER_OPERATOR,
			fmt.Sprintf("Operator %q is not supported.", filter.Operator))
	}

	return nil
}

func mergeBound(predicate bson.M, field, op string, value interface{}) {
	if existing, ok := predicate[field].(bson.M); ok {
		existing[op] = value
		return
	}
	predicate[field] = bson.M{op: value}
}

func asSlice(value interface{}) interface{} {
	switch value.(type) {
	case []interface{}, []string, []int, []float64:
		return value
	default:
		return []interface{}{value}
	}
}

// sortFor resolves the rule's sort, falling back to the type's natural
// ordering.
func (b *QueryBuilder) sortFor(rule *model.SmartRule, spec model.RuleTypeSpec) bson.D {
	field := rule.SortBy
	order := rule.SortOrder
	if field == "" {
		field = spec.DefaultSortField
	}
	if order == "" {
		order = spec.DefaultSortOrder
	}
	if field == "" {
		return nil
	}

	docField, known := documentFields[field]
	if !known {
		docField = field
	}

	direction := 1
	if order == model.SortDescending {
		direction = -1
	}
	return bson.D{{Key: docField, Value: direction}}
}

// limitFor resolves the rule's limit, applying the default and the hard cap.
func limitFor(rule *model.SmartRule) int64 {
	limit := rule.Limit
	if limit <= 0 {
		limit = constants.DefaultRuleLimit
	}
	if limit > constants.MaxRuleLimit {
		limit = constants.MaxRuleLimit
	}
	return int64(limit)
}
