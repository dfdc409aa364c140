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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
)

func newTestBuilder() *QueryBuilder {
	return NewQueryBuilder(model.RuleTypeSpecs())
}

func TestBuildAlwaysScopesToTenant(t *testing.T) {
	builder := newTestBuilder()

	ruleTypes := []model.RuleType{
		model.RuleTypeNewArrivals,
		model.RuleTypeBestSellers,
		model.RuleTypeTrending,
		model.RuleTypeClearanceSale,
		model.RuleTypeLowStock,
		model.RuleTypeDeadStock,
		model.RuleTypeCustomQuery,
	}

	for _, ruleType := range ruleTypes {
		t.Run(string(ruleType), func(t *testing.T) {
			query, err := builder.Build(&model.SmartRule{RuleType: ruleType}, "org-42")
			require.NoError(t, err)

			assert.Equal(t, "org-42", query.Predicate["org_id"])
			assert.Equal(t, true, query.Predicate["is_active"])
		})
	}
}

func TestBuildRejectsNonCompilableTypes(t *testing.T) {
	builder := newTestBuilder()

	_, err := builder.Build(&model.SmartRule{RuleType: model.RuleTypeManualSelection}, "org-1")
	assert.Error(t, err)

	_, err = builder.Build(&model.SmartRule{RuleType: "flash_sale"}, "org-1")
	assert.Error(t, err)
}

func TestBuildPriceRange(t *testing.T) {
	builder := newTestBuilder()

	rule := &model.SmartRule{
		RuleType: model.RuleTypePriceRange,
		Filters: []model.Filter{
			{Field: model.FieldPrice, Operator: model.OperatorBetween, Value: 10.0, Value2: 50.0},
		},
	}

	query, err := builder.Build(rule, "org-1")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, query.Predicate["selling_price"])
	// The type's natural ordering: cheapest first.
	assert.Equal(t, bson.D{{Key: "selling_price", Value: 1}}, query.Sort)
	assert.Equal(t, int64(constants.DefaultRuleLimit), query.Limit)
}

func TestBuildMergesBoundsOnSameField(t *testing.T) {
	builder := newTestBuilder()

	rule := &model.SmartRule{
		RuleType: model.RuleTypeCustomQuery,
		Filters: []model.Filter{
			{Field: model.FieldPrice, Operator: model.OperatorGte, Value: 10.0},
			{Field: model.FieldPrice, Operator: model.OperatorLte, Value: 50.0},
		},
	}

	query, err := builder.Build(rule, "org-1")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, query.Predicate["selling_price"])
}

func TestBuildOperators(t *testing.T) {
	builder := newTestBuilder()

	tests := []struct {
		name      string
		filter    model.Filter
		wantField string
		wantValue interface{}
	}{
		{
			name:      "equals maps field and passes value through",
			filter:    model.Filter{Field: model.FieldCategory, Operator: model.OperatorEquals, Value: "c1"},
			wantField: "category_id",
			wantValue: "c1",
		},
		{
			name:      "in keeps slices as-is",
			filter:    model.Filter{Field: model.FieldBrand, Operator: model.OperatorIn, Value: []string{"b1", "b2"}},
			wantField: "brand_id",
			wantValue: bson.M{"$in": []string{"b1", "b2"}},
		},
		{
			name:      "in wraps a scalar",
			filter:    model.Filter{Field: model.FieldBrand, Operator: model.OperatorIn, Value: "b1"},
			wantField: "brand_id",
			wantValue: bson.M{"$in": []interface{}{"b1"}},
		},
		{
			name:      "contains on tags is array membership",
			filter:    model.Filter{Field: model.FieldTags, Operator: model.OperatorContains, Value: "summer"},
			wantField: "tags",
			wantValue: "summer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &model.SmartRule{
				RuleType: model.RuleTypeCustomQuery,
				Filters:  []model.Filter{tt.filter},
			}

			query, err := builder.Build(rule, "org-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, query.Predicate[tt.wantField])
		})
	}
}

func TestBuildClearanceSale(t *testing.T) {
	builder := newTestBuilder()

	query, err := builder.Build(&model.SmartRule{
		RuleType:           model.RuleTypeClearanceSale,
		MinDiscountPercent: 20,
	}, "org-1")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$gt": 0}, query.Predicate["discounted_price"])

	expr, ok := query.Predicate["$expr"].(bson.M)
	require.True(t, ok, "clearance must compare fields within the same document")
	lte, ok := expr["$lte"].(bson.A)
	require.True(t, ok)
	assert.Equal(t, "$discounted_price", lte[0])
	assert.Equal(t, bson.M{"$multiply": bson.A{"$selling_price", 0.8}}, lte[1])
}

func TestBuildClearanceSaleDefaultsThreshold(t *testing.T) {
	builder := newTestBuilder()

	query, err := builder.Build(&model.SmartRule{RuleType: model.RuleTypeClearanceSale}, "org-1")
	require.NoError(t, err)

	expr := query.Predicate["$expr"].(bson.M)
	lte := expr["$lte"].(bson.A)
	assert.Equal(t, bson.M{"$multiply": bson.A{"$selling_price", 0.9}}, lte[1])
}

func TestBuildLowStock(t *testing.T) {
	builder := newTestBuilder()

	query, err := builder.Build(&model.SmartRule{RuleType: model.RuleTypeLowStock}, "org-1")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$lte": constants.LowStockReorderThreshold}, query.Predicate["total_stock"])
	assert.Equal(t, bson.D{{Key: "total_stock", Value: 1}}, query.Sort)
}

func TestBuildDeadStockUsesCutoff(t *testing.T) {
	builder := newTestBuilder()
	frozen := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	builder.now = func() time.Time { return frozen }

	query, err := builder.Build(&model.SmartRule{RuleType: model.RuleTypeDeadStock}, "org-1")
	require.NoError(t, err)

	wantCutoff := frozen.AddDate(0, 0, -constants.DeadStockCutoffDays)
	assert.Equal(t, bson.M{"$lte": wantCutoff}, query.Predicate["last_sold_at"])
}

func TestBuildBestSellersRequiresSaleHistory(t *testing.T) {
	builder := newTestBuilder()

	query, err := builder.Build(&model.SmartRule{RuleType: model.RuleTypeBestSellers}, "org-1")
	require.NoError(t, err)

	assert.Equal(t, bson.M{"$exists": true, "$ne": nil}, query.Predicate["last_sold_at"])
	assert.Equal(t, bson.D{{Key: "last_sold_at", Value: -1}}, query.Sort)
}

func TestBuildLimits(t *testing.T) {
	builder := newTestBuilder()

	tests := []struct {
		name      string
		limit     int
		wantLimit int64
	}{
		{"zero gets default", 0, constants.DefaultRuleLimit},
		{"negative gets default", -3, constants.DefaultRuleLimit},
		{"explicit value kept", 24, 24},
		{"above cap is clamped", 500, constants.MaxRuleLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := builder.Build(&model.SmartRule{
				RuleType: model.RuleTypeNewArrivals,
				Limit:    tt.limit,
			}, "org-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, query.Limit)
		})
	}
}

func TestBuildSortOverride(t *testing.T) {
	builder := newTestBuilder()

	query, err := builder.Build(&model.SmartRule{
		RuleType:  model.RuleTypeNewArrivals,
		SortBy:    model.FieldPrice,
		SortOrder: model.SortAscending,
	}, "org-1")
	require.NoError(t, err)

	assert.Equal(t, bson.D{{Key: "selling_price", Value: 1}}, query.Sort)
}
