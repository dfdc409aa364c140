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

package model

// RuleType identifies one product-selection strategy. The set is closed;
// adding a type means extending the behavior table in ruletypes.go.
type RuleType string

const (
	RuleTypeNewArrivals     RuleType = "new_arrivals"
	RuleTypeBestSellers     RuleType = "best_sellers"
	RuleTypeTrending        RuleType = "trending"
	RuleTypeClearanceSale   RuleType = "clearance_sale"
	RuleTypeCategoryBased   RuleType = "category_based"
	RuleTypePriceRange      RuleType = "price_range"
	RuleTypeLowStock        RuleType = "low_stock"
	RuleTypeDeadStock       RuleType = "dead_stock"
	RuleTypeCustomQuery     RuleType = "custom_query"
	RuleTypeManualSelection RuleType = "manual_selection"
)

// FilterOperator is one comparison a filter can express.
type FilterOperator string

const (
	OperatorEquals   FilterOperator = "equals"
	OperatorIn       FilterOperator = "in"
	OperatorGte      FilterOperator = "gte"
	OperatorLte      FilterOperator = "lte"
	OperatorBetween  FilterOperator = "between"
	OperatorContains FilterOperator = "contains"
)

// Filter fields of the rule language. The query builder maps them onto
// catalog document fields.
const (
	FieldCategory  = "category"
	FieldBrand     = "brand"
	FieldPrice     = "price"
	FieldStock     = "stock"
	FieldTags      = "tags"
	FieldCreatedAt = "createdAt"
	FieldLastSold  = "lastSold"
)

// Filter is one field/operator/value(s) constraint within a rule. Value2 is
// only meaningful for the between operator.
type Filter struct {
	Field    string         `json:"field" bson:"field"`
	Operator FilterOperator `json:"operator" bson:"operator"`
	Value    interface{}    `json:"value" bson:"value"`
	Value2   interface{}    `json:"value2,omitempty" bson:"value2,omitempty"`
}

// SmartRule is a declarative, tenant-scoped product-selection specification.
// Persisted rules live in the smart_rules collection; ad-hoc rules are the
// same shape, never saved.
type SmartRule struct {
	RuleID             string   `json:"ruleId" bson:"rule_id"`
	OrgID              string   `json:"orgId" bson:"org_id"`
	RuleName           string   `json:"ruleName" bson:"rule_name"`
	RuleType           RuleType `json:"ruleType" bson:"rule_type"`
	Filters            []Filter `json:"filters,omitempty" bson:"filters,omitempty"`
	SortBy             string   `json:"sortBy,omitempty" bson:"sort_by,omitempty"`
	SortOrder          string   `json:"sortOrder,omitempty" bson:"sort_order,omitempty"`
	Limit              int      `json:"limit,omitempty" bson:"limit,omitempty"`
	ManualProductIDs   []string `json:"manualProductIds,omitempty" bson:"manual_product_ids,omitempty"`
	MinDiscountPercent float64  `json:"minDiscountPercent,omitempty" bson:"min_discount_percent,omitempty"`
	IsActive           bool     `json:"isActive" bson:"is_active"`
	CreatedAt          int64    `json:"createdAt" bson:"created_at"`
	UpdatedAt          int64    `json:"updatedAt" bson:"updated_at"`
}
