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

// SortOrder values accepted on a rule.
const (
	SortAscending  = "asc"
	SortDescending = "desc"
)

// RuleTypeSpec describes what one rule type allows and how it behaves by
// default. AllowedFields bounds the filter language per type; RequiredFields
// must each have at least one filter present.
type RuleTypeSpec struct {
	AllowedFields    []string
	RequiredFields   []string
	DefaultSortField string
	DefaultSortOrder string
}

// AllowsField reports whether the filter field is in the type's allow-list.
func (s RuleTypeSpec) AllowsField(field string) bool {
	for _, f := range s.AllowedFields {
		if f == field {
			return true
		}
	}
	return false
}

// RuleTypeSpecs returns the rule-type behavior table. The map is built fresh
// on every call so no caller can mutate shared state; the validator and the
// query builder each hold their own copy, injected at construction.
func RuleTypeSpecs() map[RuleType]RuleTypeSpec {
	return map[RuleType]RuleTypeSpec{
		RuleTypeNewArrivals: {
			AllowedFields:    []string{FieldCreatedAt, FieldTags},
			DefaultSortField: FieldCreatedAt,
			DefaultSortOrder: SortDescending,
		},
		RuleTypeBestSellers: {
			AllowedFields:    []string{FieldLastSold, FieldTags},
			DefaultSortField: FieldLastSold,
			DefaultSortOrder: SortDescending,
		},
		RuleTypeTrending: {
			AllowedFields:    []string{FieldLastSold, FieldTags},
			DefaultSortField: FieldLastSold,
			DefaultSortOrder: SortDescending,
		},
		RuleTypeClearanceSale: {
			AllowedFields:    []string{FieldPrice},
			DefaultSortField: FieldPrice,
			DefaultSortOrder: SortAscending,
		},
		RuleTypeCategoryBased: {
			AllowedFields:    []string{FieldCategory},
			RequiredFields:   []string{FieldCategory},
			DefaultSortField: FieldCreatedAt,
			DefaultSortOrder: SortDescending,
		},
		RuleTypePriceRange: {
			AllowedFields:    []string{FieldPrice},
			RequiredFields:   []string{FieldPrice},
			DefaultSortField: FieldPrice,
			DefaultSortOrder: SortAscending,
		},
		RuleTypeLowStock: {
			AllowedFields:    []string{FieldStock},
			DefaultSortField: FieldStock,
			DefaultSortOrder: SortAscending,
		},
		RuleTypeDeadStock: {
			AllowedFields:    []string{FieldLastSold, FieldTags},
			DefaultSortField: FieldLastSold,
			DefaultSortOrder: SortAscending,
		},
		RuleTypeCustomQuery: {
			AllowedFields: []string{
				FieldCategory, FieldBrand, FieldPrice, FieldStock,
				FieldTags, FieldCreatedAt, FieldLastSold,
			},
			DefaultSortField: FieldCreatedAt,
			DefaultSortOrder: SortDescending,
		},
		// Filters are ignored for manual selection; the id list is the rule.
		RuleTypeManualSelection: {},
	}
}
