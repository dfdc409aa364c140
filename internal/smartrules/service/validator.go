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

	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
)

var knownOperators = map[model.FilterOperator]bool{
	model.OperatorEquals:   true,
	model.OperatorIn:       true,
	model.OperatorGte:      true,
	model.OperatorLte:      true,
	model.OperatorBetween:  true,
	model.OperatorContains: true,
}

// FilterValidator checks a rule's declared filters against the rule-type
// behavior table. It is pure: no repository access, safe to run both at
// rule-save time and at ad-hoc execution time.
type FilterValidator struct {
	specs map[model.RuleType]model.RuleTypeSpec
}

// NewFilterValidator creates a validator over the given rule-type table.
func NewFilterValidator(specs map[model.RuleType]model.RuleTypeSpec) *FilterValidator {
	return &FilterValidator{specs: specs}
}

// Validate fails with a coded client error on the first malformed aspect of
// the rule. A nil error means the rule is executable.
func (v *FilterValidator) Validate(rule *model.SmartRule) error {
	if rule == nil {
		return systemerrors.NewValidationError(systemerrors.INVALID_RULE, "Rule is missing.")
	}
	if rule.RuleType == "" {
		return systemerrors.NewValidationError(systemerrors.INVALID_RULE, "Rule type is not set.")
	}

	spec, known := v.specs[rule.RuleType]
	if !known {
		return systemerrors.NewValidationError(systemerrors.INVALID_RULE_TYPE,
			fmt.Sprintf("Rule type %q is not supported.", rule.RuleType))
	}

	// Manual selection carries an explicit id list; filters are ignored
	// entirely, so none of the filter checks apply.
	if rule.RuleType == model.RuleTypeManualSelection {
		return nil
	}

	for _, filter := range rule.Filters {
		if !spec.AllowsField(filter.Field) {
			return systemerrors.NewValidationError(systemerrors.INVALID_FILTER_FIELD,
				fmt.Sprintf("Field %q is not allowed for rule type %q.", filter.Field, rule.RuleType))
		}
		if !knownOperators[filter.Operator] {
			return systemerrors.NewValidationError(systemerrors.INVALID_FILTER_OPERATOR,
				fmt.Sprintf("Operator %q is not supported.", filter.Operator))
		}
		if filter.Operator == model.OperatorBetween && isEmptyValue(filter.Value2) {
			return systemerrors.NewValidationError(systemerrors.MISSING_RANGE_BOUND,
				fmt.Sprintf("Filter on %q uses between but has no second bound.", filter.Field))
		}
	}

	// Required fields are an existence check by field name, not by value.
	for _, required := range spec.RequiredFields {
		if !hasFilterOn(rule.Filters, required) {
			return systemerrors.NewValidationError(systemerrors.MISSING_REQUIRED_FILTER,
				fmt.Sprintf("Rule type %q requires a filter on %q.", rule.RuleType, required))
		}
	}

	return nil
}

func hasFilterOn(filters []model.Filter, field string) bool {
	for _, f := range filters {
		if f.Field == field {
			return true
		}
	}
	return false
}

func isEmptyValue(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}
