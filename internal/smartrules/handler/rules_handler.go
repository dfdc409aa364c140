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

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/provider"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/service"
	"github.com/vendra/commerce-storefront-service/internal/system/authn"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
	"github.com/vendra/commerce-storefront-service/internal/system/utils"
)

var requestValidator = validator.New()

// smartRuleRequest is the management API shape of a rule. Structural checks
// run through the validator tags; the domain filter matrix is enforced by
// the FilterValidator before anything is persisted.
type smartRuleRequest struct {
	RuleName           string         `json:"ruleName" validate:"required"`
	RuleType           string         `json:"ruleType" validate:"required"`
	Filters            []model.Filter `json:"filters,omitempty"`
	SortBy             string         `json:"sortBy,omitempty"`
	SortOrder          string         `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc"`
	Limit              int            `json:"limit,omitempty" validate:"gte=0"`
	ManualProductIDs   []string       `json:"manualProductIds,omitempty"`
	MinDiscountPercent float64        `json:"minDiscountPercent,omitempty" validate:"gte=0,lte=100"`
	IsActive           *bool          `json:"isActive,omitempty"`
}

// SmartRulesHandler exposes rule CRUD and ad-hoc preview.
type SmartRulesHandler struct {
	domainValidator *service.FilterValidator
}

// NewSmartRulesHandler creates the handler with its own copy of the
// rule-type table.
func NewSmartRulesHandler() *SmartRulesHandler {
	return &SmartRulesHandler{
		domainValidator: service.NewFilterValidator(model.RuleTypeSpecs()),
	}
}

// AddSmartRule handles POST /smart-rules.
func (h *SmartRulesHandler) AddSmartRule(w http.ResponseWriter, r *http.Request) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	req, err := h.decodeRule(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	now := time.Now().UTC().Unix()
	rule := req.toRule(orgID)
	rule.RuleID = uuid.New().String()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	if err := h.domainValidator.Validate(&rule); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := provider.GetRulesStore().AddRule(r.Context(), rule); err != nil {
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.ADD_SMART_RULE, err))
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, rule)
}

// GetSmartRules handles GET /smart-rules.
func (h *SmartRulesHandler) GetSmartRules(w http.ResponseWriter, r *http.Request) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	rules, err := provider.GetRulesStore().GetRules(r.Context(), orgID)
	if err != nil {
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.GET_SMART_RULE, err))
		return
	}
	if rules == nil {
		rules = []model.SmartRule{}
	}

	utils.WriteJSONResponse(w, http.StatusOK, rules)
}

// GetSmartRule handles GET /smart-rules/{id}.
func (h *SmartRulesHandler) GetSmartRule(w http.ResponseWriter, r *http.Request, ruleID string) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	rule, err := provider.GetRulesStore().GetRule(r.Context(), orgID, ruleID)
	if err != nil {
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.GET_SMART_RULE, err))
		return
	}
	if rule == nil {
		utils.HandleError(w, systemerrors.NewNotFoundError(systemerrors.RULE_NOT_FOUND, "No such rule in this organization."))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// UpdateSmartRule handles PUT /smart-rules/{id}.
func (h *SmartRulesHandler) UpdateSmartRule(w http.ResponseWriter, r *http.Request, ruleID string) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	req, err := h.decodeRule(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	rule := req.toRule(orgID)
	rule.RuleID = ruleID
	rule.UpdatedAt = time.Now().UTC().Unix()

	if err := h.domainValidator.Validate(&rule); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := provider.GetRulesStore().UpdateRule(r.Context(), rule); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(w, systemerrors.NewNotFoundError(systemerrors.RULE_NOT_FOUND, "No such rule in this organization."))
			return
		}
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.UPDATE_SMART_RULE, err))
		return
	}

	provider.GetSmartRuleEngine().Invalidate(r.Context(), orgID, ruleID)
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// DeleteSmartRule handles DELETE /smart-rules/{id}.
func (h *SmartRulesHandler) DeleteSmartRule(w http.ResponseWriter, r *http.Request, ruleID string) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := provider.GetRulesStore().DeleteRule(r.Context(), orgID, ruleID); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(w, systemerrors.NewNotFoundError(systemerrors.RULE_NOT_FOUND, "No such rule in this organization."))
			return
		}
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.DELETE_SMART_RULE, err))
		return
	}

	provider.GetSmartRuleEngine().Invalidate(r.Context(), orgID, ruleID)
	w.WriteHeader(http.StatusNoContent)
}

// PreviewSmartRule handles POST /smart-rules/preview: executes an inline
// rule without saving it, for live preview in the page builder.
func (h *SmartRulesHandler) PreviewSmartRule(w http.ResponseWriter, r *http.Request) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	req, err := h.decodeRule(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	rule := req.toRule(orgID)
	products, err := provider.GetSmartRuleEngine().ExecuteAdHoc(r.Context(), orgID, &rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, products)
}

// decodeRule parses and structurally validates the request body.
func (h *SmartRulesHandler) decodeRule(r *http.Request) (*smartRuleRequest, error) {
	var req smartRuleRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, systemerrors.NewValidationError(systemerrors.BAD_REQUEST,
			utils.HandleDecodeError(err, "smart rule"))
	}

	if err := requestValidator.Struct(req); err != nil {
		return nil, systemerrors.NewValidationError(systemerrors.BAD_REQUEST, err.Error())
	}
	return &req, nil
}

func (req *smartRuleRequest) toRule(orgID string) model.SmartRule {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return model.SmartRule{
		OrgID:              orgID,
		RuleName:           req.RuleName,
		RuleType:           model.RuleType(req.RuleType),
		Filters:            req.Filters,
		SortBy:             req.SortBy,
		SortOrder:          req.SortOrder,
		Limit:              req.Limit,
		ManualProductIDs:   req.ManualProductIDs,
		MinDiscountPercent: req.MinDiscountPercent,
		IsActive:           isActive,
	}
}
