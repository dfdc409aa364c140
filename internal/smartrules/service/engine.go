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
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	catalogmodel "github.com/vendra/commerce-storefront-service/internal/catalog/model"
	catalogservice "github.com/vendra/commerce-storefront-service/internal/catalog/service"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/system/cache"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
)

// RuleStore is the persistence contract the engine needs for saved rules.
type RuleStore interface {
	GetRule(ctx context.Context, orgID, ruleID string) (*model.SmartRule, error)
}

// ProductStore is the catalog contract the engine executes queries against.
type ProductStore interface {
	Query(ctx context.Context, predicate bson.M, sort bson.D, limit int64) ([]catalogmodel.Product, error)
	FindByIDs(ctx context.Context, orgID string, ids []string) ([]catalogmodel.Product, error)
	IncrementViewCounts(ctx context.Context, orgID string, ids []string) error
}

// SmartRuleEngine executes saved rules, ad-hoc rules and manual selections,
// normalizing all three into the same public product representation.
type SmartRuleEngine struct {
	rules     RuleStore
	products  ProductStore
	cache     cache.Store
	validator *FilterValidator
	builder   *QueryBuilder
	cacheTTL  time.Duration
}

// NewSmartRuleEngine wires the engine. The rule-type table is shared between
// the validator and the builder by the caller.
func NewSmartRuleEngine(rules RuleStore, products ProductStore, cacheStore cache.Store,
	validator *FilterValidator, builder *QueryBuilder, cacheTTL time.Duration) *SmartRuleEngine {

	return &SmartRuleEngine{
		rules:     rules,
		products:  products,
		cache:     cacheStore,
		validator: validator,
		builder:   builder,
		cacheTTL:  cacheTTL,
	}
}

// ExecuteRule executes a saved rule by id within the org, serving from cache
// inside the TTL window. A ruleID that does not resolve within the org fails
// with a not-found error.
func (e *SmartRuleEngine) ExecuteRule(ctx context.Context, orgID, ruleID string) ([]catalogmodel.ResolvedProduct, error) {
	key := ruleCacheKey(orgID, ruleID)
	if cached, ok := e.cacheGet(ctx, key); ok {
		return cached, nil
	}

	rule, err := e.rules.GetRule(ctx, orgID, ruleID)
	if err != nil {
		return nil, systemerrors.NewServerError(systemerrors.GET_SMART_RULE, err)
	}
	if rule == nil {
		return nil, systemerrors.NewNotFoundError(systemerrors.RULE_NOT_FOUND,
			fmt.Sprintf("Smart rule %q does not exist in this organization.", ruleID))
	}

	resolved, err := e.execute(ctx, orgID, rule)
	if err != nil {
		return nil, err
	}

	e.cacheSet(ctx, key, resolved)
	e.recordViews(orgID, resolved)
	return resolved, nil
}

// ExecuteAdHoc executes an inline, unsaved rule. Ad-hoc rules are never
// pre-validated, so validation always runs first. Results are not cached;
// this path exists for live preview in the page builder.
func (e *SmartRuleEngine) ExecuteAdHoc(ctx context.Context, orgID string, rule *model.SmartRule) ([]catalogmodel.ResolvedProduct, error) {
	if err := e.validator.Validate(rule); err != nil {
		return nil, err
	}
	return e.execute(ctx, orgID, rule)
}

// ExecuteManual fetches exactly the given id list, with no rule logic.
// Ordering follows the repository; ids that do not resolve are silently
// absent. The result still passes through the shared transform.
func (e *SmartRuleEngine) ExecuteManual(ctx context.Context, orgID string, productIDs []string) ([]catalogmodel.ResolvedProduct, error) {
	products, err := e.products.FindByIDs(ctx, orgID, productIDs)
	if err != nil {
		return nil, err
	}
	return catalogservice.TransformAll(products), nil
}

// Invalidate drops the cached result of a saved rule. Called by the rule
// write path so edits become visible without waiting out the TTL.
func (e *SmartRuleEngine) Invalidate(ctx context.Context, orgID, ruleID string) {
	if err := e.cache.Delete(ctx, ruleCacheKey(orgID, ruleID)); err != nil {
		log.GetLogger().Debug("Failed to invalidate rule cache", log.String("ruleId", ruleID), log.Error(err))
	}
}

// execute runs the shared pipeline: route manual selections, otherwise
// compile and run the catalog query, then transform.
func (e *SmartRuleEngine) execute(ctx context.Context, orgID string, rule *model.SmartRule) ([]catalogmodel.ResolvedProduct, error) {
	if rule.RuleType == model.RuleTypeManualSelection {
		return e.ExecuteManual(ctx, orgID, rule.ManualProductIDs)
	}

	query, err := e.builder.Build(rule, orgID)
	if err != nil {
		return nil, err
	}

	products, err := e.products.Query(ctx, query.Predicate, query.Sort, query.Limit)
	if err != nil {
		return nil, err
	}

	// An empty result set is a normal outcome, not a failure.
	return catalogservice.TransformAll(products), nil
}

// cacheGet reads a cached result. Any cache failure is treated as a miss.
func (e *SmartRuleEngine) cacheGet(ctx context.Context, key string) ([]catalogmodel.ResolvedProduct, bool) {
	raw, err := e.cache.Get(ctx, key)
	if err != nil {
		if err != cache.ErrCacheMiss {
			log.GetLogger().Debug("Rule cache read failed, falling through", log.String("key", key), log.Error(err))
		}
		return nil, false
	}

	var resolved []catalogmodel.ResolvedProduct
	if err := json.Unmarshal(raw, &resolved); err != nil {
		log.GetLogger().Debug("Rule cache entry is unreadable, falling through", log.String("key", key), log.Error(err))
		return nil, false
	}
	return resolved, true
}

// cacheSet writes back a result with the configured TTL. Concurrent
// executions of the same rule may race here; last write wins, the values are
// equivalent.
func (e *SmartRuleEngine) cacheSet(ctx context.Context, key string, resolved []catalogmodel.ResolvedProduct) {
	raw, err := json.Marshal(resolved)
	if err != nil {
		log.GetLogger().Debug("Failed to encode rule result for caching", log.String("key", key), log.Error(err))
		return
	}
	if err := e.cache.Set(ctx, key, raw, e.cacheTTL); err != nil {
		log.GetLogger().Debug("Rule cache write failed", log.String("key", key), log.Error(err))
	}
}

// recordViews bumps view counters as a detached, best-effort task with
// at-most-once, may-fail semantics. It never affects the response.
func (e *SmartRuleEngine) recordViews(orgID string, resolved []catalogmodel.ResolvedProduct) {
	if len(resolved) == 0 {
		return
	}
	ids := make([]string, 0, len(resolved))
	for _, p := range resolved {
		ids = append(ids, p.ID)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.products.IncrementViewCounts(ctx, orgID, ids); err != nil {
			log.GetLogger().Debug("View count increment failed", log.Error(err))
		}
	}()
}

func ruleCacheKey(orgID, ruleID string) string {
	return fmt.Sprintf("smartrule:%s:%s", orgID, ruleID)
}
