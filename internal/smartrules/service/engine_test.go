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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	catalogmodel "github.com/vendra/commerce-storefront-service/internal/catalog/model"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/system/cache"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
)

type fakeRuleStore struct {
	rules map[string]*model.SmartRule
	calls int
}

func (f *fakeRuleStore) GetRule(_ context.Context, orgID, ruleID string) (*model.SmartRule, error) {
	f.calls++
	rule, ok := f.rules[orgID+"/"+ruleID]
	if !ok {
		return nil, nil
	}
	return rule, nil
}

type fakeProductStore struct {
	products   []catalogmodel.Product
	queryCalls int
	viewed     chan []string
}

func (f *fakeProductStore) Query(_ context.Context, predicate bson.M, _ bson.D, limit int64) ([]catalogmodel.Product, error) {
	f.queryCalls++
	matched := make([]catalogmodel.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.OrgID == predicate["org_id"] && p.IsActive {
			matched = append(matched, p)
		}
		if int64(len(matched)) == limit {
			break
		}
	}
	return matched, nil
}

func (f *fakeProductStore) FindByIDs(_ context.Context, orgID string, ids []string) ([]catalogmodel.Product, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	matched := make([]catalogmodel.Product, 0, len(ids))
	for _, p := range f.products {
		if p.OrgID == orgID && p.IsActive && wanted[p.ProductID] {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductStore) IncrementViewCounts(_ context.Context, _ string, ids []string) error {
	if f.viewed != nil {
		f.viewed <- ids
	}
	return nil
}

func newTestEngine(rules *fakeRuleStore, products *fakeProductStore) *SmartRuleEngine {
	specs := model.RuleTypeSpecs()
	return NewSmartRuleEngine(rules, products, cache.NewMemoryStore(),
		NewFilterValidator(specs), NewQueryBuilder(specs), time.Minute)
}

func testProducts(orgID string) []catalogmodel.Product {
	return []catalogmodel.Product{
		{
			ProductID:      "p1",
			OrgID:          orgID,
			Name:           "Widget",
			Slug:           "widget",
			SellingPrice:   30,
			StockLocations: []catalogmodel.StockLocation{{LocationID: "w1", Quantity: 8}},
			IsActive:       true,
		},
		{
			ProductID:      "p2",
			OrgID:          orgID,
			Name:           "Gadget",
			Slug:           "gadget",
			SellingPrice:   45,
			StockLocations: []catalogmodel.StockLocation{{LocationID: "w1", Quantity: 2}},
			IsActive:       true,
		},
	}
}

func TestExecuteRuleServesFromCache(t *testing.T) {
	rules := &fakeRuleStore{rules: map[string]*model.SmartRule{
		"org-1/r1": {RuleID: "r1", OrgID: "org-1", RuleType: model.RuleTypeNewArrivals},
	}}
	products := &fakeProductStore{products: testProducts("org-1")}
	engine := newTestEngine(rules, products)

	first, err := engine.ExecuteRule(context.Background(), "org-1", "r1")
	require.NoError(t, err)
	require.Len(t, first, 2)

	// Drop the catalog out from under the engine. A cached execution must
	// return the same products without touching the repositories.
	products.products = nil

	second, err := engine.ExecuteRule(context.Background(), "org-1", "r1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, rules.calls)
	assert.Equal(t, 1, products.queryCalls)
}

func TestExecuteRuleNotFound(t *testing.T) {
	engine := newTestEngine(&fakeRuleStore{rules: map[string]*model.SmartRule{}}, &fakeProductStore{})

	_, err := engine.ExecuteRule(context.Background(), "org-1", "missing")
	require.Error(t, err)

	clientErr, ok := err.(*systemerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, systemerrors.RULE_NOT_FOUND.Code, clientErr.Code)
}

func TestExecuteRuleIsTenantScoped(t *testing.T) {
	rules := &fakeRuleStore{rules: map[string]*model.SmartRule{
		"org-1/r1": {RuleID: "r1", OrgID: "org-1", RuleType: model.RuleTypeNewArrivals},
	}}
	engine := newTestEngine(rules, &fakeProductStore{})

	// The rule exists, but in a different org.
	_, err := engine.ExecuteRule(context.Background(), "org-2", "r1")
	require.Error(t, err)

	clientErr, ok := err.(*systemerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, systemerrors.RULE_NOT_FOUND.Code, clientErr.Code)
}

func TestExecuteAdHocValidatesFirst(t *testing.T) {
	products := &fakeProductStore{products: testProducts("org-1")}
	engine := newTestEngine(&fakeRuleStore{}, products)

	_, err := engine.ExecuteAdHoc(context.Background(), "org-1", &model.SmartRule{
		RuleType: model.RuleTypeCategoryBased,
	})
	require.Error(t, err)
	assert.Equal(t, 0, products.queryCalls)

	clientErr, ok := err.(*systemerrors.ClientError)
	require.True(t, ok)
	assert.Equal(t, systemerrors.MISSING_REQUIRED_FILTER.Code, clientErr.Code)
}

func TestExecuteAdHocDoesNotCache(t *testing.T) {
	products := &fakeProductStore{products: testProducts("org-1")}
	engine := newTestEngine(&fakeRuleStore{}, products)

	rule := &model.SmartRule{RuleType: model.RuleTypeNewArrivals}

	_, err := engine.ExecuteAdHoc(context.Background(), "org-1", rule)
	require.NoError(t, err)
	_, err = engine.ExecuteAdHoc(context.Background(), "org-1", rule)
	require.NoError(t, err)

	assert.Equal(t, 2, products.queryCalls)
}

func TestExecuteManualSkipsUnresolvableIDs(t *testing.T) {
	products := &fakeProductStore{products: testProducts("org-1")}
	engine := newTestEngine(&fakeRuleStore{}, products)

	resolved, err := engine.ExecuteManual(context.Background(), "org-1", []string{"p1", "ghost", "p2"})
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, "p1", resolved[0].ID)
	assert.Equal(t, "p2", resolved[1].ID)
}

func TestExecuteRuleRecordsViews(t *testing.T) {
	rules := &fakeRuleStore{rules: map[string]*model.SmartRule{
		"org-1/r1": {RuleID: "r1", OrgID: "org-1", RuleType: model.RuleTypeNewArrivals},
	}}
	products := &fakeProductStore{
		products: testProducts("org-1"),
		viewed:   make(chan []string, 1),
	}
	engine := newTestEngine(rules, products)

	_, err := engine.ExecuteRule(context.Background(), "org-1", "r1")
	require.NoError(t, err)

	select {
	case ids := <-products.viewed:
		assert.ElementsMatch(t, []string{"p1", "p2"}, ids)
	case <-time.After(2 * time.Second):
		t.Fatal("view counts were never recorded")
	}
}

func TestInvalidateDropsCachedResult(t *testing.T) {
	rules := &fakeRuleStore{rules: map[string]*model.SmartRule{
		"org-1/r1": {RuleID: "r1", OrgID: "org-1", RuleType: model.RuleTypeNewArrivals},
	}}
	products := &fakeProductStore{products: testProducts("org-1")}
	engine := newTestEngine(rules, products)

	_, err := engine.ExecuteRule(context.Background(), "org-1", "r1")
	require.NoError(t, err)

	engine.Invalidate(context.Background(), "org-1", "r1")

	_, err = engine.ExecuteRule(context.Background(), "org-1", "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, products.queryCalls)
}
