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

	catalogmodel "github.com/vendra/commerce-storefront-service/internal/catalog/model"
	rulemodel "github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/storefront/model"
	taxonomymodel "github.com/vendra/commerce-storefront-service/internal/taxonomy/model"
)

// RuleExecutor is the Smart Rule Engine surface the resolvers depend on.
type RuleExecutor interface {
	ExecuteRule(ctx context.Context, orgID, ruleID string) ([]catalogmodel.ResolvedProduct, error)
	ExecuteAdHoc(ctx context.Context, orgID string, rule *rulemodel.SmartRule) ([]catalogmodel.ResolvedProduct, error)
	ExecuteManual(ctx context.Context, orgID string, productIDs []string) ([]catalogmodel.ResolvedProduct, error)
}

// TaxonomyReader is the taxonomy surface category-grid resolution needs.
type TaxonomyReader interface {
	ListCategories(ctx context.Context, orgID string) ([]taxonomymodel.Category, error)
	FindCategoriesByIDs(ctx context.Context, orgID string, ids []string) ([]taxonomymodel.Category, error)
	CountProductsByCategory(ctx context.Context, orgID, categoryID string) (int64, error)
}

// PageReader is the page surface navigation resolution needs.
type PageReader interface {
	ListPublishedPages(ctx context.Context, orgID string) ([]model.Page, error)
}

// SectionResolvers dispatches each section to its resolution strategy. The
// dispatch is a flat switch on data source and type, not a type hierarchy.
type SectionResolvers struct {
	engine   RuleExecutor
	taxonomy TaxonomyReader
	pages    PageReader
}

// NewSectionResolvers wires the resolver strategies.
func NewSectionResolvers(engine RuleExecutor, taxonomy TaxonomyReader, pages PageReader) *SectionResolvers {
	return &SectionResolvers{
		engine:   engine,
		taxonomy: taxonomy,
		pages:    pages,
	}
}

// Resolve produces a section's live data. The input section is never
// mutated.
func (r *SectionResolvers) Resolve(ctx context.Context, orgID string, section model.Section) (interface{}, error) {
	// Navigation merges pages and configured menu entries regardless of the
	// declared data source.
	if section.Type == model.SectionTypeNavigation {
		return r.resolveNavigation(ctx, orgID, section)
	}

	switch section.DataSource {
	case model.DataSourceStatic:
		// Intentional passthrough: static sections render their config.
		return section.Config, nil

	case model.DataSourceManual:
		return r.resolveManual(ctx, orgID, section)

	case model.DataSourceSmart:
		return r.resolveSmart(ctx, orgID, section)

	case model.DataSourceDynamic:
		return r.resolveDynamic(ctx, orgID, section)

	default:
		return nil, fmt.Errorf("section %s has unknown data source %q", section.SectionID, section.DataSource)
	}
}

// resolveSmart executes the referenced saved rule, or an ad-hoc rule built
// from the section config when no rule id is set.
func (r *SectionResolvers) resolveSmart(ctx context.Context, orgID string, section model.Section) (interface{}, error) {
	if section.SmartRuleID != "" {
		return r.engine.ExecuteRule(ctx, orgID, section.SmartRuleID)
	}

	rule, err := ruleFromConfig(section.Config)
	if err != nil {
		return nil, err
	}
	return r.engine.ExecuteAdHoc(ctx, orgID, rule)
}

// resolveManual fetches the explicitly selected ids.
func (r *SectionResolvers) resolveManual(ctx context.Context, orgID string, section model.Section) (interface{}, error) {
	if section.ManualData == nil {
		return []catalogmodel.ResolvedProduct{}, nil
	}

	if section.Type == model.SectionTypeCategoryGrid {
		return r.taxonomy.FindCategoriesByIDs(ctx, orgID, section.ManualData.CategoryIDs)
	}
	return r.engine.ExecuteManual(ctx, orgID, section.ManualData.ProductIDs)
}

// resolveDynamic handles live lookups that are not rule-driven. Only the
// category grid has a dynamic strategy today.
func (r *SectionResolvers) resolveDynamic(ctx context.Context, orgID string, section model.Section) (interface{}, error) {
	if section.Type != model.SectionTypeCategoryGrid {
		return nil, fmt.Errorf("section %s: type %q has no dynamic resolver", section.SectionID, section.Type)
	}

	categories, err := r.taxonomy.ListCategories(ctx, orgID)
	if err != nil {
		return nil, err
	}

	// Live product counts are the most expensive sub-operation and run only
	// when the section opts in.
	if wantCounts, _ := section.Config["showProductCounts"].(bool); !wantCounts {
		return categories, nil
	}

	counted := make([]taxonomymodel.CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		count, err := r.taxonomy.CountProductsByCategory(ctx, orgID, category.CategoryID)
		if err != nil {
			return nil, err
		}
		counted = append(counted, taxonomymodel.CategoryWithCount{
			Category:     category,
			ProductCount: count,
		})
	}
	return counted, nil
}

// resolveNavigation unions the tenant's published pages with the section's
// configured menu items, deduping by URL. A manual entry is never
// overwritten by an auto-discovered page pointing at the same URL.
func (r *SectionResolvers) resolveNavigation(ctx context.Context, orgID string, section model.Section) (interface{}, error) {
	pages, err := r.pages.ListPublishedPages(ctx, orgID)
	if err != nil {
		return nil, err
	}

	manualItems := menuItemsFromConfig(section.Config)

	items := make([]model.NavigationItem, 0, len(manualItems)+len(pages))
	seen := make(map[string]bool, len(manualItems)+len(pages))

	for _, item := range manualItems {
		if item.URL == "" || seen[item.URL] {
			continue
		}
		item.Manual = true
		items = append(items, item)
		seen[item.URL] = true
	}

	for _, page := range pages {
		url := "/" + page.Slug
		if seen[url] {
			continue
		}
		items = append(items, model.NavigationItem{Label: page.Title, URL: url})
		seen[url] = true
	}

	return items, nil
}

// ruleFromConfig decodes an ad-hoc rule out of a section's config map.
func ruleFromConfig(config map[string]interface{}) (*rulemodel.SmartRule, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("section config is not encodable: %w", err)
	}

	var rule rulemodel.SmartRule
	if err := json.Unmarshal(raw, &rule); err != nil {
		return nil, fmt.Errorf("section config is not a valid rule: %w", err)
	}
	return &rule, nil
}

// menuItemsFromConfig decodes the manually configured menu entries.
func menuItemsFromConfig(config map[string]interface{}) []model.NavigationItem {
	raw, ok := config["menuItems"]
	if !ok {
		return nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil
	}

	var items []model.NavigationItem
	if err := json.Unmarshal(encoded, &items); err != nil {
		return nil
	}
	return items
}
