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

// SectionType identifies the renderable block kind of a storefront section.
type SectionType string

const (
	SectionTypeProductCarousel SectionType = "product_carousel"
	SectionTypeProductGrid     SectionType = "product_grid"
	SectionTypeCategoryGrid    SectionType = "category_grid"
	SectionTypeNavigation      SectionType = "navigation"
	SectionTypeBanner          SectionType = "banner"
)

// DataSource declares where a section's live data comes from.
type DataSource string

const (
	DataSourceStatic  DataSource = "static"
	DataSourceManual  DataSource = "manual"
	DataSourceSmart   DataSource = "smart"
	DataSourceDynamic DataSource = "dynamic"
)

// ManualData is an explicit id selection configured in the page builder.
type ManualData struct {
	ProductIDs  []string `json:"productIds,omitempty" bson:"product_ids,omitempty"`
	CategoryIDs []string `json:"categoryIds,omitempty" bson:"category_ids,omitempty"`
}

// Section is one configurable, independently-resolved block of a storefront
// page. Sections are created and edited by tenant operators in the page
// builder; the composition engine reads them and never mutates them.
type Section struct {
	SectionID   string                 `json:"sectionId" bson:"section_id"`
	Type        SectionType            `json:"type" bson:"type"`
	Position    int                    `json:"position" bson:"position"`
	Config      map[string]interface{} `json:"config,omitempty" bson:"config,omitempty"`
	DataSource  DataSource             `json:"dataSource" bson:"data_source"`
	SmartRuleID string                 `json:"smartRuleId,omitempty" bson:"smart_rule_id,omitempty"`
	ManualData  *ManualData            `json:"manualData,omitempty" bson:"manual_data,omitempty"`
	IsActive    bool                   `json:"isActive" bson:"is_active"`
}

// HydratedSection is a section carrying its resolved data. It is a fresh,
// per-request value; nothing here is ever persisted.
type HydratedSection struct {
	Section
	Data   interface{} `json:"data"`
	Failed bool        `json:"error,omitempty"`
}

// Page is a tenant's storefront page definition: an ordered list of
// heterogeneous sections.
type Page struct {
	PageID      string    `json:"pageId" bson:"page_id"`
	OrgID       string    `json:"orgId" bson:"org_id"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Sections    []Section `json:"sections,omitempty" bson:"sections,omitempty"`
	IsPublished bool      `json:"isPublished" bson:"is_published"`
	CreatedAt   int64     `json:"createdAt" bson:"created_at"`
	UpdatedAt   int64     `json:"updatedAt" bson:"updated_at"`
}

// NavigationItem is one entry of a resolved navigation section. Manual
// entries come from the section config and always win over auto-discovered
// pages pointing at the same URL.
type NavigationItem struct {
	Label  string `json:"label"`
	URL    string `json:"url"`
	Manual bool   `json:"manual,omitempty"`
}
