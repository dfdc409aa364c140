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

// Category is one node of a tenant's product taxonomy.
type Category struct {
	CategoryID string `json:"categoryId" bson:"category_id"`
	OrgID      string `json:"orgId" bson:"org_id"`
	Name       string `json:"name" bson:"name"`
	Slug       string `json:"slug" bson:"slug"`
	ParentID   string `json:"parentId,omitempty" bson:"parent_id,omitempty"`
	Image      string `json:"image,omitempty" bson:"image,omitempty"`
	IsActive   bool   `json:"isActive" bson:"is_active"`
}

// Brand is a manufacturer/label entry of a tenant's taxonomy.
type Brand struct {
	BrandID  string `json:"brandId" bson:"brand_id"`
	OrgID    string `json:"orgId" bson:"org_id"`
	Name     string `json:"name" bson:"name"`
	Slug     string `json:"slug" bson:"slug"`
	IsActive bool   `json:"isActive" bson:"is_active"`
}

// CategoryWithCount is a category carrying its live product count. Counting
// is an explicitly opt-in aggregation; sections that do not ask for it get
// plain categories.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"productCount"`
}
