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

package constants

import "time"

// ContextKey is the type used for request-scoped context values.
type ContextKey string

const (
	// ApiBasePath is the fixed prefix every tenant-scoped endpoint is mounted under.
	ApiBasePath = "/api/v1"

	// TenantContextKey carries the resolved org handle through the request context.
	TenantContextKey ContextKey = "orgHandle"

	// DefaultTenant is the org every unprefixed request is rewritten to.
	DefaultTenant = "default"
)

// Mongo collection names.
const (
	ProductCollection   = "products"
	CategoryCollection  = "categories"
	BrandCollection     = "brands"
	SmartRuleCollection = "smart_rules"
	PageCollection      = "storefront_pages"
)

// Smart rule execution defaults.
const (
	// DefaultRuleLimit is applied when a rule does not declare a limit.
	DefaultRuleLimit = 12

	// MaxRuleLimit caps a rule's declared limit.
	MaxRuleLimit = 50

	// DefaultRuleCacheTTL bounds how long a resolved rule result is served
	// from cache before the catalog is re-read.
	DefaultRuleCacheTTL = 5 * time.Minute

	// LowStockReorderThreshold is the total quantity at or below which a
	// product qualifies for low_stock rules.
	LowStockReorderThreshold = 10

	// DeadStockCutoffDays is how long a product must go without a sale
	// before dead_stock rules pick it up.
	DeadStockCutoffDays = 60

	// DefaultMinDiscountPercent is the clearance threshold used when a
	// clearance rule does not declare one.
	DefaultMinDiscountPercent = 10.0
)

// Stock status values exposed on resolved products.
const (
	StockStatusOut  = "Out of Stock"
	StockStatusLow  = "Low Stock"
	StockStatusIn   = "In Stock"
	LowStockDisplay = 5
)
