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

import "time"

// StockLocation is one fulfillment location's on-hand quantity.
type StockLocation struct {
	LocationID string `json:"locationId" bson:"location_id"`
	Quantity   int    `json:"quantity" bson:"quantity"`
}

// Product is the raw catalog document. TotalStock is a denormalized sum of
// the location quantities maintained by the inventory write path; rule
// predicates filter on it, while the public representation always recomputes
// the sum from the locations themselves.
type Product struct {
	ProductID       string          `json:"productId" bson:"product_id"`
	OrgID           string          `json:"orgId" bson:"org_id"`
	Name            string          `json:"name" bson:"name"`
	Slug            string          `json:"slug" bson:"slug"`
	Description     string          `json:"description,omitempty" bson:"description,omitempty"`
	Images          []string        `json:"images,omitempty" bson:"images,omitempty"`
	CategoryID      string          `json:"categoryId" bson:"category_id"`
	BrandID         string          `json:"brandId,omitempty" bson:"brand_id,omitempty"`
	SellingPrice    float64         `json:"sellingPrice" bson:"selling_price"`
	DiscountedPrice float64         `json:"discountedPrice,omitempty" bson:"discounted_price,omitempty"`
	TotalStock      int             `json:"totalStock" bson:"total_stock"`
	StockLocations  []StockLocation `json:"stockLocations,omitempty" bson:"stock_locations,omitempty"`
	Tags            []string        `json:"tags,omitempty" bson:"tags,omitempty"`
	ViewCount       int64           `json:"viewCount" bson:"view_count"`
	IsActive        bool            `json:"isActive" bson:"is_active"`
	CreatedAt       time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updated_at"`
	LastSoldAt      *time.Time      `json:"lastSoldAt,omitempty" bson:"last_sold_at,omitempty"`
}

// ResolvedPrice is the public price block of a resolved product.
type ResolvedPrice struct {
	Original      float64 `json:"original"`
	Discounted    float64 `json:"discounted"`
	HasDiscount   bool    `json:"hasDiscount"`
	DiscountLabel string  `json:"discountLabel,omitempty"`
}

// ResolvedStock is the public stock block of a resolved product.
type ResolvedStock struct {
	Available bool   `json:"available"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

// ResolvedProduct is the public representation every rule execution path
// returns, regardless of entry point.
type ResolvedProduct struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	Images   []string      `json:"images,omitempty"`
	Category string        `json:"category"`
	Brand    string        `json:"brand,omitempty"`
	Price    ResolvedPrice `json:"price"`
	Stock    ResolvedStock `json:"stock"`
	Tags     []string      `json:"tags,omitempty"`
	URL      string        `json:"url"`
}
