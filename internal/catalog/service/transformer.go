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
	"math"

	"github.com/vendra/commerce-storefront-service/internal/catalog/model"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
)

// Transform derives the public representation of a raw catalog document.
// This is the single implementation of the derivation rules: discount math,
// stock aggregation and stock status must be identical on every execution
// path, so no caller is allowed a bespoke variant. Pure function of its
// input.
func Transform(p model.Product) model.ResolvedProduct {
	price := model.ResolvedPrice{
		Original:   p.SellingPrice,
		Discounted: p.SellingPrice,
	}
	if p.DiscountedPrice > 0 && p.DiscountedPrice < p.SellingPrice {
		price.Discounted = p.DiscountedPrice
		price.HasDiscount = true
		percent := int(math.Round((p.SellingPrice - p.DiscountedPrice) / p.SellingPrice * 100))
		price.DiscountLabel = fmt.Sprintf("%d%% OFF", percent)
	}

	quantity := 0
	for _, loc := range p.StockLocations {
		quantity += loc.Quantity
	}

	stock := model.ResolvedStock{
		Available: quantity > 0,
		Quantity:  quantity,
	}
	switch {
	case quantity == 0:
		stock.Status = constants.StockStatusOut
	case quantity < constants.LowStockDisplay:
		stock.Status = constants.StockStatusLow
	default:
		stock.Status = constants.StockStatusIn
	}

	return model.ResolvedProduct{
		ID:       p.ProductID,
		Name:     p.Name,
		Slug:     p.Slug,
		Images:   p.Images,
		Category: p.CategoryID,
		Brand:    p.BrandID,
		Price:    price,
		Stock:    stock,
		Tags:     p.Tags,
		URL:      "/products/" + p.Slug,
	}
}

// TransformAll maps Transform over a result set, preserving order.
func TransformAll(products []model.Product) []model.ResolvedProduct {
	resolved := make([]model.ResolvedProduct, 0, len(products))
	for _, p := range products {
		resolved = append(resolved, Transform(p))
	}
	return resolved
}
