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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendra/commerce-storefront-service/internal/catalog/model"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
)

func TestTransformDiscount(t *testing.T) {
	tests := []struct {
		name          string
		sellingPrice  float64
		discounted    float64
		wantDiscount  bool
		wantLabel     string
		wantEffective float64
	}{
		{
			name:          "real discount",
			sellingPrice:  100,
			discounted:    75,
			wantDiscount:  true,
			wantLabel:     "25% OFF",
			wantEffective: 75,
		},
		{
			name:          "rounded percentage",
			sellingPrice:  90,
			discounted:    60,
			wantDiscount:  true,
			wantLabel:     "33% OFF",
			wantEffective: 60,
		},
		{
			name:          "zero discounted price means no discount",
			sellingPrice:  100,
			discounted:    0,
			wantDiscount:  false,
			wantEffective: 100,
		},
		{
			name:          "discounted price above selling price is ignored",
			sellingPrice:  100,
			discounted:    120,
			wantDiscount:  false,
			wantEffective: 100,
		},
		{
			name:          "discounted equal to selling is not a discount",
			sellingPrice:  100,
			discounted:    100,
			wantDiscount:  false,
			wantEffective: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Transform(model.Product{
				ProductID:       "p1",
				Slug:            "widget",
				SellingPrice:    tt.sellingPrice,
				DiscountedPrice: tt.discounted,
			})

			assert.Equal(t, tt.sellingPrice, resolved.Price.Original)
			assert.Equal(t, tt.wantEffective, resolved.Price.Discounted)
			assert.Equal(t, tt.wantDiscount, resolved.Price.HasDiscount)
			assert.Equal(t, tt.wantLabel, resolved.Price.DiscountLabel)
		})
	}
}

func TestTransformStockStatus(t *testing.T) {
	tests := []struct {
		name          string
		locations     []model.StockLocation
		wantQuantity  int
		wantAvailable bool
		wantStatus    string
	}{
		{
			name:          "no locations is out of stock",
			locations:     nil,
			wantQuantity:  0,
			wantAvailable: false,
			wantStatus:    constants.StockStatusOut,
		},
		{
			name: "all locations empty is out of stock",
			locations: []model.StockLocation{
				{LocationID: "w1", Quantity: 0},
				{LocationID: "w2", Quantity: 0},
			},
			wantQuantity:  0,
			wantAvailable: false,
			wantStatus:    constants.StockStatusOut,
		},
		{
			name: "summed below threshold is low stock",
			locations: []model.StockLocation{
				{LocationID: "w1", Quantity: 1},
				{LocationID: "w2", Quantity: 3},
			},
			wantQuantity:  4,
			wantAvailable: true,
			wantStatus:    constants.StockStatusLow,
		},
		{
			name: "summed at threshold is in stock",
			locations: []model.StockLocation{
				{LocationID: "w1", Quantity: 2},
				{LocationID: "w2", Quantity: 3},
			},
			wantQuantity:  5,
			wantAvailable: true,
			wantStatus:    constants.StockStatusIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Transform(model.Product{ProductID: "p1", StockLocations: tt.locations})

			assert.Equal(t, tt.wantQuantity, resolved.Stock.Quantity)
			assert.Equal(t, tt.wantAvailable, resolved.Stock.Available)
			assert.Equal(t, tt.wantStatus, resolved.Stock.Status)
		})
	}
}

func TestTransformIsDeterministic(t *testing.T) {
	product := model.Product{
		ProductID:       "p1",
		Name:            "Widget",
		Slug:            "widget",
		CategoryID:      "c1",
		BrandID:         "b1",
		SellingPrice:    49.99,
		DiscountedPrice: 39.99,
		StockLocations:  []model.StockLocation{{LocationID: "w1", Quantity: 7}},
		Tags:            []string{"sale"},
	}

	first := Transform(product)
	second := Transform(product)

	assert.Equal(t, first, second)
	assert.Equal(t, "/products/widget", first.URL)
}

func TestTransformAllPreservesOrder(t *testing.T) {
	products := []model.Product{
		{ProductID: "p3", Slug: "c"},
		{ProductID: "p1", Slug: "a"},
		{ProductID: "p2", Slug: "b"},
	}

	resolved := TransformAll(products)

	assert.Len(t, resolved, 3)
	assert.Equal(t, "p3", resolved[0].ID)
	assert.Equal(t, "p1", resolved[1].ID)
	assert.Equal(t, "p2", resolved[2].ID)
}
