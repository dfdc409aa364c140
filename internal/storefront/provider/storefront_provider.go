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

package provider

import (
	"sync"

	ruleprovider "github.com/vendra/commerce-storefront-service/internal/smartrules/provider"
	"github.com/vendra/commerce-storefront-service/internal/storefront/service"
	"github.com/vendra/commerce-storefront-service/internal/storefront/store"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	dbprovider "github.com/vendra/commerce-storefront-service/internal/system/database/provider"
	taxonomystore "github.com/vendra/commerce-storefront-service/internal/taxonomy/store"
)

var (
	orchestrator *service.HydrationOrchestrator
	pageStore    *store.PageStore
	once         sync.Once
)

// GetHydrationOrchestrator returns the singleton orchestrator.
func GetHydrationOrchestrator() *service.HydrationOrchestrator {
	initOnce()
	return orchestrator
}

// GetPageStore returns the singleton page store.
func GetPageStore() *store.PageStore {
	initOnce()
	return pageStore
}

func initOnce() {
	once.Do(func() {
		db := dbprovider.GetDatabase()

		pageStore = store.NewPageStore(db, constants.PageCollection)
		taxonomy := taxonomystore.NewTaxonomyStore(db)
		engine := ruleprovider.GetSmartRuleEngine()

		resolvers := service.NewSectionResolvers(engine, taxonomy, pageStore)
		orchestrator = service.NewHydrationOrchestrator(resolvers)
	})
}
