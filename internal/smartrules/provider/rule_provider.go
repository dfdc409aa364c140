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
	"time"

	catalogstore "github.com/vendra/commerce-storefront-service/internal/catalog/store"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/model"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/service"
	"github.com/vendra/commerce-storefront-service/internal/smartrules/store"
	"github.com/vendra/commerce-storefront-service/internal/system/cache"
	"github.com/vendra/commerce-storefront-service/internal/system/config"
	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	dbprovider "github.com/vendra/commerce-storefront-service/internal/system/database/provider"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
)

var (
	engine     *service.SmartRuleEngine
	rulesStore *store.RulesStore
	once       sync.Once
)

// GetSmartRuleEngine returns the singleton engine, wiring stores, cache and
// the rule-type table on first use.
func GetSmartRuleEngine() *service.SmartRuleEngine {
	initOnce()
	return engine
}

// GetRulesStore returns the singleton saved-rules store.
func GetRulesStore() *store.RulesStore {
	initOnce()
	return rulesStore
}

func initOnce() {
	once.Do(func() {
		cfg := config.GetConfig()
		db := dbprovider.GetDatabase()

		rulesStore = store.NewRulesStore(db, constants.SmartRuleCollection)
		productStore := catalogstore.NewProductStore(db, constants.ProductCollection)

		specs := model.RuleTypeSpecs()
		validator := service.NewFilterValidator(specs)
		builder := service.NewQueryBuilder(specs)

		ttl := constants.DefaultRuleCacheTTL
		if cfg.Storefront.RuleCacheTTLSeconds > 0 {
			ttl = time.Duration(cfg.Storefront.RuleCacheTTLSeconds) * time.Second
		}

		engine = service.NewSmartRuleEngine(rulesStore, productStore, newCacheStore(cfg),
			validator, builder, ttl)
	})
}

// newCacheStore picks the cache backend: Redis when configured, in-process
// otherwise. A Redis connection failure downgrades to the in-process cache
// rather than blocking startup.
func newCacheStore(cfg *config.Config) cache.Store {
	if cfg.Redis.Addr == "" {
		return cache.NewMemoryStore()
	}

	redisStore, err := cache.NewRedisStore(cfg.Redis)
	if err != nil {
		log.GetLogger().Warn("Redis unavailable, using in-process rule cache", log.Error(err))
		return cache.NewMemoryStore()
	}
	return redisStore
}
