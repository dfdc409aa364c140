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

package managers

import (
	"net/http"
	"strings"

	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	"github.com/vendra/commerce-storefront-service/internal/system/services"
	"github.com/vendra/commerce-storefront-service/internal/system/utils"
)

// ServiceManagerInterface registers the HTTP services on a multiplexer.
type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

// ServiceManager is the default implementation.
type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {
	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices mounts the tenant dispatcher and routes each request to
// the owning service by path prefix.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {
	utils.RewriteToDefaultTenant(apiBasePath, sm.mux, constants.DefaultTenant)

	smartRulesService := services.NewSmartRulesService()
	storefrontService := services.NewStorefrontService()

	utils.MountTenantDispatcher(sm.mux, apiBasePath, func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		switch {
		case strings.HasPrefix(path, "/smart-rules"):
			smartRulesService.Route(w, r)
		case strings.HasPrefix(path, "/storefront"):
			storefrontService.Route(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	return nil
}
