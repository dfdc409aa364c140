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

package services

import (
	"net/http"
	"strings"

	"github.com/vendra/commerce-storefront-service/internal/storefront/handler"
)

// StorefrontService routes the public, tenant-scoped storefront endpoints.
type StorefrontService struct {
	storefrontHandler *handler.StorefrontHandler
}

// NewStorefrontService creates the service and its handler.
func NewStorefrontService() *StorefrontService {
	return &StorefrontService{
		storefrontHandler: handler.NewStorefrontHandler(),
	}
}

// Route dispatches /storefront endpoints.
func (s *StorefrontService) Route(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPut && strings.HasPrefix(path, "/storefront/pages/") &&
		strings.HasSuffix(path, "/sections"):
		pageID := strings.TrimSuffix(strings.TrimPrefix(path, "/storefront/pages/"), "/sections")
		s.storefrontHandler.UpdatePageSections(w, r, pageID)

	case method == http.MethodGet && strings.HasPrefix(path, "/storefront/pages/"):
		s.storefrontHandler.GetPage(w, r, strings.TrimPrefix(path, "/storefront/pages/"))

	default:
		http.NotFound(w, r)
	}
}
