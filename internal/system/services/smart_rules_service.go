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

	"github.com/vendra/commerce-storefront-service/internal/smartrules/handler"
)

// SmartRulesService routes the tenant-scoped smart rule management
// endpoints.
type SmartRulesService struct {
	rulesHandler *handler.SmartRulesHandler
}

// NewSmartRulesService creates the service and its handler.
func NewSmartRulesService() *SmartRulesService {
	return &SmartRulesService{
		rulesHandler: handler.NewSmartRulesHandler(),
	}
}

// Route dispatches /smart-rules endpoints. The tenant dispatcher has already
// stripped the /t/{org} prefix and the API base path.
func (s *SmartRulesService) Route(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	method := r.Method

	switch {
	case method == http.MethodPost && path == "/smart-rules":
		s.rulesHandler.AddSmartRule(w, r)

	case method == http.MethodPost && path == "/smart-rules/preview":
		s.rulesHandler.PreviewSmartRule(w, r)

	case method == http.MethodGet && path == "/smart-rules":
		s.rulesHandler.GetSmartRules(w, r)

	case method == http.MethodGet && strings.HasPrefix(path, "/smart-rules/"):
		s.rulesHandler.GetSmartRule(w, r, strings.TrimPrefix(path, "/smart-rules/"))

	case method == http.MethodPut && strings.HasPrefix(path, "/smart-rules/"):
		s.rulesHandler.UpdateSmartRule(w, r, strings.TrimPrefix(path, "/smart-rules/"))

	case method == http.MethodDelete && strings.HasPrefix(path, "/smart-rules/"):
		s.rulesHandler.DeleteSmartRule(w, r, strings.TrimPrefix(path, "/smart-rules/"))

	default:
		http.NotFound(w, r)
	}
}
