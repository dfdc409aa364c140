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

package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vendra/commerce-storefront-service/internal/system/constants"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the error's
// classification. Client errors keep their code and description; everything
// else is logged and collapsed into an opaque 500.
func HandleError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var clientError *systemerrors.ClientError
	if errors.As(err, &clientError) {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(clientError.ErrorMessage)
		return
	}

	log.GetLogger().Error(err.Error())
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": "Internal server error",
	})
}

// WriteJSONResponse encodes the payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// ExtractOrgHandleFromRequest returns the org handle the tenant dispatcher
// stored in the request context.
func ExtractOrgHandleFromRequest(r *http.Request) string {
	org, _ := r.Context().Value(constants.TenantContextKey).(string)
	return org
}

// RewriteToDefaultTenant redirects unprefixed API calls to the default org,
// e.g. /api/v1/... to /t/default/api/v1/...
func RewriteToDefaultTenant(apiBasePath string, mux *http.ServeMux, defaultTenant string) {
	mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		newPath := "/t/" + defaultTenant + r.URL.Path
		http.Redirect(w, r, newPath, http.StatusTemporaryRedirect)
	})
}

// MountTenantDispatcher mounts the /t/{org}/... routing root. The org handle
// is stripped from the path and stored in the request context so handlers
// always operate on an already-resolved tenant.
func MountTenantDispatcher(mux *http.ServeMux, apiBasePath string, handlerFunc http.HandlerFunc) {
	mux.HandleFunc("/t/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimSuffix(r.URL.Path, "/")

		parts := strings.SplitN(strings.TrimPrefix(path, "/t/"), "/", 2)
		if len(parts) != 2 || parts[0] == "" {
			http.Error(w, "Invalid tenant path format", http.StatusBadRequest)
			return
		}

		orgHandle := parts[0]
		remainingPath := "/" + parts[1]

		if !strings.HasPrefix(remainingPath, apiBasePath) {
			http.NotFound(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constants.TenantContextKey, orgHandle)
		r2 := r.Clone(ctx)
		r2.URL.Path = strings.TrimPrefix(remainingPath, apiBasePath)

		handlerFunc(w, r2)
	})
}
