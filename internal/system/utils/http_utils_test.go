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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
)

func TestMountTenantDispatcher(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantOrg    string
		wantPath   string
	}{
		{
			name:       "tenant path is stripped and org resolved",
			path:       "/t/acme/api/v1/smart-rules",
			wantStatus: http.StatusOK,
			wantOrg:    "acme",
			wantPath:   "/smart-rules",
		},
		{
			name:       "nested path survives",
			path:       "/t/acme/api/v1/storefront/pages/home",
			wantStatus: http.StatusOK,
			wantOrg:    "acme",
			wantPath:   "/storefront/pages/home",
		},
		{
			name:       "missing org segment",
			path:       "/t/",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "org without api base path",
			path:       "/t/acme/other/endpoint",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()

			var gotOrg, gotPath string
			MountTenantDispatcher(mux, "/api/v1", func(w http.ResponseWriter, r *http.Request) {
				gotOrg = ExtractOrgHandleFromRequest(r)
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantOrg, gotOrg)
				assert.Equal(t, tt.wantPath, gotPath)
			}
		})
	}
}

func TestRewriteToDefaultTenant(t *testing.T) {
	mux := http.NewServeMux()
	RewriteToDefaultTenant("/api/v1", mux, "default")

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/smart-rules", nil))

	require.Equal(t, http.StatusTemporaryRedirect, recorder.Code)
	assert.Equal(t, "/t/default/api/v1/smart-rules", recorder.Header().Get("Location"))
}

func TestHandleError(t *testing.T) {
	t.Run("client error keeps its code", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, systemerrors.NewNotFoundError(systemerrors.RULE_NOT_FOUND, "gone"))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), systemerrors.RULE_NOT_FOUND.Code)
		assert.Contains(t, recorder.Body.String(), "gone")
	})

	t.Run("server error collapses to opaque 500", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		HandleError(recorder, systemerrors.NewServerError(systemerrors.QUERY_PRODUCTS, errors.New("socket closed")))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "socket closed")
	})
}
