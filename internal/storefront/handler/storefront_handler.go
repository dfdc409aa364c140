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

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vendra/commerce-storefront-service/internal/storefront/model"
	"github.com/vendra/commerce-storefront-service/internal/storefront/provider"
	"github.com/vendra/commerce-storefront-service/internal/system/authn"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
	"github.com/vendra/commerce-storefront-service/internal/system/utils"
)

// hydratedPageResponse is the public shape of a composed page.
type hydratedPageResponse struct {
	PageID   string                  `json:"pageId"`
	Title    string                  `json:"title"`
	Slug     string                  `json:"slug"`
	Sections []model.HydratedSection `json:"sections"`
}

// StorefrontHandler exposes the public page-composition endpoint.
type StorefrontHandler struct{}

// NewStorefrontHandler creates the handler.
func NewStorefrontHandler() *StorefrontHandler {
	return &StorefrontHandler{}
}

// GetPage handles GET /storefront/pages/{slug}: loads the published page and
// hydrates every active section. A partially-degraded page (some sections
// flagged with empty data) is still a 200.
func (h *StorefrontHandler) GetPage(w http.ResponseWriter, r *http.Request, slug string) {
	orgID := utils.ExtractOrgHandleFromRequest(r)

	page, err := provider.GetPageStore().GetPublishedPageBySlug(r.Context(), orgID, slug)
	if err != nil {
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.GET_STOREFRONT_PAGE, err))
		return
	}
	if page == nil {
		utils.HandleError(w, systemerrors.NewNotFoundError(systemerrors.PAGE_NOT_FOUND,
			fmt.Sprintf("No published page with slug %q.", slug)))
		return
	}

	sections := provider.GetHydrationOrchestrator().HydrateSections(r.Context(), orgID, page.Sections)

	utils.WriteJSONResponse(w, http.StatusOK, hydratedPageResponse{
		PageID:   page.PageID,
		Title:    page.Title,
		Slug:     page.Slug,
		Sections: sections,
	})
}

// UpdatePageSections handles PUT /storefront/pages/{pageId}/sections, the
// page builder's write path. Sections are replaced wholesale; new sections
// get generated ids.
func (h *StorefrontHandler) UpdatePageSections(w http.ResponseWriter, r *http.Request, pageID string) {
	orgID := utils.ExtractOrgHandleFromRequest(r)
	if err := authn.ValidateRequest(r, orgID); err != nil {
		utils.HandleError(w, err)
		return
	}

	var sections []model.Section
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sections); err != nil {
		utils.HandleError(w, systemerrors.NewValidationError(systemerrors.BAD_REQUEST,
			utils.HandleDecodeError(err, "page sections")))
		return
	}

	for i := range sections {
		if sections[i].SectionID == "" {
			sections[i].SectionID = uuid.New().String()
		}
	}

	updatedAt := time.Now().UTC().Unix()
	err := provider.GetPageStore().UpdatePageSections(r.Context(), orgID, pageID, sections, updatedAt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.HandleError(w, systemerrors.NewNotFoundError(systemerrors.PAGE_NOT_FOUND,
				fmt.Sprintf("No page %q in this organization.", pageID)))
			return
		}
		utils.HandleError(w, systemerrors.NewServerError(systemerrors.UPDATE_STOREFRONT_PAGE, err))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, sections)
}
