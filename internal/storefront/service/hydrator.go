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
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vendra/commerce-storefront-service/internal/storefront/model"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
)

// SectionResolver resolves one section's live data.
type SectionResolver interface {
	Resolve(ctx context.Context, orgID string, section model.Section) (interface{}, error)
}

// HydrationOrchestrator resolves a page's section list into renderable data.
// Resolution time is dominated by repository round-trips, so sections are
// dispatched concurrently; each resolution is individually contained so one
// broken section never blocks the rest of the page.
type HydrationOrchestrator struct {
	resolver SectionResolver
}

// NewHydrationOrchestrator creates an orchestrator over the given resolver.
func NewHydrationOrchestrator(resolver SectionResolver) *HydrationOrchestrator {
	return &HydrationOrchestrator{resolver: resolver}
}

// HydrateSections resolves every active section concurrently and reassembles
// the results in author-defined position order. Inactive sections are
// dropped; failed sections are retained with empty data and the error flag
// set. The input sections are never mutated.
func (h *HydrationOrchestrator) HydrateSections(ctx context.Context, orgID string, sections []model.Section) []model.HydratedSection {
	ordered := make([]model.Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	results := make([]*model.HydratedSection, len(ordered))
	var wg sync.WaitGroup

	for i, section := range ordered {
		if !section.IsActive {
			continue
		}

		wg.Add(1)
		go func(slot int, section model.Section) {
			defer wg.Done()
			results[slot] = h.resolveOne(ctx, orgID, section)
		}(i, section)
	}

	wg.Wait()

	hydrated := make([]model.HydratedSection, 0, len(ordered))
	for _, result := range results {
		if result != nil {
			hydrated = append(hydrated, *result)
		}
	}
	return hydrated
}

// resolveOne wraps a single section's resolution. Failures, including
// resolver panics, are contained here and flagged on the section.
func (h *HydrationOrchestrator) resolveOne(ctx context.Context, orgID string, section model.Section) (hydrated *model.HydratedSection) {
	defer func() {
		if r := recover(); r != nil {
			log.GetLogger().Error("Section resolver panicked",
				log.String("sectionId", section.SectionID), log.Any("panic", r))
			hydrated = failedSection(section)
		}
	}()

	data, err := h.resolver.Resolve(ctx, orgID, section)
	if err != nil {
		log.GetLogger().Error(fmt.Sprintf("Failed to resolve section %s", section.SectionID),
			log.String("type", string(section.Type)), log.Error(err))
		return failedSection(section)
	}

	return &model.HydratedSection{Section: section, Data: data}
}

func failedSection(section model.Section) *model.HydratedSection {
	return &model.HydratedSection{
		Section: section,
		Data:    []interface{}{},
		Failed:  true,
	}
}
