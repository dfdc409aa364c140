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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendra/commerce-storefront-service/internal/storefront/model"
)

// scriptedResolver drives each section's outcome off its id.
type scriptedResolver struct {
	failing  map[string]bool
	panicky  map[string]bool
	delays   map[string]time.Duration
	resolved func(section model.Section) interface{}
}

func (r *scriptedResolver) Resolve(_ context.Context, _ string, section model.Section) (interface{}, error) {
	if d, ok := r.delays[section.SectionID]; ok {
		time.Sleep(d)
	}
	if r.panicky[section.SectionID] {
		panic("resolver blew up")
	}
	if r.failing[section.SectionID] {
		return nil, errors.New("backend unavailable")
	}
	if r.resolved != nil {
		return r.resolved(section), nil
	}
	return section.SectionID + "-data", nil
}

func activeSection(id string, position int) model.Section {
	return model.Section{
		SectionID:  id,
		Type:       model.SectionTypeProductGrid,
		Position:   position,
		DataSource: model.DataSourceSmart,
		IsActive:   true,
	}
}

func TestHydrateSectionsIsolatesFailures(t *testing.T) {
	orchestrator := NewHydrationOrchestrator(&scriptedResolver{
		failing: map[string]bool{"s2": true},
		panicky: map[string]bool{"s4": true},
	})

	sections := []model.Section{
		activeSection("s1", 1),
		activeSection("s2", 2),
		activeSection("s3", 3),
		activeSection("s4", 4),
	}

	hydrated := orchestrator.HydrateSections(context.Background(), "org-1", sections)
	require.Len(t, hydrated, 4)

	assert.False(t, hydrated[0].Failed)
	assert.Equal(t, "s1-data", hydrated[0].Data)

	assert.True(t, hydrated[1].Failed)
	assert.Equal(t, []interface{}{}, hydrated[1].Data)

	assert.False(t, hydrated[2].Failed)

	// A panicking resolver degrades its own section and nothing else.
	assert.True(t, hydrated[3].Failed)
	assert.Equal(t, []interface{}{}, hydrated[3].Data)
}

func TestHydrateSectionsPreservesPositionOrder(t *testing.T) {
	// The slowest section is authored first; a naive completion-order
	// assembly would move it.
	orchestrator := NewHydrationOrchestrator(&scriptedResolver{
		delays: map[string]time.Duration{"first": 50 * time.Millisecond},
	})

	sections := []model.Section{
		activeSection("third", 30),
		activeSection("first", 10),
		activeSection("second", 20),
	}

	hydrated := orchestrator.HydrateSections(context.Background(), "org-1", sections)
	require.Len(t, hydrated, 3)

	assert.Equal(t, "first", hydrated[0].SectionID)
	assert.Equal(t, "second", hydrated[1].SectionID)
	assert.Equal(t, "third", hydrated[2].SectionID)
}

func TestHydrateSectionsSkipsInactive(t *testing.T) {
	orchestrator := NewHydrationOrchestrator(&scriptedResolver{})

	inactive := activeSection("hidden", 2)
	inactive.IsActive = false

	sections := []model.Section{
		activeSection("visible-1", 1),
		inactive,
		activeSection("visible-2", 3),
	}

	hydrated := orchestrator.HydrateSections(context.Background(), "org-1", sections)
	require.Len(t, hydrated, 2)

	assert.Equal(t, "visible-1", hydrated[0].SectionID)
	assert.Equal(t, "visible-2", hydrated[1].SectionID)
}

func TestHydrateSectionsDoesNotMutateInput(t *testing.T) {
	orchestrator := NewHydrationOrchestrator(&scriptedResolver{})

	sections := []model.Section{
		activeSection("b", 2),
		activeSection("a", 1),
	}

	_ = orchestrator.HydrateSections(context.Background(), "org-1", sections)

	assert.Equal(t, "b", sections[0].SectionID)
	assert.Equal(t, "a", sections[1].SectionID)
}

func TestHydrateSectionsEmptyPage(t *testing.T) {
	orchestrator := NewHydrationOrchestrator(&scriptedResolver{})

	hydrated := orchestrator.HydrateSections(context.Background(), "org-1", nil)
	assert.Empty(t, hydrated)
}
