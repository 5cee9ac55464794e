/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Oferente Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dashboard

// DTO is the JSON shape of dashboard data, as served by the API.
type DTO struct {
	Stats          StatsDTO            `json:"stats"`
	QuickActions   []QuickActionDTO    `json:"quickActions"`
	RecentActivity []RecentActivityDTO `json:"recentActivity"`
}

type StatsDTO struct {
	Visits         int    `json:"visits"`
	VisitsChange   string `json:"visitsChange,omitempty"`
	ActiveProducts int    `json:"activeProducts"`
	NewMessages    int    `json:"newMessages"`
	MessagesChange string `json:"messagesChange,omitempty"`
	ActiveServices int    `json:"activeServices"`
}

type QuickActionDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Route       string `json:"route"`
}

type RecentActivityDTO struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
	Icon  string `json:"icon"`
}

// ToDomain converts the wire shape into Data.
func ToDomain(dto DTO) Data {
	d := Data{
		Stats:          Stats(dto.Stats),
		QuickActions:   make([]QuickAction, len(dto.QuickActions)),
		RecentActivity: make([]RecentActivity, len(dto.RecentActivity)),
	}
	for i, a := range dto.QuickActions {
		d.QuickActions[i] = QuickAction(a)
	}
	for i, a := range dto.RecentActivity {
		d.RecentActivity[i] = RecentActivity(a)
	}
	return d
}

// ToDTO converts Data into its wire shape.
func ToDTO(d Data) DTO {
	dto := DTO{
		Stats:          StatsDTO(d.Stats),
		QuickActions:   make([]QuickActionDTO, len(d.QuickActions)),
		RecentActivity: make([]RecentActivityDTO, len(d.RecentActivity)),
	}
	for i, a := range d.QuickActions {
		dto.QuickActions[i] = QuickActionDTO(a)
	}
	for i, a := range d.RecentActivity {
		dto.RecentActivity[i] = RecentActivityDTO(a)
	}
	return dto
}
