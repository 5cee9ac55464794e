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

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats are the headline metrics of the business.
type Stats struct {
	Visits         int
	VisitsChange   string
	ActiveProducts int
	NewMessages    int
	MessagesChange string
	ActiveServices int
}

// QuickAction is a shortcut card linking to another section of the panel.
type QuickAction struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	Route       string
}

// RecentActivity is one entry of the activity feed.
type RecentActivity struct {
	ID    int
	Title string
	Time  string
	Icon  string
}

// Data is everything the dashboard page shows.
type Data struct {
	Stats          Stats
	QuickActions   []QuickAction
	RecentActivity []RecentActivity
}

// Repository loads dashboard data.
type Repository interface {
	Load(ctx context.Context) (Data, error)
}

var printer = message.NewPrinter(language.MustParse("es-CL"))

// FormatCount renders a count with es-CL digit grouping.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
