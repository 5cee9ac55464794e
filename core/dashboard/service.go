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
	"time"

	"go.uber.org/zap"
)

// LoadFailedMessage is shown when the dashboard cannot be loaded.
const LoadFailedMessage = "Failed to load dashboard data"

// Service loads the dashboard for the pages and the API.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger.Named("dashboard")}
}

func (s *Service) Load(ctx context.Context) (Data, error) {
	start := time.Now()
	d, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn(LoadFailedMessage, zap.Error(err))
		return Data{}, err
	}
	s.logger.Debug("dashboard loaded", zap.Duration("took", time.Since(start)))
	return d, nil
}

// Invalidate drops cached data when the repository caches.
func (s *Service) Invalidate() {
	if c, ok := s.repo.(interface{ Invalidate() }); ok {
		c.Invalidate()
	}
}
