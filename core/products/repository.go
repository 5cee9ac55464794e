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

package products

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository stores products. Implementations return ErrNotFound for unknown
// IDs and ErrInvalid for data that fails validation.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, data CreateData) (Product, error)
	Update(ctx context.Context, id string, data UpdateData) (Product, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (Product, error)
}

// clock and ID source shared by the local repositories.
type ids struct {
	now   func() time.Time
	newID func() string
}

func defaultIDs() ids {
	return ids{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}
