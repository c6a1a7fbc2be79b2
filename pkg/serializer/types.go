// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer writes diagnostic results to stdout or a file in
// JSON, YAML, or table format.
package serializer

import "context"

// Serializer is an interface for serializing diagnostic data.
//
// The context parameter is provided for cancellation and timeouts; file
// and stdout writes do not actively use it.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
