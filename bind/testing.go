// Copyright 2026 The Rivaas Authors
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

package bind

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// staticSource returns a fixed tree or error.
type staticSource struct {
	tree map[string]any
	err  error
}

func (s *staticSource) Load(context.Context) (map[string]any, error) {
	return s.tree, s.err
}

// TestSource returns a Source serving tree.
func TestSource(tree map[string]any) Source {
	return &staticSource{tree: tree}
}

// TestSourceWithError returns a Source whose Load fails with err.
func TestSourceWithError(err error) Source {
	return &staticSource{err: err}
}

// TestBinder creates a Binder with opts, failing the test on error.
func TestBinder(t *testing.T, opts ...Option) *Binder {
	t.Helper()
	b, err := New(opts...)
	require.NoError(t, err, "failed to create test binder")
	return b
}

// TestBinderLoaded creates a Binder over tree and loads it.
func TestBinderLoaded(t *testing.T, tree map[string]any, opts ...Option) *Binder {
	t.Helper()
	b := TestBinder(t, append([]Option{WithSource(TestSource(tree))}, opts...)...)
	require.NoError(t, b.Load(t.Context()), "failed to load test binder")
	return b
}

// TestFile writes content to a file named name in a temporary directory
// and returns its path.
func TestFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600), "failed to write test file")
	return path
}
