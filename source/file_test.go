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

//go:build !integration

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"rivaas.dev/humanize/codec"
)

type FileSourceTestSuite struct {
	suite.Suite
	dir string
}

func TestFileSourceTestSuite(t *testing.T) {
	suite.Run(t, new(FileSourceTestSuite))
}

func (s *FileSourceTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *FileSourceTestSuite) write(name, content string) string {
	p := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(p, []byte(content), 0o600))
	return p
}

func (s *FileSourceTestSuite) TestLoad_YAML() {
	p := s.write("service.yaml", "cache:\n  max_size: 64 MiB\n  ttl: 1h 30m\n")

	tree, err := NewFile(p, codec.YAMLCodec{}).Load(context.Background())
	s.Require().NoError(err)

	cache, ok := tree["cache"].(map[string]any)
	s.Require().True(ok)
	s.Equal("64 MiB", cache["max_size"])
	s.Equal("1h 30m", cache["ttl"])
}

func (s *FileSourceTestSuite) TestLoad_RereadsFile() {
	p := s.write("service.json", `{"ttl": "1m"}`)
	file := NewFile(p, codec.JSONCodec{})

	tree, err := file.Load(context.Background())
	s.Require().NoError(err)
	s.Equal("1m", tree["ttl"])

	s.write("service.json", `{"ttl": "2m"}`)
	tree, err = file.Load(context.Background())
	s.Require().NoError(err)
	s.Equal("2m", tree["ttl"])
}

func (s *FileSourceTestSuite) TestLoad_EmptyDocument() {
	p := s.write("empty.yaml", "")

	tree, err := NewFile(p, codec.YAMLCodec{}).Load(context.Background())
	s.Require().NoError(err)
	s.NotNil(tree)
	s.Empty(tree)
}

func (s *FileSourceTestSuite) TestLoad_Content() {
	file := NewFileContent([]byte("size = \"1 M\"\n"), codec.TOMLCodec{})
	s.Empty(file.Path())

	tree, err := file.Load(context.Background())
	s.Require().NoError(err)
	s.Equal(map[string]any{"size": "1 M"}, tree)
}

func (s *FileSourceTestSuite) TestLoad_MissingFile() {
	_, err := NewFile(filepath.Join(s.dir, "missing.json"), codec.JSONCodec{}).Load(context.Background())
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
	s.Contains(err.Error(), "failed to read file")
}

func (s *FileSourceTestSuite) TestLoad_DecodeError() {
	p := s.write("broken.json", `{"size":`)

	_, err := NewFile(p, codec.JSONCodec{}).Load(context.Background())
	s.ErrorContains(err, "failed to decode file")
}

func (s *FileSourceTestSuite) TestLoad_CanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileContent([]byte(`{}`), codec.JSONCodec{}).Load(ctx)
	s.ErrorIs(err, context.Canceled)
}
