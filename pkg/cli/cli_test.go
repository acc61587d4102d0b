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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/canardleteer/proptest-semver/pkg/sample"
)

// runRoot runs semvergen with args and returns what it wrote to stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = &bytes.Buffer{}
	err := root.Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
	return out.String(), err
}

func TestSampleCommand(t *testing.T) {
	out, err := runRoot(t, "sample", "--kind", "semver-version", "--count", "5", "--seed", "11", "--format", "json")
	require.NoError(t, err)

	var batch sample.Batch
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	assert.Equal(t, "semver-version", batch.Kind)
	assert.Equal(t, int64(11), batch.Seed)
	require.Len(t, batch.Samples, 5)
	assert.Equal(t, 5, batch.Summary[sample.VerdictAccepted])
}

func TestSampleCommandIsReproducible(t *testing.T) {
	args := []string{"sample", "-k", "full-comparator-vec", "-n", "4", "-s", "99"}

	first, err := runRoot(t, args...)
	require.NoError(t, err)
	second, err := runRoot(t, append(args, "--concurrency", "1")...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var batch sample.Batch
	require.NoError(t, yaml.Unmarshal([]byte(first), &batch))
	assert.Len(t, batch.Samples, 4)
}

func TestSampleCommandWithProfile(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("probabilities: {preRelease: 1, buildMetadata: 0}\n"), 0o600))
	output := filepath.Join(dir, "batch.json")

	_, err := runRoot(t, "sample", "--kind", "semver-version", "--count", "3",
		"--config", profile, "--format", "json", "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var batch sample.Batch
	require.NoError(t, json.Unmarshal(data, &batch))
	for _, s := range batch.Samples {
		assert.Contains(t, s.Value, "-")
		assert.NotContains(t, s.Value, "+")
	}
}

func TestSampleCommandErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"missing kind", []string{"sample"}, "kind"},
		{"unknown kind", []string{"sample", "--kind", "nope"}, "unknown generator kind"},
		{"bad format", []string{"sample", "--kind", "op", "--format", "xml"}, "unknown output format"},
		{"zero count", []string{"sample", "--kind", "op", "--count", "0"}, "count out of range"},
		{"missing profile", []string{"sample", "--kind", "op", "--config", "/does/not/exist.yaml"}, "failed to load profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := runRoot(t, "check", "--format", "json", "1.2.3", "1.2.3-rc.1+build.5")
	require.NoError(t, err)

	var results sample.CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, sample.VerdictAccepted, r.Verdict, r.Reason)
		assert.Equal(t, sample.ClassVersion, r.Class)
	}
}

func TestCheckCommandReportsFailures(t *testing.T) {
	out, err := runRoot(t, "check", "--format", "table", "1.2.3", "01.2.3", "18446744073709551616.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 values not accepted")

	assert.Contains(t, out, "VERDICT")
	assert.Contains(t, out, string(sample.VerdictRejected))
	assert.Contains(t, out, string(sample.VerdictOverflow))
}

func TestCheckCommandRequirementLimit(t *testing.T) {
	at := strings.TrimSuffix(strings.Repeat(">=1.0.0,", 32), ",")
	above := at + ",<2.0.0"

	_, err := runRoot(t, "check", "--kind", "requirement", at)
	require.NoError(t, err)

	out, err := runRoot(t, "check", "--kind", "requirement", "--format", "json", above)
	require.Error(t, err)
	var results sample.CheckReport
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, sample.VerdictRejected, results[0].Verdict)
	assert.Contains(t, results[0].Reason, "excessive number of version comparators")
}

func TestCheckCommandErrors(t *testing.T) {
	_, err := runRoot(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one value")

	_, err = runRoot(t, "check", "--kind", "nonsense", "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid kind")
}

func TestKindsCommand(t *testing.T) {
	out, err := runRoot(t, "kinds")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "KIND"), out)
	for _, k := range sample.Kinds() {
		assert.Contains(t, out, k.Name)
	}

	out, err = runRoot(t, "kinds", "--format", "json")
	require.NoError(t, err)
	var kinds []sample.Kind
	require.NoError(t, json.Unmarshal([]byte(out), &kinds))
	assert.Len(t, kinds, len(sample.Kinds()))
}

func TestServeCommandBadProfile(t *testing.T) {
	_, err := runRoot(t, "serve", "--config", "/does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load profile")
}

func TestServeCommandStopsWithContext(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	root := newRootCmd()
	root.Writer = &bytes.Buffer{}
	root.ErrWriter = &bytes.Buffer{}
	err = root.Run(ctx, []string{name, "--log-level", "error", "serve",
		"--address", "127.0.0.1", "--port", strconv.Itoa(port)})
	assert.NoError(t, err)
}
