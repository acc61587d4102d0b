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

package defaults

import "time"

// Operator weights.
const (
	// OperatorDefaultWeight applies to each of the seven non-wildcard operators.
	OperatorDefaultWeight = 5

	// OperatorWildcardWeight applies to the wildcard operator. It is kept low
	// because wildcard comparators exercise little of a matcher.
	OperatorWildcardWeight = 1
)

// Full comparator shape weights.
const (
	// FullComparatorPlainWeight is the weight of "<op>MAJOR.MINOR.PATCH[-pre][+build]".
	FullComparatorPlainWeight = 7

	// FullComparatorWildcardMinorWeight is the weight of "<op>MAJOR.*.*".
	FullComparatorWildcardMinorWeight = 1

	// FullComparatorWildcardPatchWeight is the weight of "<op>MAJOR.MINOR.*".
	FullComparatorWildcardPatchWeight = 1
)

// Requirement shape weights.
const (
	// ComparatorVecWildcardWeight is the weight of the bare "*" requirement.
	ComparatorVecWildcardWeight = 1

	// ComparatorVecListWeight is the weight of a comparator list requirement.
	ComparatorVecListWeight = 14
)

// Probabilities of optional grammar elements.
const (
	// ProbabilityOfPreRelease is the default chance a version carries a pre-release.
	ProbabilityOfPreRelease = 0.5

	// ProbabilityOfBuildMetadata is the default chance a version carries build metadata.
	ProbabilityOfBuildMetadata = 0.5

	// PlainComparatorProbability is the chance a plain full comparator carries
	// a pre-release, and independently build metadata.
	PlainComparatorProbability = 0.8

	// ProbabilityOfSome is the default chance an optional requirement is present.
	ProbabilityOfSome = 0.5
)

// Limits.
const (
	// MaxComparatorsInVersionReq is the largest number of comparators the
	// requirement parser accepts in one requirement string.
	MaxComparatorsInVersionReq = 32

	// MaxLength is the default upper bound handed to sequence generators.
	MaxLength = MaxComparatorsInVersionReq

	// MaxLengthCeiling is the largest sequence bound a generator profile may set.
	MaxLengthCeiling = 1024

	// SampleCount is the default number of values the sampler produces.
	SampleCount = 10

	// SampleMaxCount caps a single sampler request.
	SampleMaxCount = 100000

	// SampleConcurrency bounds the number of values generated in parallel.
	SampleConcurrency = 8

	// SampleMaxSize is the gopter size bound for sampled values. It limits
	// repetition in regex-driven kinds and the length of generated lists.
	SampleMaxSize = 100
)

// Timeouts.
const (
	// SampleTimeout is the deadline for one sampler request.
	SampleTimeout = 30 * time.Second

	// ProfileFetchTimeout bounds the download of a remote generator profile.
	ProfileFetchTimeout = 10 * time.Second

	// ProfileConnectTimeout bounds connection setup for a remote profile.
	ProfileConnectTimeout = 3 * time.Second
)

// Server settings.
const (
	// ServerPort is the port the sampling API listens on unless PORT is set.
	ServerPort = 8080

	// ServerRateLimit is the sustained number of API requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the number of API requests allowed in a burst.
	ServerRateLimitBurst = 200

	// ServerMaxSampleCount caps the count of a single API sample request.
	ServerMaxSampleCount = 1000

	// ServerMaxCheckValues caps the number of values in a single API check request.
	ServerMaxCheckValues = 100

	// ServerReadTimeout bounds reading a whole request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout bounds writing a response. It exceeds SampleTimeout
	// so an interrupted batch can still report its error.
	ServerWriteTimeout = SampleTimeout + 15*time.Second

	// ServerIdleTimeout bounds keep-alive connections.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout bounds draining in-flight requests on shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
