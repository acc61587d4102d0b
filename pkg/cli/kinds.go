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
	"context"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/canardleteer/proptest-semver/pkg/sample"
	"github.com/canardleteer/proptest-semver/pkg/serializer"
)

type kindList []sample.Kind

func (k kindList) TableHeader() []string {
	return []string{"KIND", "CLASS", "VECTOR", "DESCRIPTION"}
}

func (k kindList) TableRows() [][]string {
	rows := make([][]string, 0, len(k))
	for _, kind := range k {
		rows = append(rows, []string{kind.Name, string(kind.Class), strconv.FormatBool(kind.Vector), kind.Description})
	}
	return rows
}

func kindsCmd() *cli.Command {
	return &cli.Command{
		Name:  "kinds",
		Usage: "List the generator kinds the sample command understands",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(serializer.FormatTable),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, kindList(sample.Kinds()))
		},
	}
}
