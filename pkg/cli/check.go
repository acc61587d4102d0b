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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/canardleteer/proptest-semver/pkg/errors"
	"github.com/canardleteer/proptest-semver/pkg/sample"
	"github.com/canardleteer/proptest-semver/pkg/serializer"
)

func supportedClasses() string {
	classes := sample.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check values with the SemVer parser",
		ArgsUsage:             "VALUE...",
		Description: `Parses every VALUE as the given --kind and reports whether it is accepted.
Numeric components beyond 64 bits are reported as overflow.

The command fails when any value is not accepted.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   string(sample.ClassVersion),
				Usage:   fmt.Sprintf("what the values are (supported values: %s)", supportedClasses()),
			},
			outputFlag(),
			formatFlag(serializer.FormatYAML),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			class := sample.Class(strings.TrimSpace(cmd.String("kind")))
			values := cmd.Args().Slice()
			if len(values) == 0 {
				return errors.New(errors.ErrCodeInvalidRequest, "at least one value is required")
			}

			report, err := checkValues(class, values)
			if err != nil {
				return err
			}
			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}
			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d values not accepted", failed, len(values))
			}
			return nil
		},
	}
}

// checkValues verifies every value as class.
func checkValues(class sample.Class, values []string) (sample.CheckReport, error) {
	report, err := sample.Check(class, values)
	if errors.IsCode(err, errors.ErrCodeNotFound) {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid kind", err,
			map[string]any{"supported": supportedClasses()})
	}
	return report, err
}
