// Package cli implements the semvergen command.
//
// # Commands
//
// sample - draw a reproducible batch from one generator:
//
//	semvergen sample --kind version-req --count 20 --seed 7 [--config profile.yaml]
//
// Value i of the batch is drawn with seed --seed + i. Every value is rendered
// and checked by the SemVer parser; the batch summary counts the verdicts.
//
// check - run the parser over values:
//
//	semvergen check --kind requirement '>=1.2.3, <2.0.0-0'
//
// The command fails when any value is not accepted.
//
// kinds - list generator kinds:
//
//	semvergen kinds [--format json]
//
// serve - expose sample, check and kinds over HTTP (see pkg/api):
//
//	semvergen serve --port 8080 [--config profile.yaml]
//
// # Flags
//
//	--log-level     debug, info, warn, error (env LOG_LEVEL, default info)
//	--output, -o    output file path (default: stdout)
//	--format, -t    yaml, json, table
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, rejected values or sampling failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/canardleteer/proptest-semver/pkg/cli.version=1.0.0'"
package cli
