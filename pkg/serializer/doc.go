// Package serializer encodes sample batches and decodes generator profiles.
//
// # Formats
//
// JSON and YAML are supported in both directions. The table format is
// write-only: values implementing Tabular are rendered as column tables,
// anything else is flattened into sorted FIELD / VALUE rows.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, batch); err != nil {
//	    return err
//	}
//
// NewFileWriterOrStdout falls back to stdout when path is empty or cannot be
// created.
//
// # Reading
//
//	r, err := serializer.NewFileReaderAuto(ctx, "profile.yaml")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	err = r.Strict().Deserialize(&cfg)
//
// Paths beginning with http:// or https:// are fetched with HttpReader,
// bounded by defaults.ProfileFetchTimeout and HttpReaderMaxBodyBytes.
//
// Format detection by extension:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - anything else → JSON
//
// # HTTP responses
//
// RespondJSON encodes a value before writing any header, so an encoding
// failure becomes a plain 500 instead of a truncated body.
package serializer
