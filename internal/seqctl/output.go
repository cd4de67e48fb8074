package seqctl

import (
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/kbukum/seqkit/errors"
)

// writeResult encodes v in the configured output format.
func writeResult(w io.Writer, out OutputConfig, v any) error {
	var (
		data []byte
		err  error
	)
	switch out.Format {
	case FormatYAML:
		if out.Indent > 0 {
			data, err = yaml.MarshalWithOptions(v, yaml.Indent(out.Indent))
		} else {
			data, err = yaml.Marshal(v)
		}
	case FormatJSON, "":
		if out.Indent > 0 {
			data, err = json.MarshalIndent(v, "", strings.Repeat(" ", out.Indent))
		} else {
			data, err = json.Marshal(v)
		}
	default:
		return errors.Unsupported("output format " + out.Format)
	}
	if err != nil {
		return errors.Internal(err)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return errors.Internal(err)
	}
	return nil
}
