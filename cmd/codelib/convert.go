package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/nrtyler/codelib"
	"github.com/nrtyler/codelib/bson"
	"github.com/nrtyler/codelib/fsx"
	"github.com/nrtyler/codelib/json"
	"github.com/nrtyler/codelib/msgpack"
	"github.com/nrtyler/codelib/yaml"
	"github.com/spf13/cobra"
)

var errXMLDocument = errors.New("xml cannot hold a free-form document; use json, yaml, msgpack or bson")

// codecFor maps a codec name or file extension to a codec.
func codecFor(name string) (codelib.Codec, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return json.New(json.WithIndent("  ")), nil
	case "yaml", "yml":
		return yaml.New(), nil
	case "msgpack", "mp":
		return msgpack.New(), nil
	case "bson":
		return bson.New(), nil
	case "xml":
		return nil, errXMLDocument
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func (a *app) newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Re-encode a document from one codec to another",
		Long: `Decode IN as a document and write it to OUT in another format.

--from defaults to IN's extension; --to defaults to OUT's extension and
then to CODELIB_CODEC. Supported: json, yaml, msgpack, bson.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			if err := fsx.ValidatePath(out); err != nil {
				return err
			}

			if from == "" {
				from = filepath.Ext(in)
			}
			if to == "" {
				to = filepath.Ext(out)
			}
			if to == "" {
				to = a.cfg.Codec
			}

			src, err := codecFor(from)
			if err != nil {
				return fmt.Errorf("input: %w", err)
			}
			dst, err := codecFor(to)
			if err != nil {
				return fmt.Errorf("output: %w", err)
			}

			data, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			var doc map[string]any
			if err := src.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("%w: %w", codelib.ErrUnmarshal, err)
			}
			encoded, err := dst.Marshal(doc)
			if err != nil {
				return fmt.Errorf("%w: %w", codelib.ErrMarshal, err)
			}
			if err := renameio.WriteFile(out, encoded, 0o644); err != nil {
				return err
			}

			a.logger.Info().
				Str("from", src.ContentType()).
				Str("to", dst.ContentType()).
				Int("bytes", len(encoded)).
				Msg("document converted")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input codec (default: IN's extension)")
	cmd.Flags().StringVar(&to, "to", "", "Output codec (default: OUT's extension, then CODELIB_CODEC)")
	return cmd
}
