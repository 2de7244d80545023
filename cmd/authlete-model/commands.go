package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/authlete/authlete-go-model/catalog"
	"github.com/authlete/authlete-go-model/codec"
	"github.com/authlete/authlete-go-model/model"
	"github.com/authlete/authlete-go-model/openapi"
	"github.com/urfave/cli/v2"
)

func typeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Required: true,
		EnvVars:  []string{"AUTHLETE_MODEL_TYPE"},
		Usage:    "model type name, e.g. Service or service_list_response",
	}
}

func fromFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "from",
		EnvVars: []string{"AUTHLETE_MODEL_FROM"},
		Usage:   "input format (json, jsonc, yaml, cbor); inferred from the file name when empty",
	}
}

func convertCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Parse a payload as a model type and re-encode it with canonical names",
		ArgsUsage: "[file|-]",
		Flags: []cli.Flag{
			typeFlag(),
			fromFlag(),
			&cli.StringFlag{
				Name:    "to",
				Value:   string(codec.JSON),
				EnvVars: []string{"AUTHLETE_MODEL_TO"},
			},
			&cli.BoolFlag{
				Name:    "canonical",
				EnvVars: []string{"AUTHLETE_MODEL_CANONICAL"},
			},
			&cli.BoolFlag{
				Name:    "indent",
				EnvVars: []string{"AUTHLETE_MODEL_INDENT"},
			},
		},
		Action: func(cmd *cli.Context) error {
			m, err := loadModel(cmd, logger)
			if err != nil {
				return err
			}
			to, err := codec.ParseFormat(cmd.String("to"))
			if err != nil {
				return err
			}
			out, err := codec.Encode(to, m, codec.EncodeOptions{
				Indent:    cmd.Bool("indent"),
				Canonical: cmd.Bool("canonical"),
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd.App.Writer, out, to)
		},
	}
}

func checkCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Report attributes whose values do not match their declared kinds",
		ArgsUsage: "[file|-]",
		Flags: []cli.Flag{
			typeFlag(),
			fromFlag(),
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				EnvVars: []string{"AUTHLETE_MODEL_RECURSIVE"},
			},
		},
		Action: func(cmd *cli.Context) error {
			m, err := loadModel(cmd, logger)
			if err != nil {
				return err
			}
			var opts []model.CheckOption
			if cmd.Bool("recursive") {
				opts = append(opts, model.WithRecursive())
			}
			if err := model.RecordOf(m).Check(opts...); err != nil {
				var mismatch *model.MismatchError
				if errors.As(err, &mismatch) {
					for _, mm := range mismatch.Mismatches {
						logger.Debug("mismatch", "path", mm.Path, "kind", mm.Kind.String())
					}
				}
				return err
			}
			fmt.Fprintln(cmd.App.Writer, "ok")
			return nil
		},
	}
}

func describeCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "describe",
		Usage: "Print the OpenAPI schemas of the model types",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "type",
				Aliases: []string{"t"},
				EnvVars: []string{"AUTHLETE_MODEL_TYPE"},
				Usage:   "limit the output to these types and the types they reference",
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   string(codec.YAML),
				EnvVars: []string{"AUTHLETE_MODEL_FORMAT"},
			},
			&cli.StringFlag{
				Name:  "title",
				Value: "Authlete models",
			},
		},
		Action: func(cmd *cli.Context) error {
			var types []catalog.Type
			for _, name := range cmd.StringSlice("type") {
				t, err := lookupType(name)
				if err != nil {
					return err
				}
				types = append(types, t)
			}
			format, err := codec.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}
			doc := openapi.Document(cmd.String("title"), Version, types...)
			logger.Debug("describing", "schemas", len(doc.Components.Schemas))

			data, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("encoding OpenAPI document: %w", err)
			}
			if format == codec.JSON || format == codec.JSONC {
				out, err := codec.EncodeJSON(json.RawMessage(data), true)
				if err != nil {
					return err
				}
				return writeOutput(cmd.App.Writer, out, format)
			}
			tree, err := codec.DecodeJSON(data)
			if err != nil {
				return err
			}
			out, err := codec.Encode(format, tree, codec.EncodeOptions{})
			if err != nil {
				return err
			}
			return writeOutput(cmd.App.Writer, out, format)
		},
	}
}

func typesCommand() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List the model types",
		Action: func(cmd *cli.Context) error {
			for _, t := range catalog.Types() {
				fmt.Fprintf(cmd.App.Writer, "%s\t%d\n", t.Name, t.Schema.Len())
			}
			return nil
		},
	}
}

func lookupType(name string) (catalog.Type, error) {
	t, ok := catalog.Lookup(name)
	if !ok {
		return catalog.Type{}, fmt.Errorf("unknown model type %q", name)
	}
	return t, nil
}

// loadModel reads the command's input and parses it as the --type model.
func loadModel(cmd *cli.Context, logger *slog.Logger) (model.Model, error) {
	t, err := lookupType(cmd.String("type"))
	if err != nil {
		return nil, err
	}
	path := cmd.Args().First()
	format, err := inputFormat(cmd.String("from"), path)
	if err != nil {
		return nil, err
	}
	data, err := readInput(cmd.App.Reader, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoding input", "type", t.Name, "format", string(format), "bytes", len(data))

	tree, err := codec.Decode(format, data)
	if err != nil {
		return nil, err
	}
	m := t.Parse(tree)
	if m == nil {
		return nil, fmt.Errorf("input is not an object, cannot parse as %s", t.Name)
	}
	return m, nil
}

func inputFormat(from, path string) (codec.Format, error) {
	if from != "" {
		return codec.ParseFormat(from)
	}
	if path == "" || path == "-" {
		return codec.JSON, nil
	}
	return codec.FormatFromPath(path)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// writeOutput terminates text output with a newline.
func writeOutput(w io.Writer, out []byte, f codec.Format) error {
	if _, err := w.Write(out); err != nil {
		return err
	}
	if f == codec.CBOR || (len(out) > 0 && out[len(out)-1] == '\n') {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
