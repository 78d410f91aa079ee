// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/avdva/cexp"

	"github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

const generatedHeader = "Code generated by expgen. DO NOT EDIT."

var (
	errNoConstants = errors.New("no constants given")
	errInfinite    = errors.New("result overflows to +Inf")
	errChanged     = errors.New("file has changed")
)

// constant is a single Name=arg pair from the command line.
type constant struct {
	name string
	arg  string
}

// config holds everything needed to render one output file.
type config struct {
	pkg       string
	output    string
	typeName  string
	constants []constant
}

func parseConstants(defs []string) ([]constant, error) {
	if len(defs) == 0 {
		return nil, errNoConstants
	}
	seen := make(map[string]struct{}, len(defs))
	result := make([]constant, 0, len(defs))
	for _, def := range defs {
		name, arg, ok := strings.Cut(def, "=")
		name, arg = strings.TrimSpace(name), strings.TrimSpace(arg)
		if !ok || len(arg) == 0 {
			return nil, fmt.Errorf("bad constant %q: expected Name=value", def)
		}
		if !token.IsIdentifier(name) || name == "_" {
			return nil, fmt.Errorf("bad constant %q: %q is not a valid identifier", def, name)
		}
		if _, found := seen[name]; found {
			return nil, fmt.Errorf("duplicate constant %q", name)
		}
		seen[name] = struct{}{}
		result = append(result, constant{name: name, arg: arg})
	}
	return result, nil
}

// evaluate parses arg as F and returns exp(arg) formatted as the shortest literal
// that reads back to the same F value.
func evaluate(typeName, arg string) (string, error) {
	switch typeName {
	case "float32":
		return evaluateFloat[float32](arg, 32)
	case "float64":
		return evaluateFloat[float64](arg, 64)
	default:
		return "", fmt.Errorf("unsupported type %q", typeName)
	}
}

func evaluateFloat[F constraints.Float](arg string, bitSize int) (string, error) {
	x, err := strconv.ParseFloat(arg, bitSize)
	if err != nil {
		return "", fmt.Errorf("bad argument: %w", err)
	}
	v := cexp.Exp(F(x))
	if math.IsInf(float64(v), 1) {
		return "", fmt.Errorf("exp(%s): %w", arg, errInfinite)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize), nil
}

func generate(cfg config, log zerolog.Logger) (*jen.File, error) {
	if !token.IsIdentifier(cfg.pkg) {
		return nil, fmt.Errorf("bad package name %q", cfg.pkg)
	}
	defs := make([]jen.Code, 0, len(cfg.constants)*2)
	for _, c := range cfg.constants {
		lit, err := evaluate(cfg.typeName, c.arg)
		if err != nil {
			return nil, fmt.Errorf("constant %s: %w", c.name, err)
		}
		log.Debug().Str("name", c.name).Str("arg", c.arg).Str("value", lit).Msg("evaluated")
		defs = append(defs,
			jen.Comment(fmt.Sprintf("%s is exp(%s).", c.name, c.arg)),
			jen.Id(c.name).Id(cfg.typeName).Op("=").Id(lit),
		)
	}
	file := jen.NewFile(cfg.pkg)
	file.HeaderComment(generatedHeader)
	file.Const().Defs(defs...)
	return file, nil
}

// verifyFileOnDisk compares the rendered file against the one at path.
func verifyFileOnDisk(path string, file *jen.File) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("missing file on disk: %s (%w)", path, err)
	}
	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return fmt.Errorf("render error for '%s': %w", path, err)
	}
	if !bytes.Equal(existing, buf.Bytes()) {
		return fmt.Errorf("'%s': %w", path, errChanged)
	}
	return nil
}
