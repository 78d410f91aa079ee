// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandSaveAndVerify(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "decay_gen.go")
	args := []string{"-p", "decay", "-o", path, "-c", "HalfLife=-0.6931471805599453", "--const", "Growth=2.5"}

	logs, err := execute(args...)
	require.NoError(t, err)
	a.Contains(logs, "saved")
	f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ParseComments)
	require.NoError(t, err)
	a.Equal("decay", f.Name.Name)

	logs, err = execute(append(args, "--verify")...)
	a.NoError(err)
	a.Contains(logs, "file OK")

	_, err = execute("-p", "decay", "-o", path, "-c", "HalfLife=-0.6931471805599453", "-c", "Growth=3", "--verify")
	a.ErrorIs(err, errChanged)

	_, err = execute("-p", "decay", "-o", filepath.Join(t.TempDir(), "missing.go"), "-c", "A=1", "--verify")
	a.Error(err)
}

func TestCommandFloat32(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "e_gen.go")
	_, err := execute("-p", "p", "-o", path, "-t", "float32", "-c", "E=1", "--log-level", "debug")
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), path, nil, 0)
	a.NoError(err)
}

func TestCommandErrors(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.go")
	_, levelErr := zerolog.ParseLevel("bogus")
	require.Error(t, levelErr)

	tests := []struct {
		args []string
		err  string
	}{
		{[]string{"-o", out, "-c", "A=1"}, `"package"`},
		{[]string{"-p", "p", "-c", "A=1"}, `"output"`},
		{[]string{"-p", "p", "-o", out, "-c", "A=1", "--log-level", "bogus"}, levelErr.Error()},
		{[]string{"-p", "p", "-o", out}, errNoConstants.Error()},
		{[]string{"-p", "p", "-o", out, "-c", "A=1000"}, "constant A: exp(1000): result overflows to +Inf"},
		{[]string{"-p", "p", "-o", out, "-t", "int", "-c", "A=1"}, `constant A: unsupported type "int"`},
		{[]string{"-p", "p", "-o", out, "-c", "A=1", "extra"}, "extra"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := execute(test.args...)
			a.ErrorContains(err, test.err)
		})
	}
	a.NoFileExists(out)
}
