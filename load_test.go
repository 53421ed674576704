package strata_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/format"
)

func TestLoadFile_FormatByExtension(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"conf.yaml":  "port: 8080\n",
		"conf.yml":   "port: 8081\n",
		"conf.json":  `{"port": 8082}`,
		"conf.jsonc": "{\n  // local override\n  \"port\": 8083,\n}",
		"conf.toml":  "port = 8084\n",
	})
	r := newResolver()

	tests := []struct {
		file string
		want any
	}{
		{file: "conf.yaml", want: 8080},
		{file: "conf.yml", want: 8081},
		{file: "conf.json", want: int64(8082)},
		{file: "conf.jsonc", want: int64(8083)},
		{file: "conf.toml", want: int64(8084)},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			got, err := r.LoadFile(filepath.Join(dir, tc.file))
			require.NoError(t, err)
			assert.Equal(t, strata.RawMapping{"port": tc.want}, got)
		})
	}
}

func TestLoadFile_KeysLowerCased(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"conf.yaml": "Server:\n  PORT: 8080\n",
	})
	r := newResolver()

	got, err := r.LoadFile(filepath.Join(dir, "conf.yaml"))
	require.NoError(t, err)
	assert.Equal(t, strata.RawMapping{"server": strata.RawMapping{"port": 8080}}, got)
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	dir := writeFiles(t, map[string]string{"conf.ini": "[section]\nkey=1\n"})
	r := newResolver()

	_, err := r.LoadFile(filepath.Join(dir, "conf.ini"))
	assert.ErrorIs(t, err, strata.ErrUnsupportedFormat)
}

func TestLoadFile_RestrictedRegistry(t *testing.T) {
	// YAML support is an optional capability; without it a .yaml file
	// degrades to ErrUnsupportedFormat instead of crashing.
	dir := writeFiles(t, map[string]string{"conf.yaml": "port: 8080\n"})
	r := newResolver(strata.WithFormats(format.NewRegistry(format.JSON{})))

	_, err := r.LoadFile(filepath.Join(dir, "conf.yaml"))
	assert.ErrorIs(t, err, strata.ErrUnsupportedFormat)
}

func TestLoadFile_NonMappingRoot(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"list.json":   `[1, 2, 3]`,
		"scalar.yaml": "just a string\n",
	})
	r := newResolver()

	for _, file := range []string{"list.json", "scalar.yaml"} {
		_, err := r.LoadFile(filepath.Join(dir, file))
		assert.ErrorIs(t, err, strata.ErrInvalidRootShape, file)
	}
}

func TestLoadFile_EmptyDocumentIsEmptyMapping(t *testing.T) {
	dir := writeFiles(t, map[string]string{"empty.yaml": ""})
	r := newResolver()

	got, err := r.LoadFile(filepath.Join(dir, "empty.yaml"))
	require.NoError(t, err)
	assert.Equal(t, strata.RawMapping{}, got)
}

func TestLoadFile_ParseError(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.json": `{"unterminated": `})
	r := newResolver()

	_, err := r.LoadFile(filepath.Join(dir, "bad.json"))
	var perr *format.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Path, "bad.json")
}
