// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/rjson"
	"github.com/creachadair/rjson/jpath"
	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0600); err != nil {
			t.Fatalf("Write %q: %v", name, err)
		}
	}
	return dir
}

func testConfig(queries ...string) config {
	cfg := config{
		BlockSize: 1 << 12,
		Width:     8,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, q := range queries {
		cfg.Queries = append(cfg.Queries, jpath.MustParse(q))
	}
	return cfg
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": `{"name":"alpha","n":[1,2,3],"ok":true}`,
		"b.json": `{"name":"a rather long name","n":[],"ok":null}`,
		"c.json": "{\n  // comment\n  \"name\": \"gamma\", \"n\": [4,],\n}",
	})
	files := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
	}

	t.Run("Keys", func(t *testing.T) {
		outs, err := run(testConfig(), files, 2)
		if err != nil {
			t.Fatalf("run: unexpected error: %v", err)
		}
		got := strings.ReplaceAll(string(outs[0]), dir+string(filepath.Separator), "")
		want := "a.json: \"name\": string\na.json: \"n\": object\na.json: \"ok\": boolean\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Output (-want, +got):\n%s", diff)
		}
	})

	t.Run("Queries", func(t *testing.T) {
		outs, err := run(testConfig("$.name", "$.n[-1]", "$.ok", "$.n"), files, 1)
		if err != nil {
			t.Fatalf("run: unexpected error: %v", err)
		}
		var got []string
		for _, out := range outs {
			got = append(got, strings.ReplaceAll(string(out), dir+string(filepath.Separator), ""))
		}
		want := []string{
			`a.json: $.name = "alpha"
a.json: $.n[-1] = 3
a.json: $.ok = true
a.json: $.n = [array, 3 entries]
`,
			`b.json: $.name = "a rather"...
b.json: $.n[-1]: error: index -1 out of bounds (n=0)
b.json: $.ok = null
b.json: $.n = [array, 0 entries]
`,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Output (-want, +got):\n%s", diff)
		}
	})

	t.Run("HuJSON", func(t *testing.T) {
		c := filepath.Join(dir, "c.json")
		if _, err := run(testConfig(), []string{c}, 1); !errors.Is(err, rjson.ErrSyntax) {
			t.Errorf("run without -hujson: got %v, want %v", err, rjson.ErrSyntax)
		}
		cfg := testConfig("$.n[0]")
		cfg.HuJSON = true
		outs, err := run(cfg, []string{c}, 1)
		if err != nil {
			t.Fatalf("run: unexpected error: %v", err)
		}
		if got, want := string(outs[0]), c+": $.n[0] = 4\n"; got != want {
			t.Errorf("Output: got %q, want %q", got, want)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		cfg := testConfig()
		cfg.BlockSize = 16
		_, err := run(cfg, append(files, filepath.Join(dir, "nonesuch.json")), 2)
		if !errors.Is(err, rjson.ErrOutOfMemory) {
			t.Errorf("run: got %v, want %v", err, rjson.ErrOutOfMemory)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("run: got %v, want %v", err, os.ErrNotExist)
		}

		cfg.BlockSize = 0
		if _, err := run(cfg, files, 1); err == nil {
			t.Error("run with zero block: got nil error")
		}
	})
}

func TestFormatValue(t *testing.T) {
	p, err := rjson.New(make([]byte, 1024))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.ParseString(`{"s":"tab\there","f":-2.5e2,"b":false,"z":null,"o":{"k":1}}`); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var got []string
	for _, k := range p.Root().Keys() {
		got = append(got, formatValue(k.Value(), 64))
	}
	want := []string{`"tab\there"`, "-250", "false", "null", "{object, 1 keys}"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Values (-want, +got):\n%s", diff)
	}
	if got := formatValue(nil, 10); got != "<invalid>" {
		t.Errorf("formatValue(nil): got %q", got)
	}
}
