package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/mmrzaf/uerr/internal/config"
	"github.com/mmrzaf/uerr/internal/gitinfo"
)

func TestBuildBlockOrdering(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Help = []string{"standing tip"}

	e, _ := buildBlock(cfg, "boom", []string{"r1", "r2"}, []string{"t1"}, false, "")

	if e.Message() != "boom" {
		t.Fatalf("message=%q", e.Message())
	}
	if want := []string{"r1", "r2"}; !reflect.DeepEqual(e.Reasons(), want) {
		t.Fatalf("reasons=%v", e.Reasons())
	}
	// Flag tips first, standing config tips after.
	if want := []string{"t1", "standing tip"}; !reflect.DeepEqual(e.Help(), want) {
		t.Fatalf("help=%v", e.Help())
	}
}

func TestBuildBlockPrefixResolution(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Prefix = "cfg: "

	if _, pfx := buildBlock(cfg, "m", nil, nil, false, ""); pfx != "cfg: " {
		t.Fatalf("pfx=%q want config prefix", pfx)
	}
	if _, pfx := buildBlock(cfg, "m", nil, nil, true, "flag: "); pfx != "flag: " {
		t.Fatalf("pfx=%q want flag prefix", pfx)
	}
	// An explicitly empty flag beats the config value.
	if _, pfx := buildBlock(cfg, "m", nil, nil, true, ""); pfx != "" {
		t.Fatalf("pfx=%q want empty", pfx)
	}
}

func TestBuildBlockRendersExpectedFormat(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	e, _ := buildBlock(cfg, "could not open file", []string{"No such file or directory"}, []string{"Does this file exist?"}, false, "")

	var buf bytes.Buffer
	e.Fprint(&buf, "prog: ")
	want := "prog: could not open file\n" +
		" - caused by: No such file or directory\n" +
		" + help: Does this file exist?\n"
	if got := buf.String(); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestDoctorReport(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Prefix = "p: "
	cfg.Check.Require = []string{"a", "b"}

	out := doctorReport(".uerr.yaml", cfg, "/repo", gitinfo.Info{SHA: "abc1234", Branch: "main"}, nil)
	for _, want := range []string{
		"uerr doctor",
		"config_path: .uerr.yaml",
		`prefix: "p: "`,
		"default_code: 1",
		"check_root: /repo",
		"check: use_gitignore=true require=2 ignore=0",
		"git: available=true sha=abc1234 branch=main",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}

	out = doctorReport(".uerr.yaml", cfg, "/repo", gitinfo.Info{}, errors.New("no repo"))
	if !strings.Contains(out, "git: available=false sha=(unavailable) branch=(unavailable)") {
		t.Fatalf("unavailable git not reported:\n%s", out)
	}
}
