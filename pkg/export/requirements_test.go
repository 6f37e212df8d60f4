package export

import (
	"strings"
	"testing"

	"github.com/matzehuels/lockexport/pkg/lock"
)

func TestRenderRequirementsTxt(t *testing.T) {
	tests := []struct {
		name string
		pkgs []lock.Package
		opts Options
		want string
	}{
		{
			name: "pinned",
			pkgs: []lock.Package{{Name: "foo", Version: "1.2.3"}},
			opts: DefaultOptions(),
			want: "foo==1.2.3\n",
		},
		{
			name: "hashes",
			pkgs: []lock.Package{{Name: "foo", Version: "1.2.3", Hashes: []string{"aaa", "bbb"}}},
			opts: Options{WithHashes: true},
			want: "foo==1.2.3 \\\n    --hash=sha256:aaa \\\n    --hash=sha256:bbb\n",
		},
		{
			name: "hashes disabled",
			pkgs: []lock.Package{{Name: "foo", Version: "1.2.3", Hashes: []string{"aaa", "bbb"}}},
			opts: Options{WithHashes: false},
			want: "foo==1.2.3\n",
		},
		{
			name: "single hash",
			pkgs: []lock.Package{{Name: "foo", Version: "1.2.3", Hashes: []string{"aaa"}}},
			opts: Options{WithHashes: true},
			want: "foo==1.2.3 \\\n    --hash=sha256:aaa\n",
		},
		{
			name: "git",
			pkgs: []lock.Package{{
				Name:            "foo",
				Version:         "0.1.0",
				SourceType:      lock.SourceGit,
				SourceURL:       "https://x/y.git",
				SourceReference: "abcdef",
			}},
			opts: DefaultOptions(),
			want: "-e git+https://x/y.git@abcdef#egg=foo\n",
		},
		{
			name: "git without reference",
			pkgs: []lock.Package{{Name: "foo", SourceType: lock.SourceGit, SourceURL: "https://x/y.git"}},
			opts: DefaultOptions(),
			want: "-e git+https://x/y.git@#egg=foo\n",
		},
		{
			name: "editable directory",
			pkgs: []lock.Package{{Name: "pkg", SourceType: lock.SourceDirectory, SourceURL: "/local/pkg", Develop: true}},
			opts: DefaultOptions(),
			want: "-e /local/pkg\n",
		},
		{
			name: "directory",
			pkgs: []lock.Package{{Name: "pkg", SourceType: lock.SourceDirectory, SourceURL: "/local/pkg"}},
			opts: DefaultOptions(),
			want: "/local/pkg\n",
		},
		{
			name: "file",
			pkgs: []lock.Package{{Name: "pkg", SourceType: lock.SourceFile, SourceURL: "dist/pkg-1.0.tar.gz"}},
			opts: DefaultOptions(),
			want: "dist/pkg-1.0.tar.gz\n",
		},
		{
			name: "legacy index",
			pkgs: []lock.Package{{Name: "foo", Version: "1.0", SourceType: lock.SourceLegacy, SourceURL: "https://idx"}},
			opts: DefaultOptions(),
			want: "foo==1.0 \\\n    --index-url https://idx\n",
		},
		{
			name: "legacy without url",
			pkgs: []lock.Package{{Name: "foo", Version: "1.0", SourceType: lock.SourceLegacy}},
			opts: DefaultOptions(),
			want: "foo==1.0\n",
		},
		{
			name: "legacy with hashes",
			pkgs: []lock.Package{{
				Name:       "foo",
				Version:    "1.0",
				SourceType: lock.SourceLegacy,
				SourceURL:  "https://idx",
				Hashes:     []string{"aaa"},
			}},
			opts: DefaultOptions(),
			want: "foo==1.0 \\\n    --index-url https://idx \\\n    --hash=sha256:aaa\n",
		},
		{
			name: "git with hashes",
			pkgs: []lock.Package{{Name: "g", SourceType: lock.SourceGit, SourceURL: "u", SourceReference: "r", Hashes: []string{"h"}}},
			opts: Options{WithHashes: true},
			want: "-e git+u@r#egg=g \\\n    --hash=sha256:h\n",
		},
		{
			name: "git with hashes disabled",
			pkgs: []lock.Package{{Name: "g", SourceType: lock.SourceGit, SourceURL: "u", SourceReference: "r", Hashes: []string{"h"}}},
			opts: Options{WithHashes: false},
			want: "-e git+u@r#egg=g\n",
		},
		{
			name: "editable directory with hashes",
			pkgs: []lock.Package{{Name: "pkg", SourceType: lock.SourceDirectory, SourceURL: "/local/pkg", Develop: true, Hashes: []string{"h"}}},
			opts: Options{WithHashes: true},
			want: "-e /local/pkg \\\n    --hash=sha256:h\n",
		},
		{
			name: "file with hashes",
			pkgs: []lock.Package{{Name: "pkg", SourceType: lock.SourceFile, SourceURL: "dist/pkg-1.0.tar.gz", Hashes: []string{"h1", "h2"}}},
			opts: Options{WithHashes: true},
			want: "dist/pkg-1.0.tar.gz \\\n    --hash=sha256:h1 \\\n    --hash=sha256:h2\n",
		},
		{
			name: "empty",
			pkgs: nil,
			opts: DefaultOptions(),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderRequirementsTxt(tt.pkgs, tt.opts); got != tt.want {
				t.Errorf("RenderRequirementsTxt() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderRequirementsTxt_Sorted(t *testing.T) {
	pkgs := []lock.Package{
		{Name: "zope", Version: "1"},
		{Name: "Django", Version: "2"},
		{Name: "attrs", Version: "3"},
		{Name: "toolkit", SourceType: lock.SourceGit, SourceURL: "u", SourceReference: "r"},
	}

	got := RenderRequirementsTxt(pkgs, DefaultOptions())
	want := "Django==2\nattrs==3\n-e git+u@r#egg=toolkit\nzope==1\n"
	if got != want {
		t.Errorf("RenderRequirementsTxt() =\n%q\nwant\n%q", got, want)
	}

	if pkgs[0].Name != "zope" {
		t.Error("RenderRequirementsTxt reordered its input")
	}
}

func TestRenderRequirementsTxt_Deterministic(t *testing.T) {
	pkgs := []lock.Package{
		{Name: "b", Version: "1", Hashes: []string{"x", "y"}},
		{Name: "a", Version: "2", SourceType: lock.SourceLegacy, SourceURL: "https://idx"},
		{Name: "c", SourceType: lock.SourceDirectory, SourceURL: "./c", Develop: true},
	}
	reversed := []lock.Package{pkgs[2], pkgs[1], pkgs[0]}

	first := RenderRequirementsTxt(pkgs, DefaultOptions())
	second := RenderRequirementsTxt(pkgs, DefaultOptions())
	third := RenderRequirementsTxt(reversed, DefaultOptions())

	if first != second {
		t.Errorf("repeated render differs:\n%q\n%q", first, second)
	}
	if first != third {
		t.Errorf("render depends on input order:\n%q\n%q", first, third)
	}
}

func TestRenderRequirementsTxt_BlockTerminators(t *testing.T) {
	pkgs := []lock.Package{
		{Name: "a", Version: "1", Hashes: []string{"h1", "h2", "h3"}},
		{Name: "b", Version: "2"},
	}

	got := RenderRequirementsTxt(pkgs, DefaultOptions())
	if strings.HasPrefix(got, "\n") || strings.HasSuffix(got, "\n\n") {
		t.Errorf("unexpected blank lines in %q", got)
	}
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if strings.HasPrefix(line, "    --hash=sha256:h3") && strings.HasSuffix(line, "\\") {
			t.Errorf("last hash line has trailing continuation: %q", line)
		}
	}
	if !strings.HasSuffix(got, "--hash=sha256:h3\nb==2\n") {
		t.Errorf("blocks not separated by single newline: %q", got)
	}
}
