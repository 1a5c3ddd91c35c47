package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/noticegen/pkg/errors"
	"github.com/matzehuels/noticegen/pkg/license"
	"github.com/matzehuels/noticegen/pkg/observability"
)

const npmInput = `{
  "zeta@1.0.0": {"licenses": "MIT", "publisher": "Zed", "email": "z@example.com"},
  "@scope/alpha@2.1.0": {"licenses": ["MIT", "Apache-2.0"], "repository": "https://example.com/alpha"},
  "gpl-thing@0.3.0": {"licenses": "GPL-3.0"}
}`

const cargoInput = `[{"name": "pkg", "version": "1.0.0", "authors": "A", "license": "MIT"}]`

func fixture(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func quietRunner() *Runner {
	return NewRunner(log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func TestExecute_EndToEnd(t *testing.T) {
	dir := fixture(t, map[string]string{
		"tpl.txt":       "{name} {version} {license}",
		"licenses.json": cargoInput,
	})
	opts := Options{
		TemplateFile: filepath.Join(dir, "tpl.txt"),
		InputFile:    filepath.Join(dir, "licenses.json"),
	}

	r := quietRunner()
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Text != "pkg 1.0.0 MIT\n" {
		t.Errorf("Text = %q, want %q", result.Text, "pkg 1.0.0 MIT\n")
	}

	var stdout bytes.Buffer
	if err := r.Write(result, opts, &stdout); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if stdout.String() != "pkg 1.0.0 MIT\n\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "pkg 1.0.0 MIT\n\n")
	}
}

func TestExecute_HeaderFooterFilterSort(t *testing.T) {
	tpl := "THIRD PARTY NOTICES\n\n- {name}@{version} ({license}) {authors}\nEND\n"
	dir := fixture(t, map[string]string{
		"tpl.txt":       tpl,
		"licenses.json": npmInput,
	})
	out := filepath.Join(dir, "NOTICE")
	opts := Options{
		TemplateFile:       filepath.Join(dir, "tpl.txt"),
		InputFile:          filepath.Join(dir, "licenses.json"),
		OutputFile:         out,
		HeaderLines:        2,
		FooterLines:        1,
		MatchLicense:       "GPL",
		MatchLicenseInvert: true,
		EscapeAuthors:      true,
	}

	r := quietRunner()
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Shape != license.ShapeNPM {
		t.Errorf("Shape = %v, want %v", result.Shape, license.ShapeNPM)
	}
	if result.Stats.Loaded != 3 || result.Stats.Selected != 2 {
		t.Errorf("Stats = %+v, want 3 loaded / 2 selected", result.Stats)
	}

	want := "THIRD PARTY NOTICES\n\n" +
		"- @scope/alpha@2.1.0 (MIT,Apache-2.0) \n" +
		"- zeta@1.0.0 (MIT) Zed &lt;z@example.com&gt;\n" +
		"END"
	if diff := cmp.Diff(want, result.Text); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}

	if err := r.Write(result, opts, &bytes.Buffer{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestExecute_Errors(t *testing.T) {
	dir := fixture(t, map[string]string{
		"tpl.txt":   "a\nb\n",
		"good.json": cargoInput,
		"bad.json":  `{"broken": true`,
	})
	tpl := filepath.Join(dir, "tpl.txt")
	good := filepath.Join(dir, "good.json")

	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"missing template", Options{InputFile: good}, errs.ErrCodeMissingArgument},
		{"missing input", Options{TemplateFile: tpl}, errs.ErrCodeMissingArgument},
		{"unreadable template", Options{TemplateFile: filepath.Join(dir, "nope"), InputFile: good}, errs.ErrCodeFileRead},
		{"unreadable input", Options{TemplateFile: tpl, InputFile: filepath.Join(dir, "nope")}, errs.ErrCodeFileRead},
		{"unparseable input", Options{TemplateFile: tpl, InputFile: filepath.Join(dir, "bad.json")}, errs.ErrCodeFormatParse},
		{"bad name pattern", Options{TemplateFile: tpl, InputFile: good, MatchName: "(["}, errs.ErrCodeInvalidPattern},
		{"bad license pattern", Options{TemplateFile: tpl, InputFile: good, MatchLicense: "*"}, errs.ErrCodeInvalidPattern},
		{"line overflow", Options{TemplateFile: tpl, InputFile: good, HeaderLines: 2, FooterLines: 1}, errs.ErrCodeLineRange},
		{"negative lines", Options{TemplateFile: tpl, InputFile: good, HeaderLines: -1}, errs.ErrCodeLineRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quietRunner().Execute(context.Background(), tt.opts)
			if !errs.Is(err, tt.code) {
				t.Errorf("Execute() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestWrite_Unwritable(t *testing.T) {
	opts := Options{OutputFile: filepath.Join(t.TempDir(), "no", "such", "dir", "NOTICE")}
	err := quietRunner().Write(&Result{Text: "x"}, opts, &bytes.Buffer{})
	if !errs.Is(err, errs.ErrCodeFileWrite) {
		t.Errorf("Write() error = %v, want FILE_WRITE", err)
	}
}

func TestOptions_SetDefaults(t *testing.T) {
	var o Options
	o.SetDefaults()
	if o.MatchName != DefaultPattern || o.MatchLicense != DefaultPattern {
		t.Errorf("patterns = %q / %q, want %q", o.MatchName, o.MatchLicense, DefaultPattern)
	}
	if o.Logger == nil {
		t.Error("Logger should be set")
	}
}

type countingHooks struct {
	observability.NoopPipelineHooks
	loaded, kept, total, bodies int
	shape                       string
}

func (h *countingHooks) OnLoadComplete(_ context.Context, _, shape string, n int, _ time.Duration, _ error) {
	h.shape, h.loaded = shape, n
}

func (h *countingHooks) OnSelectComplete(_ context.Context, kept, total int, _ time.Duration, _ error) {
	h.kept, h.total = kept, total
}

func (h *countingHooks) OnRenderComplete(_ context.Context, bodies, _ int, _ time.Duration, _ error) {
	h.bodies = bodies
}

func TestExecute_Hooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	dir := fixture(t, map[string]string{"tpl.txt": "{name}", "licenses.json": npmInput})
	_, err := quietRunner().Execute(context.Background(), Options{
		TemplateFile: filepath.Join(dir, "tpl.txt"),
		InputFile:    filepath.Join(dir, "licenses.json"),
		MatchName:    "^z",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if hooks.shape != license.ShapeNPM.String() || hooks.loaded != 3 {
		t.Errorf("load hook got shape=%q loaded=%d", hooks.shape, hooks.loaded)
	}
	if hooks.kept != 1 || hooks.total != 3 || hooks.bodies != 1 {
		t.Errorf("hooks = %+v, want kept=1 total=3 bodies=1", hooks)
	}
}
