// internal/integration/integration_test.go
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"wfsim/internal/app"
	"wfsim/internal/genotypeapp"
	"wfsim/pkg/api"
)

type runner func([]string, *bytes.Buffer, *bytes.Buffer) int

func twoLocus(argv []string, out, errb *bytes.Buffer) int { return app.Run(argv, out, errb) }
func genotypes(argv []string, out, errb *bytes.Buffer) int {
	return genotypeapp.Run(argv, out, errb)
}

func mustRun(t *testing.T, run runner, argv ...string) string {
	t.Helper()
	var out, errb bytes.Buffer
	if code := run(argv, &out, &errb); code != 0 {
		t.Fatalf("%v: exit %d, err=%s", argv, code, errb.String())
	}
	return out.String()
}

func TestEndToEnd(t *testing.T) {
	out := mustRun(t, twoLocus, "--no-drift", "-u", "0", "-g", "10")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 12 {
		t.Fatalf("want header + 11 rows, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "generation\ta\tb\tab\thap_AB\thap_Ab\thap_aB\thap_ab" {
		t.Fatalf("header %q", lines[0])
	}
	for i, l := range lines[1:] {
		f := strings.Split(l, "\t")
		if len(f) != 8 || f[1] != "0.5" || f[2] != "0.5" || f[3] != "0.25" {
			t.Fatalf("row %d not flat: %q", i, l)
		}
	}
}

func TestSameSeedSameOutput(t *testing.T) {
	for name, run := range map[string]runner{"two-locus": twoLocus, "genotype": genotypes} {
		t.Run(name, func(t *testing.T) {
			a := mustRun(t, run, "--seed", "17", "-N", "20", "-g", "50", "-q")
			b := mustRun(t, run, "--seed", "17", "-N", "20", "-g", "50", "-q")
			if a != b {
				t.Fatalf("same seed, different output\n%s\n---\n%s", a, b)
			}
		})
	}
}

func TestJSONDocument(t *testing.T) {
	out := mustRun(t, twoLocus, "--seed", "3", "-g", "5", "-o", "json", "--sa", "0.1")
	var doc api.TwoLocusRunV1
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if _, err := uuid.Parse(doc.RunID); err != nil {
		t.Fatalf("run_id %q: %v", doc.RunID, err)
	}
	if doc.Model != api.ModelTwoLocus || doc.Seed != 3 || !doc.Drift {
		t.Fatalf("bad metadata: %+v", doc.RunV1)
	}
	n := len(doc.Series.Generation)
	if n != doc.Generations+1 || len(doc.Series.A) != n || len(doc.Series.HapNeither) != n {
		t.Fatalf("series lengths disagree: %+v", doc.Series)
	}
	if doc.Params.Selection != "marginal" || doc.Params.SA != 0.1 {
		t.Fatalf("params not echoed: %+v", doc.Params)
	}
}

func TestJSONLStream(t *testing.T) {
	out := mustRun(t, genotypes, "--no-drift", "-g", "7", "-o", "jsonl", "-s", "0.1")
	sc := bufio.NewScanner(strings.NewReader(out))
	var ids = map[string]bool{}
	n := 0
	for sc.Scan() {
		var s api.GenotypeSnapshotV1
		if err := json.Unmarshal(sc.Bytes(), &s); err != nil {
			t.Fatalf("line %d: %v", n, err)
		}
		if s.Generation != n {
			t.Fatalf("line %d has generation %d", n, s.Generation)
		}
		ids[s.RunID] = true
		n++
	}
	if n != 8 {
		t.Fatalf("want 8 lines, got %d", n)
	}
	if len(ids) != 1 {
		t.Fatalf("run_id should be shared by every line: %v", ids)
	}
}

func TestGenotypeFixedAtStart(t *testing.T) {
	out := mustRun(t, genotypes, "--a0", "1", "-s", "0", "-u", "0", "-N", "100", "--no-header", "-q")
	if strings.Count(out, "\n") != 1 || !strings.HasPrefix(out, "0\t1\t1\t0\t0") {
		t.Fatalf("want a single generation-0 row, got %q", out)
	}
}

func TestInvalidParameter(t *testing.T) {
	for _, argv := range [][]string{
		{"--a0", "-0.1"},
		{"-N", "0"},
		{"-u", "2"},
	} {
		var out, errb bytes.Buffer
		if code := app.Run(append(argv, "-q"), &out, &errb); code != 2 {
			t.Fatalf("%v: want exit 2, got %d (%s)", argv, code, errb.String())
		}
	}
}

func TestConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "run.yaml")
	cfg := "generations: 4\ndrift: false\ntwo_locus:\n  a0: 0.2\n  b0: 0.2\n"
	if err := os.WriteFile(fn, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	out := mustRun(t, twoLocus, "--config", fn, "--b0", "0.5", "-u", "0", "--no-header")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("config generations ignored: %q", out)
	}
	if !strings.HasPrefix(lines[0], "0\t0.2\t0.5\t") {
		t.Fatalf("flag should override file for b0 only: %q", lines[0])
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(bad, []byte("populaton_size: 10\n"), 0o644)
	var o, e bytes.Buffer
	if code := app.Run([]string{"--config", bad}, &o, &e); code != 2 {
		t.Fatalf("unknown config key should exit 2, got %d", code)
	}
}
