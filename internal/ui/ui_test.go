package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLines(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := New(&out, &errOut, false)
	c.Saved("contracts/X.cfg", "CONTRACT_TYPE", "X")
	c.Unchanged("groups/G.cfg", "CONTRACT_GROUP", "G")
	c.Empty("empty.cfg")
	c.Warn("reading %s: %v", "bad.cfg", "permission denied")

	want := strings.Join([]string{
		`Saved: contracts/X.cfg (CONTRACT_TYPE, name="X")`,
		`Unchanged: groups/G.cfg (CONTRACT_GROUP, name="G")`,
		`(no blocks found in empty.cfg)`,
		``,
	}, "\n")
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
	if errOut.String() != "Warning: reading bad.cfg: permission denied\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestConsoleQuiet(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	c := New(&out, &errOut, true)
	c.Saved("contracts/X.cfg", "CONTRACT_TYPE", "X")
	c.Unchanged("contracts/X.cfg", "CONTRACT_TYPE", "X")
	c.Empty("empty.cfg")
	c.Warn("still shown")

	if out.Len() != 0 {
		t.Errorf("quiet console wrote %q", out.String())
	}
	if !strings.Contains(errOut.String(), "still shown") {
		t.Error("warnings must not be suppressed")
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	New(&out, &out, true).Summary(Stats{
		ContractsDir: "/w/contracts",
		GroupsDir:    "/w/groups",
		Manifest:     "/w/index.json",
		Files:        3,
		Contracts:    2,
		Groups:       1,
		Written:      3,
		Warnings:     1,
	})

	for _, want := range []string{
		"Done.",
		"Contracts in: /w/contracts",
		"Groups in: /w/groups",
		"Manifest saved to: /w/index.json",
		"3 file(s) scanned, 2 contract(s), 1 group(s), 3 written, 1 warning(s)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}
}
