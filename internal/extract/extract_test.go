package extract

import (
	"strings"
	"testing"

	"github.com/phobologic/cfgextract/internal/model"
)

func TestBlocksSingle(t *testing.T) {
	t.Parallel()

	text := `// header
CONTRACT_TYPE
{
	name = First Orbit
	PARAMETER
	{
		type = Orbit
	}
}
trailing`

	blocks := All(text)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.Kind != model.ContractType {
		t.Errorf("kind = %q, want %q", b.Kind, model.ContractType)
	}
	if !strings.HasPrefix(b.Text, "CONTRACT_TYPE") || !strings.HasSuffix(b.Text, "}") {
		t.Errorf("unexpected block text:\n%s", b.Text)
	}
	if text[b.Start:b.End] != b.Text {
		t.Errorf("offsets [%d:%d] do not match block text", b.Start, b.End)
	}
	if strings.Contains(b.Text, "trailing") {
		t.Error("block should end at its closing brace")
	}
}

func TestBlocksKindsAndOrder(t *testing.T) {
	t.Parallel()

	text := `CONTRACT_GROUP { name = G } CONTRACT_TYPE{name = A} contract_type { name = B }`
	blocks := All(text)
	want := []model.Kind{model.ContractGroup, model.ContractType, model.ContractType}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(blocks))
	}
	for i, k := range want {
		if blocks[i].Kind != k {
			t.Errorf("block %d: kind = %q, want %q", i, blocks[i].Kind, k)
		}
	}
	if blocks[2].Text != "contract_type { name = B }" {
		t.Errorf("lowercase keyword block: got %q", blocks[2].Text)
	}
}

func TestBlocksNestedKeywordNotSeparate(t *testing.T) {
	t.Parallel()

	text := `CONTRACT_GROUP
{
	name = Outer
	CONTRACT_TYPE { name = Inner }
}`
	blocks := All(text)
	if len(blocks) != 1 {
		t.Fatalf("expected only the outer block, got %d", len(blocks))
	}
	if blocks[0].Kind != model.ContractGroup {
		t.Errorf("kind = %q", blocks[0].Kind)
	}
}

func TestBlocksUnbalanced(t *testing.T) {
	t.Parallel()

	blocks := All("CONTRACT_TYPE {\n\tname = Broken\n\tPARAMETER {\n}\n")
	if len(blocks) != 0 {
		t.Fatalf("expected 0 blocks, got %d", len(blocks))
	}
}

func TestBlocksUnbalancedResumesAfterKeyword(t *testing.T) {
	t.Parallel()

	// The outer occurrence never closes; the inner one does.
	text := "CONTRACT_TYPE {\n CONTRACT_GROUP { name = G }\n"
	blocks := All(text)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Kind != model.ContractGroup {
		t.Errorf("kind = %q", blocks[0].Kind)
	}
}

func TestBlocksKeywordWithoutBrace(t *testing.T) {
	t.Parallel()

	if blocks := All("CONTRACT_TYPE = something\nCONTRACT_GROUP\n"); len(blocks) != 0 {
		t.Fatalf("expected 0 blocks, got %d", len(blocks))
	}
	if blocks := All(""); len(blocks) != 0 {
		t.Fatalf("expected 0 blocks for empty text, got %d", len(blocks))
	}
}

func TestBlocksStopEarly(t *testing.T) {
	t.Parallel()

	text := "CONTRACT_TYPE { a } CONTRACT_TYPE { b } CONTRACT_TYPE { c }"
	n := 0
	for range Blocks(text) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2 blocks, got %d", n)
	}
}

func TestBlocksBalanced(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"CONTRACT_TYPE { { } } } }",
		"CONTRACT_TYPE {{{}}} CONTRACT_GROUP { x { y } z }",
		"}} CONTRACT_GROUP { CONTRACT_GROUP { } ",
		"CONTRACT_TYPE {\n\tREQUIREMENT { }\n\tBEHAVIOUR { PARAMETER { } }\n}",
	}
	for _, in := range inputs {
		for b := range Blocks(in) {
			opens := strings.Count(b.Text, "{")
			closes := strings.Count(b.Text, "}")
			if opens == 0 || opens != closes {
				t.Errorf("%q: block %q has %d '{' and %d '}'", in, b.Text, opens, closes)
			}
		}
	}
}

func TestField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		field string
		want  string
		found bool
	}{
		{"double quoted", `CONTRACT_TYPE { name = "Rifle Mk 2" }`, "name", "Rifle Mk 2", true},
		{"single quoted", `CONTRACT_GROUP { name = 'Squad1' }`, "name", "Squad1", true},
		{"bare token", "CONTRACT_TYPE {\n\tname = First.Orbit:v1+x-y\n}", "name", "First.Orbit:v1+x-y", true},
		{"bare stops at space", "name = First Orbit", "name", "First", true},
		{"bare stops at brace", "name=Alpha}", "name", "Alpha", true},
		{"bare stops at comment", "name = Alpha// note", "name", "Alpha", true},
		{"case insensitive", "NAME = Loud", "name", "Loud", true},
		{"first occurrence", "group = A\nPARAMETER { group = B }", "group", "A", true},
		{"whole key", "displayName = Shown\nname = Real", "name", "Real", true},
		{"missing", "title = Something", "name", "", false},
		{"empty quotes", `name = ""`, "name", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Field(tt.block, tt.field)
			if ok != tt.found || got != tt.want {
				t.Errorf("Field(%q, %q) = %q, %v; want %q, %v", tt.block, tt.field, got, ok, tt.want, tt.found)
			}
		})
	}
}
