package pkguid

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerate(t *testing.T) {
	gen := NewUUID()
	id := gen.Generate()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid uuid, got %q", id)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected version 7 uuid, got %d", parsed.Version())
	}
}

func TestNewSelectsGenerator(t *testing.T) {
	for _, kind := range []string{"", "uuid", " UUID "} {
		gen, err := New(kind)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		if _, ok := gen.(*UUID); !ok {
			t.Fatalf("New(%q): expected *UUID, got %T", kind, gen)
		}
	}

	gen, err := New("snowflake")
	if err != nil {
		t.Fatalf("New(snowflake): %v", err)
	}
	if _, ok := gen.(*Snowflake); !ok {
		t.Fatalf("expected *Snowflake, got %T", gen)
	}

	if _, err := New("sequence"); err == nil {
		t.Fatalf("expected error for unknown generator")
	}
}
