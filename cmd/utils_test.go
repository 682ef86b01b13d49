package cmd

import (
	"reflect"
	"testing"
)

func TestEnumValueSet(t *testing.T) {
	e := NewEnumValue("Release", map[string]string{
		"Debug":   "",
		"Release": "",
	})

	if e.Value() != "Release" {
		t.Errorf("wrong default: %q", e.Value())
	}
	if err := e.Set("Debug"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if e.Value() != "Debug" {
		t.Errorf("value not updated: %q", e.Value())
	}
	if err := e.Set("Fastest"); err == nil {
		t.Error("expected error for value outside allowed set")
	}
	if e.Value() != "Debug" {
		t.Errorf("rejected Set must not change the value: %q", e.Value())
	}
}

func TestEnumValueEmptyDefault(t *testing.T) {
	e := NewEnumValue("", map[string]string{"x86": "", "armv8": ""})
	if e.Value() != "" {
		t.Errorf("empty default should mean unset, got %q", e.Value())
	}
}

func TestEnumValueBadDefaultPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for default outside allowed set")
		}
	}()
	NewEnumValue("mips", map[string]string{"x86": ""})
}

func TestEnumValueAllowedKeysSorted(t *testing.T) {
	e := NewEnumValue("", map[string]string{"windows": "", "android": "", "qnx": "", "linux": ""})
	want := []string{"android", "linux", "qnx", "windows"}
	if got := e.AllowedKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("keys not sorted:\n got %q\nwant %q", got, want)
	}
}
