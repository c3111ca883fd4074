package layout

import "testing"

func TestIsSharedLibrary(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"libfoo.so", true},
		{"libfoo.so.1", true},
		{"libfoo.so.1.2.3", true},
		{"ext.abi3.so", true},
		{"runner", false},
		{"README.md", false},
		{"libfoo.so.debug", false},
		{"notes.sol", false},
	}

	for _, tt := range tests {
		if got := IsSharedLibrary(tt.name); got != tt.want {
			t.Errorf("IsSharedLibrary(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsABITagged(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ext.abi3.so", true},
		{"helper-arm-linux-gnueabihf.so", true},
		{"libfoo.so", false},
		{"libfoo.so.1", false},
	}

	for _, tt := range tests {
		if got := IsABITagged(tt.name); got != tt.want {
			t.Errorf("IsABITagged(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
