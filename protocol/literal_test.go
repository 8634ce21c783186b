package protocol

import (
	"errors"
	"strconv"
	"testing"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    byte
		wantErr bool
		base    int
	}{
		{name: "hex", input: "0X1A", want: 26},
		{name: "decimal", input: "26", want: 26},
		{name: "hex zero", input: "0X0", want: 0},
		{name: "hex max", input: "0XFF", want: 255},
		{name: "decimal wraps", input: "256", want: 0},
		{name: "decimal wraps 300", input: "300", want: 44},
		{name: "hex wraps", input: "0X1FF", want: 0xFF},
		{name: "negative decimal masks", input: "-1", want: 0xFF},
		{name: "leading zeros", input: "007", want: 7},
		{name: "wider than 64 bits", input: "0X1000000000000000001", want: 0x01},
		{name: "huge decimal", input: "100000000000000000000000", want: 0x00},
		{name: "lowercase prefix is decimal", input: "0x1a", wantErr: true, base: 10},
		{name: "hex prefix only", input: "0X", wantErr: true, base: 16},
		{name: "bad hex digit", input: "0XG1", wantErr: true, base: 16},
		{name: "sign after hex prefix", input: "0X-1", wantErr: true, base: 16},
		{name: "plus after hex prefix", input: "0X+5", wantErr: true, base: 16},
		{name: "hex digits without prefix", input: "1A", wantErr: true, base: 10},
		{name: "empty", input: "", wantErr: true, base: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToByte(tt.input)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("ToByte(%q) error = %v, want *ParseError", tt.input, err)
				}
				if pe.Token != tt.input {
					t.Errorf("Token = %q, want %q", pe.Token, tt.input)
				}
				if pe.Base != tt.base {
					t.Errorf("Base = %d, want %d", pe.Base, tt.base)
				}
				if !errors.Is(err, strconv.ErrSyntax) {
					t.Errorf("error should wrap strconv.ErrSyntax, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToByte(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToByte(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToByteCoversEveryDecimal(t *testing.T) {
	for v := 0; v < 1024; v++ {
		got, err := ToByte(strconv.Itoa(v))
		if err != nil {
			t.Fatalf("ToByte(%d) error: %v", v, err)
		}
		if int(got) != v&0xFF {
			t.Fatalf("ToByte(%d) = %d, want %d", v, got, v&0xFF)
		}
	}
}

func TestIsParseError(t *testing.T) {
	_, err := ToByte("NOPE")
	if !IsParseError(err) {
		t.Errorf("IsParseError(%v) = false", err)
	}
	if IsParseError(errors.New("other")) {
		t.Error("IsParseError(other) = true")
	}
}
