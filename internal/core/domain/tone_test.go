package domain

import (
	"errors"
	"testing"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		input   string
		want    Tone
		wantErr bool
	}{
		{"formal", ToneFormal, false},
		{"casual", ToneCasual, false},
		{"enthusiastic", ToneEnthusiastic, false},
		{"", ToneFormal, false},
		{"sarcastic", "", true},
		{"Formal", "", true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseTone(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("ParseTone(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTone(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
