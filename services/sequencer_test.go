package services

import (
	"testing"
)

func TestNextOrderNumber(t *testing.T) {
	tests := []struct {
		name    string
		last    string
		want    string
		wantErr bool
	}{
		{name: "first order", last: "", want: "PED0001"},
		{name: "increments", last: "PED0001", want: "PED0002"},
		{name: "zero padded", last: "PED0009", want: "PED0010"},
		{name: "keeps width past 9999", last: "PED9999", want: "PED10000"},
		{name: "five digit input", last: "PED10000", want: "PED10001"},
		{name: "missing prefix", last: "0001", wantErr: true},
		{name: "wrong prefix", last: "ORD0001", wantErr: true},
		{name: "short suffix", last: "PED001", wantErr: true},
		{name: "garbage suffix", last: "PEDabcd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOrderNumber(tt.last)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NextOrderNumber(%q) error = %v, wantErr %v", tt.last, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NextOrderNumber(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}
