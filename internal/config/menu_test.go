package config

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadMenuFile(t *testing.T) {
	dishes, err := LoadMenuFile(filepath.Join("..", "..", "menu.yaml"))
	if err != nil {
		t.Fatalf("LoadMenuFile returned error: %v", err)
	}
	if len(dishes) != 3 {
		t.Fatalf("expected 3 dishes, got %d", len(dishes))
	}
	if dishes[0].Name() != "Fries" || !dishes[0].Price().Equal(decimal.NewFromInt(4)) {
		t.Fatalf("expected Fries at 4.00 first, got %s %s", dishes[0].Name(), dishes[0].Price())
	}
}

func TestParseMenu(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    int
		wantErr bool
	}{
		{name: "quoted and bare prices", yaml: "dishes:\n  - name: Fries\n    price: \"4.0\"\n  - name: Steak\n    price: 19.99\n", want: 2},
		{name: "empty", yaml: "dishes: []\n", want: 0},
		{name: "bad price", yaml: "dishes:\n  - name: Fries\n    price: cheap\n", wantErr: true},
		{name: "negative price", yaml: "dishes:\n  - name: Fries\n    price: -1\n", wantErr: true},
		{name: "sub-penny price", yaml: "dishes:\n  - name: Mint\n    price: \"0.005\"\n", wantErr: true},
		{name: "missing name", yaml: "dishes:\n  - price: 1\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes, err := ParseMenu([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMenu() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(dishes) != tt.want {
				t.Fatalf("expected %d dishes, got %d", tt.want, len(dishes))
			}
		})
	}
}
