package assets

import "testing"

func TestArenas(t *testing.T) {
	arenas, names, err := Arenas()
	if err != nil {
		t.Fatalf("Arenas: %v", err)
	}
	if len(names) != 2 || names[0] != "crossfire" || names[1] != "ring" {
		t.Fatalf("names = %v, want [crossfire ring]", names)
	}

	for _, name := range names {
		data := arenas[name]
		if data.Width <= 0 || data.Height <= 0 {
			t.Errorf("%s: size %vx%v", name, data.Width, data.Height)
		}
		if len(data.Spawns) < 4 {
			t.Errorf("%s: %d spawns, want at least 4", name, len(data.Spawns))
		}
		if len(data.Walls) == 0 {
			t.Errorf("%s: no walls", name)
		}
		if len(data.Movers) == 0 {
			t.Errorf("%s: no movers", name)
		}
	}
}

func TestArena(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "crossfire", false},
		{"ring", "ring", false},
		{"nowhere", "", true},
	}

	for _, tt := range tests {
		data, err := Arena(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Arena(%q) succeeded, want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("Arena(%q): %v", tt.name, err)
			continue
		}
		if data.Name != tt.want {
			t.Errorf("Arena(%q).Name = %q, want %q", tt.name, data.Name, tt.want)
		}
	}
}
