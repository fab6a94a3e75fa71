package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"games.example.org:22", "ssh games.example.org -p 22"},
		{"nonsense", "ssh nonsense"},
	}

	for _, tt := range tests {
		if got := connectHint(tt.addr); got != tt.want {
			t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
