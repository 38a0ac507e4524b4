package mcp

import (
	"strings"
	"testing"

	"github.com/tallyops/xero-mcp/internal/log"
)

func TestNewServerValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"missing name", Config{Version: "1.0.0"}, "name"},
		{"missing version", Config{Name: "xero-mcp"}, "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServer(tt.cfg)
			if err == nil {
				t.Fatal("NewServer() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	srv, err := NewServer(Config{
		Name:    "xero-mcp",
		Version: "test",
		Logger:  log.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	if srv.ToolCount() == 0 {
		t.Error("ToolCount() = 0, want registered tools")
	}
	if srv.HTTPHandler() == nil {
		t.Error("HTTPHandler() = nil")
	}
}
