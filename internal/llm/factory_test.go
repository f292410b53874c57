package llm

import "testing"

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		pname   string
	}{
		{"openai", Config{Provider: "openai", APIKey: "k"}, false, "openai"},
		{"anthropic", Config{Provider: "anthropic", APIKey: "k"}, false, "anthropic"},
		{"claude alias", Config{Provider: "claude", APIKey: "k"}, false, "anthropic"},
		{"ollama", Config{Provider: "ollama"}, false, "ollama"},
		{"case insensitive", Config{Provider: "OpenAI", APIKey: "k"}, false, "openai"},
		{"empty", Config{}, true, ""},
		{"unknown", Config{Provider: "parrot"}, true, ""},
		{"openai without key", Config{Provider: "openai"}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if p.Name() != tt.pname {
				t.Errorf("Expected provider %q, got %q", tt.pname, p.Name())
			}
		})
	}
}
