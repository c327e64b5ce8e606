package context

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"a", false},
		{"local", false},
		{"prod-eu-1", false},
		{strings.Repeat("a", 63), false},
		{"", true},
		{strings.Repeat("a", 64), true},
		{"-local", true},
		{"local-", true},
		{"Local", true},
		{"my_ctx", true},
		{"my ctx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContext_Validate(t *testing.T) {
	assert.NoError(t, Context{Name: "x", Endpoint: "http://x/mcp"}.Validate())
	assert.NoError(t, Context{Name: "x", Endpoint: "http://x/sse", Transport: "sse"}.Validate())
	assert.Error(t, Context{Name: "x"}.Validate())
	assert.Error(t, Context{Name: "x", Endpoint: "http://x/mcp", Transport: "stdio"}.Validate())
}

func TestConfig_PutRemove(t *testing.T) {
	cfg := &Config{}
	cfg.Put(Context{Name: "a", Endpoint: "1"})
	cfg.Put(Context{Name: "b", Endpoint: "2"})
	cfg.Put(Context{Name: "a", Endpoint: "3"})
	cfg.CurrentContext = "a"

	assert.Equal(t, []string{"a", "b"}, cfg.Names())
	assert.Equal(t, "3", cfg.Current().Endpoint)

	assert.True(t, cfg.Remove("a"))
	assert.False(t, cfg.Remove("a"))
	assert.Empty(t, cfg.CurrentContext)
	assert.Nil(t, cfg.Current())
}
