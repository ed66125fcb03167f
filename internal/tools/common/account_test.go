package common

import "testing"

func TestGetAccountFromArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "no account argument",
			args:     map[string]interface{}{},
			expected: "default",
		},
		{
			name:     "explicit account",
			args:     map[string]interface{}{"account": "work"},
			expected: "work",
		},
		{
			name:     "empty account string",
			args:     map[string]interface{}{"account": ""},
			expected: "default",
		},
		{
			name:     "non-string account value",
			args:     map[string]interface{}{"account": 123},
			expected: "default",
		},
		{
			name:     "nil args map",
			args:     nil,
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAccountFromArgs(tt.args); got != tt.expected {
				t.Errorf("GetAccountFromArgs() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
