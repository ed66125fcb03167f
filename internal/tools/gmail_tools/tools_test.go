package gmail_tools

import "testing"

func TestGetAccountFromArgs(t *testing.T) {
	// Test with default account (no account specified)
	args := map[string]interface{}{}
	account := getAccountFromArgs(args)
	if account != "default" {
		t.Errorf("Expected 'default' account, got %s", account)
	}

	// Test with specific account
	args = map[string]interface{}{
		"account": "personal",
	}
	account = getAccountFromArgs(args)
	if account != "personal" {
		t.Errorf("Expected 'personal' account, got %s", account)
	}

	// Test with non-string account value
	args = map[string]interface{}{
		"account": 42,
	}
	account = getAccountFromArgs(args)
	if account != "default" {
		t.Errorf("Expected 'default' account for non-string value, got %s", account)
	}
}
