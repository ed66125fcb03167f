package google

// DefaultOAuthScopes are the Google OAuth scopes required for full MCP
// functionality. These scopes are used consistently across the application
// for OAuth configurations.
//
// The scopes provide access to:
//   - Gmail: read-only
//   - Google Drive: read-only (file metadata and content export)
//   - Google Calendar: read-only
//   - Google Tasks: full access (task creation and updates)
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Gmail scope
	"https://www.googleapis.com/auth/gmail.readonly",

	// Google Drive scope
	"https://www.googleapis.com/auth/drive.readonly",

	// Google Calendar scope
	"https://www.googleapis.com/auth/calendar.readonly",

	// Google Tasks scope
	"https://www.googleapis.com/auth/tasks",
}
