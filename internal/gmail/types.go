package gmail

// MessageSummary is the compact representation returned by message searches
type MessageSummary struct {
	// ID is the Gmail message identifier
	ID string `json:"id"`

	// Subject is the message subject header
	Subject string `json:"subject"`

	// From is the sender header
	From string `json:"from"`

	// Date is the raw Date header value
	Date string `json:"date"`
}

// MessageDetails is the full representation of a single message
type MessageDetails struct {
	// ID is the Gmail message identifier
	ID string `json:"id"`

	// Subject is the message subject header
	Subject string `json:"subject"`

	// From is the sender header
	From string `json:"from"`

	// To is the recipient header
	To string `json:"to"`

	// Date is the raw Date header value
	Date string `json:"date"`

	// Body is the decoded plain-text message body
	Body string `json:"body"`
}
