package domain

// Reply is an outbound message. Keyboard rows become quick-reply buttons;
// a nil Keyboard leaves the user's current keyboard untouched.
type Reply struct {
	Text     string
	Keyboard [][]string
	HTML     bool
	// Quote answers the inbound message directly instead of posting to the chat.
	Quote bool
}
