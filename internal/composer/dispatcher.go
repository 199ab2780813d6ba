package composer

import "log"

// Dispatcher is the narrow boundary to the host environment's outbound side
// effects. Keeping it to two calls leaves the composer fully testable without
// a real browser host.
type Dispatcher interface {
	// OpenURL asks the host to open an outbound navigation.
	OpenURL(url string) error

	// CopyText asks the host to place text on the clipboard.
	CopyText(text string) error
}

// LogDispatcher is the server-side dispatcher: the storefront backend cannot
// navigate on the visitor's behalf, so it records the hand-off and lets the
// HTTP response carry the URL to the client.
type LogDispatcher struct{}

func (LogDispatcher) OpenURL(url string) error {
	log.Printf("order deep link ready: %s", url)
	return nil
}

func (LogDispatcher) CopyText(string) error {
	return nil
}
