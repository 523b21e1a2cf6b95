// Package modelurl provides locally used types and their structure for URL handling between modules.
package modelurl

// FullURL keeps the protocol and resource parts of a URL as independent text fields.
type FullURL struct {
	Protocol string
	Resource string
}
