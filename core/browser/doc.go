// Package browser opens URLs in the operator's default browser.
//
// System wraps github.com/pkg/browser. Open and OpenLater never fail: when
// the platform helper is missing or errors, the URL is printed so it can be
// opened by hand.
package browser
