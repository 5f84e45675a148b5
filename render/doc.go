// Package render provides Presenter implementations for the widget
// controller.
//
// # Overview
//
// HTMLPresenter produces the embeddable widget markup the original browser
// widget rendered into a host page: a floating container with themed message
// bubbles, a typing indicator, and an injected stylesheet. Bot-authored text
// is converted from markdown via goldmark; user-authored text is HTML-escaped
// verbatim. Hosts snapshot the current markup with HTML().
//
// TerminalPresenter is a line-oriented renderer over an io.Writer, used by
// the coffeesip-chat demo binary and convenient in tests.
package render
