// ABOUTME: Stylesheet injected by the HTML presenter.
// ABOUTME: Theme and position are class-driven; the accent color is a CSS variable.

package render

// widgetStyles is the base stylesheet for the embeddable widget markup.
const widgetStyles = `
.coffee-sip-widget {
  --cs-primary-color: #007bff;
  --cs-bg-color: #ffffff;
  --cs-text-color: #333333;
  --cs-user-msg-bg: var(--cs-primary-color);
  --cs-bot-msg-bg: #f1f3f4;
  --cs-border-color: #e0e0e0;
  position: fixed;
  z-index: 999999;
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
}
.coffee-sip-widget.position-bottom-right { bottom: 20px; right: 20px; }
.coffee-sip-widget.position-bottom-left { bottom: 20px; left: 20px; }
.coffee-sip-widget.theme-dark {
  --cs-bg-color: #2d2d2d;
  --cs-text-color: #ffffff;
  --cs-bot-msg-bg: #3a3a3a;
  --cs-border-color: #404040;
}
.coffee-sip-chat-window {
  display: none;
  width: 360px;
  height: 480px;
  background: var(--cs-bg-color);
  color: var(--cs-text-color);
  border: 1px solid var(--cs-border-color);
  border-radius: 12px;
  overflow: hidden;
}
.coffee-sip-chat-window.open { display: flex; flex-direction: column; }
.coffee-sip-messages { flex: 1; overflow-y: auto; padding: 12px; }
.coffee-sip-message { margin-bottom: 10px; }
.coffee-sip-message.user .coffee-sip-message-bubble {
  background: var(--cs-user-msg-bg);
  color: #ffffff;
  margin-left: auto;
}
.coffee-sip-message.bot .coffee-sip-message-bubble { background: var(--cs-bot-msg-bg); }
.coffee-sip-message-bubble {
  max-width: 80%;
  padding: 8px 12px;
  border-radius: 12px;
  word-wrap: break-word;
}
.coffee-sip-message-time { font-size: 11px; opacity: 0.6; margin-top: 2px; }
.coffee-sip-typing-dot {
  display: inline-block;
  width: 6px;
  height: 6px;
  border-radius: 50%;
  background: var(--cs-text-color);
  animation: coffee-sip-blink 1s infinite;
}
@keyframes coffee-sip-blink { 50% { opacity: 0.2; } }
`
