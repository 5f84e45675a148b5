// Package transport performs the single request/response exchange with the
// mind13 chat backend.
//
// # Overview
//
// A Client sends one user message per call and classifies the outcome into a
// uniform Result. Transport-level errors and non-success HTTP statuses become
// failures carrying a human-readable detail string; a success with an empty
// payload is still a success with a fallback reply. The client performs no
// retries and enforces no timeout of its own; both are the caller's policy.
//
// # Wire contract
//
// POST {endpoint}/public/chatbot/chat with the credential carried in the
// mind13-chatbot-api-key header and a JSON body of chatbot_uuid,
// session_uuid, and message. The reply text is taken from the first populated
// field among "answer", "message", and "response".
package transport
