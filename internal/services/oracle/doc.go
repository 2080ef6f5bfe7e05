// Package oracle implements the external disambiguation client the resolver
// escalates to when scoring alone cannot pick a candidate with confidence.
//
// The oracle is a JSON-only chat-completions endpoint. Calls are bounded by
// an in-flight cap (excess requests queue), time out individually, and retry
// transient failures with exponential backoff honoring Retry-After. The
// response contract is strict: either the zero-based index of one offered
// candidate or an explicit "none apply" signal. Anything else is a contract
// violation the caller must fail closed on.
package oracle
