// Package order contains the Order aggregate root and its satellite value
// objects: baskets with line items and logo artwork, stage-evidence images,
// contact, invoice and shipping records, and the cancellation audit trail.
//
// The aggregate owns the order status state machine. Status advances only
// through the legal transition chain (Confirmed through Delivered), each
// transition guarded by its predecessor status and by the orthogonal
// rejection state, which can freeze the order at any stage. Transitions
// record the notifications they owe to the workflow roles; the application
// layer persists and broadcasts them.
//
// The order's offer price is derived state: it always equals the sum of
// quantity times unit price over all line items and is recomputed on every
// item mutation, never accepted from callers directly.
package order
