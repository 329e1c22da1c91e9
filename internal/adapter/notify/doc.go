// Package notify delivers thanks notifications to the downstream broadcast
// service. Delivery is fire-and-forget: Send only reports whether the
// notification was accepted, never whether it arrived.
package notify
