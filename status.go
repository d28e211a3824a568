package designresolver

// Status is the transient state of one resolution call, delivered through
// the optional status callback. It is never persisted.
type Status string

const (
	StatusResolving Status = "resolving"
	StatusResolved  Status = "resolved"
	StatusError     Status = "error"
)

// StatusFunc receives progress events during a resolution: once before each
// strategy attempt and once at final resolution. A nil StatusFunc means
// silent operation.
type StatusFunc func(status Status, message string)
