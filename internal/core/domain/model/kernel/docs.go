// Package kernel provides shared value objects for the restaurant ordering
// domain: UUID identities and exact-decimal Money amounts. Both follow the
// same rules: zero values are invalid, construction goes through factory
// functions, and Validate detects instances that bypassed them.
package kernel
