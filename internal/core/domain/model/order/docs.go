// Package order provides the order aggregate of the restaurant ordering
// workflow: an immutable header (customer, total, date) with materialized
// line items, plus the two post-creation transitions the business allows —
// toggling the delivery status and assigning a delivery crew member.
//
// Key business rules:
//   - orders exist only as the result of checking out a non-empty cart
//   - the total is the exact decimal sum of item line prices at creation and
//     is never recomputed
//   - the status alternates between Pending and OutForDelivery; a double
//     toggle is a no-op overall
//   - items are write-once and disappear only with the order itself
package order
