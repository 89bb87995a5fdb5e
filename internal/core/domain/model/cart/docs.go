// Package cart provides the per-customer cart aggregate: lines of
// (menu item, quantity, snapshotted unit price) pending checkout.
//
// Key business rules:
//   - at most one line per (customer, menu item); a duplicate add is a conflict
//   - line price = quantity x unit price, computed once in exact decimal
//     arithmetic at add time
//   - the cart total is the exact sum of stored line prices, independent of
//     line order
//   - clearing an empty cart succeeds; only checkout rejects an empty cart
package cart
