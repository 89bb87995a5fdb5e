// Package services contains domain services: business operations that span
// aggregates and belong to no single one. CheckoutService converts a cart
// into an order, the central transition of the ordering workflow.
package services
