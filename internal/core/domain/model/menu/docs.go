// Package menu provides the catalog side of the restaurant domain: categories
// and the menu items customers order from. The catalog is read-mostly
// reference data; the cart and order packages consult it for pricing and
// titles but never mutate it.
package menu
