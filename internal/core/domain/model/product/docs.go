// Package product contains the Product aggregate: a purchasable item with a
// name and a non-negative price. Products are immutable once referenced by a
// menu; menu price validation reads the product price as a snapshot at menu
// creation time.
package product
