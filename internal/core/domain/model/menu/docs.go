// Package menu contains the Menu aggregate and its supporting entities.
//
// A Menu is a purchasable combination of products sold at a fixed price.
// Its composition is an ordered list of MenuProduct lines, each referencing a
// product by identifier with a fixed quantity. A Menu always belongs to
// exactly one MenuGroup.
//
// The central invariant lives in NewMenu: the menu price must not exceed the
// sum of product price times line quantity over the composition, evaluated
// against the product prices resolved at creation time. The check is a
// snapshot; later product price changes do not re-trigger it, which is why
// RestoreMenu rehydrates persisted menus without the composition check.
package menu
