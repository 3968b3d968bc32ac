// Package order implements the order entity and its kitchen lifecycle.
//
// An Order is one line item placed by a seated client. Its Status value
// object enforces the legal state graph (Pending through Delivered, with
// Cancelled reachable only before the kitchen and Paid only after delivery),
// and every transition is appended to an immutable history log. Dish name
// and price are snapshotted at creation so menu edits never rewrite a
// placed order.
package order
