// Package product contains the catalog aggregate that order line items
// reference by identifier.
package product
