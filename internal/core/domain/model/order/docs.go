// Package order contains the Order aggregate and its value objects: line
// items, discounts, extras, and the lifecycle status. All monetary math goes
// through kernel.Money; all mutation goes through the aggregate root.
package order
