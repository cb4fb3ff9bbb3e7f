// Package layer implements the symbolic-tag catalog and active-layer bitmask
// used to conditionally enable steps and decorators.
//
// A Catalog declares the tags a profile understands and hands out opaque
// Masks. A step or decorator carries a Tags declaration; IsEnabled answers
// whether that declaration intersects the active mask. The bit layout is an
// implementation detail of the catalog and is never part of the contract.
package layer
