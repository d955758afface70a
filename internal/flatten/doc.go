// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flatten converts nested Go values into an ordered list of
// dotted-path/string pairs, the representation used for query strings and
// application/x-www-form-urlencoded bodies of outbound API calls.
//
// Traversal order is part of the contract: struct fields are visited in
// declaration order, values implementing [Flattenable] in the order they
// list their fields, map keys in sorted order and slice elements by index.
// Nil values produce no entries at all.
//
//	type Filter struct {
//	    Query string `url:"q"`
//	    Page  *Page  `url:"page"`
//	}
//
//	entries, _ := flatten.Flatten(Filter{Query: "a b", Page: &Page{Number: 2, Size: 10}}, "")
//	// [{q a b} {page.number 2} {page.size 10}]
//	flatten.Join(entries)
//	// q=a%20b&page.number=2&page.size=10
//
// Cyclic values are not supported: a value that reaches itself through a
// pointer or map is rejected with [ErrCyclicValue].
package flatten
