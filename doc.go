// Package view provides the component contract and delegation primitives
// for composable terminal UI trees.
//
// Every displayable element implements the View interface: drawing, size
// negotiation, input dispatch, layout, focus transfer, and tree search.
// Wrapper views (borders, padding, dialog chrome, scroll areas) implement
// View by forwarding each operation to a single owned child through the
// Core accessor pair, overriding only the operations they care about.
//
// The viewgen tool (cmd/viewgen) generates the accessor and forwarding
// boilerplate for wrapper structs from a //viewgen:wrap directive.
package view
