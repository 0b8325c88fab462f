// Package polykit provides CSS-Flexbox-style layout for widget trees,
// with breakpoint-driven responsive properties.
//
// Users import this single package for the core public API: the Flex
// container, flex items, the grid, layout types, and the built-in
// widgets. The engine computes geometry only; hosts apply it through a
// place callback or one of the adapter packages.
package polykit
