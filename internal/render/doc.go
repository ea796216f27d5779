// Package render draws terminal progress bars. It detects the terminal
// width, sizes the bar body to sit next to an aligned label column, and
// color-codes the filled segment by how much of the lifespan is spent.
package render
