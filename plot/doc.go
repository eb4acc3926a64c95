// Package plot defines the dendrogram-plotting collaborator interface and
// a thin Graphviz DOT writer as its one in-scope implementation. Real
// charting (rendering an image, opening a window) is left to callers;
// this package only knows how to describe a dendrogram as a graph.
package plot
