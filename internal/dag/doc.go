// Package dag holds the evaluation-order constraints declared between
// modules of a project graph. Edges point from a module to the modules that
// must be evaluated after it; Sort yields a deterministic order that honours
// every edge.
package dag
