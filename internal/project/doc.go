// Package project is the host-side model of a multi-module build: the graph
// of modules, their mutable output paths, their optional platform
// configuration and the one-shot evaluation lifecycle the host drives.
//
// Nothing in this package patches anything. It only offers the hooks
// (AfterEvaluate, EvaluationDependsOn) that the configuration pass uses, and
// the host-side driver (Graph.Evaluate) that fires them.
package project
