// Package standin provides deterministic, side-effect free implementations
// of the host capabilities the sandbox cannot back with real OS services.
//
// Every operation follows one of three policies:
//
//   - read-style queries with no backing state answer immediately with an
//     empty or neutral value;
//   - change notifications never fire;
//   - operations that need real process, network or rendering integration
//     fail with a capability.NotImplementedError naming the operation.
//
// Operations the application treats as asynchronous return a future that is
// already settled.
package standin
