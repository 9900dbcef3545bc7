// Package result implements the result envelope of spec.md §3/§4.2: the
// type-erased, immutable carrier for a plugin function's output. The
// envelope is produced once by a plugin function and consumed by the
// executor and by downstream plugin functions; the kernel never inspects or
// mutates its payload, only stores and forwards it by QID.
package result
