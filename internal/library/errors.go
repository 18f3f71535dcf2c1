package library

import "errors"

// ErrNoBoards indicates a kanban document without a single heading line;
// the load aborts rather than producing a partial library.
var ErrNoBoards = errors.New("kanban document has no heading lines")

// ErrUninitializedID indicates an id slot the parser never touched reached
// reconciliation. This is an internal consistency failure, distinct from
// the normal "empty, needs assignment" case.
var ErrUninitializedID = errors.New("uninitialized id slot at reconciliation")
