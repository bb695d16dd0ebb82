package tokenstore

import "errors"

var (
	// ErrEdgeUnavailable indicates a cookie read-back helper could not reach the edge
	ErrEdgeUnavailable = errors.New("tokenstore.edge_unavailable")

	// ErrEdgeStatus indicates the edge answered a read-back helper with a non-2xx status
	ErrEdgeStatus = errors.New("tokenstore.edge_status")
)
