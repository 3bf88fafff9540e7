// Package service contains the item use cases. It sits between the HTTP
// handlers and the store: it validates input, checks existence and applies
// transactional boundaries for operations that read before they write.
//
// Service methods return sentinel errors (ErrItemNotFound) for expected
// conditions and wrap unexpected ones in ItemServiceError, so callers can use
// errors.Is and errors.As and the API layer can pick a status code.
package service
