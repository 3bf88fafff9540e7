// Package api handles incoming HTTP requests for the item resource: routing
// parameters, request validation, and response formatting. It translates
// HTTP concerns into ItemService and batch processor calls.
package api
