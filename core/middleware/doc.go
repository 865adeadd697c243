// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: assigns a unique request id to every incoming request, stores it
//     in the context for logger.WithRayID and returns it in the X-Ray-ID
//     response header.
package middleware
