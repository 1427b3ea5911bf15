// Package dispatch is a small request-dispatch core. Handlers are plain Go
// functions of up to ten parameters; the framework decodes their arguments
// from a raw little-endian byte payload and reports a two-valued Status.
//
// Handlers are registered under a (method, path) key with the generated
// per-arity helpers:
//
//	s := dispatch.New()
//	dispatch.Get0(s, "/", func() dispatch.Status { return dispatch.StatusSuccess })
//	dispatch.Get1(s, "/book", queryBook)  // func(uint64) dispatch.Status
//	dispatch.Post2(s, "/bill", postBill)  // func(uint64, float32) dispatch.Status
//
// Argument i occupies the i-th slot of the request body, contiguous, with
// no padding and no length prefixes. A body for postBill is therefore 8
// bytes of bill number followed by 4 bytes of price:
//
//	body, _ := dispatch.Encode(uint64(20), float32(1.2))
//	status, err := s.Dispatch(ctx, dispatch.NewPost("/bill", body))
//
// Types are erased once, at registration. Dispatch is uniform: lookup,
// extract, invoke, convert. Registration must finish before the server
// starts dispatching; after that the route tables are read without locks.
//
// Fixed-width numeric types (and named types over them) are decoded
// directly. Any other argument type must implement Unmarshaler.
package dispatch

//go:generate go run ./internal/gen -o arity_gen.go
