package gateway_mocks

//go:generate mockgen -source=../gateway.go -destination=gateway_mocks.go -package=gateway_mocks

// This file contains the go:generate directive to generate mocks for the gateway interfaces.
// To regenerate the mocks, run:
//   go generate ./internal/gateway/gateway_mocks
