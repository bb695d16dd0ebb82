// Package token inspects backend-issued JWT access tokens for scheduling
// purposes.
//
// The only question this package answers is "should this token be renewed
// now?". It decodes the token's exp claim without verifying the signature:
// the claim is a client-side scheduling hint, and the backend independently
// enforces token validity on every request. Do not add signature checks
// here.
//
// IsExpired fails closed: an empty, malformed or exp-less token is reported
// as expired, which makes the caller attempt a refresh instead of sending a
// credential that cannot work.
package token
