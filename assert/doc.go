// Package assert provides internal invariant checks that can be compiled out.
//
// By default the checks panic when an invariant does not hold. Building with
// the assertions_disabled tag turns every check into a no-op:
//
//	go build -tags assertions_disabled ./...
package assert
