// Package auth holds the credential and token core of the blog service:
// password hashing, bearer token issuance and validation, resolution of a
// token to the account it names, and the ownership guard that gates
// mutations.
//
// Every authentication failure is an *Error carrying a Reason. All of them
// match ErrNotAuthenticated, so callers at the HTTP boundary see one kind
// while logs keep the detail:
//
//	principal, err := resolver.Resolve(ctx, token)
//	if errors.Is(err, auth.ErrNotAuthenticated) {
//		// 401, whatever the reason
//	}
package auth
