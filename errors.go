package jobhub

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCreds       = "INVALID_CREDENTIALS"
	TextCodeEmailNotFound      = "EMAIL_NOT_FOUND"
	TextCodeEmailTaken         = "EMAIL_TAKEN"
	TextCodeTokenExpired       = "TOKEN_EXPIRED"
	TextCodeTokenMalformed     = "TOKEN_MALFORMED"
	TextCodeTokenRevoked       = "TOKEN_REVOKED"
	TextCodeSessionNotFound    = "SESSION_NOT_FOUND"
	TextCodeClaimsMappingError = "CLAIMS_MAPPING_ERROR"
	TextCodeForbiddenRole      = "FORBIDDEN_ROLE"
	TextCodeEmptyPassword      = "EMPTY_PASSWORD"
)

// ErrIdentityNotFound is returned when no user matches the identifier
var ErrIdentityNotFound = errors.New("Email does not exist", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode(TextCodeEmailNotFound)

// ErrMismatchedHashAndPassword is returned on a failed password comparison
var ErrMismatchedHashAndPassword = errors.New("Wrong password", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest).
	WithTextCode(TextCodeInvalidCreds)

// ErrEmailTaken is returned when sign-up hits an existing email. The source
// renders conflicts as 400, so the code stays CodeBadRequest while the
// category keeps the conflict semantics.
var ErrEmailTaken = errors.New("Email already existed", errors.CategoryConflict).
	WithCode(errors.CodeBadRequest).
	WithTextCode(TextCodeEmailTaken)

// ErrTokenExpired signals a structurally valid token past its exp claim
var ErrTokenExpired = errors.New("Expired token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenExpired)

// ErrTokenMalformed covers bad signatures and undecodable tokens alike;
// both are the same unauthenticated rejection externally
var ErrTokenMalformed = errors.New("Invalid authentication token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenMalformed)

// ErrTokenRevoked is returned when the ledger no longer holds the token
var ErrTokenRevoked = errors.New("Token could be revoked or The admin may delete this account.", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeTokenRevoked)

// ErrUnableToFindSession is returned when a request carries no usable claims
var ErrUnableToFindSession = errors.New("unable to find session", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeSessionNotFound)

// ErrUnableToMapClaims is returned when context claims have the wrong shape
var ErrUnableToMapClaims = errors.New("unable to map claims", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode(TextCodeClaimsMappingError)

// ErrForbiddenRole is returned when the identity's role is outside a
// route's allow-list
var ErrForbiddenRole = errors.New("Forbidden resource", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode(TextCodeForbiddenRole)

// ErrNoEmptyString rejects empty passwords before hashing
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode(TextCodeEmptyPassword)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) && rich.TextCode == TextCodeTokenExpired {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) && rich.TextCode == TextCodeTokenMalformed {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsRevokedError will check for ledger misses
func IsRevokedError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	return errors.As(err, &rich) && rich.TextCode == TextCodeTokenRevoked
}
