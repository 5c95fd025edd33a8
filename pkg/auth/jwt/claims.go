package jwt

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/vitistack/resolver-shim/internal/api/routes"
)

type UserClaims struct {
	Name           string   `json:"name"`
	AllowedMethods []string `json:"allowed_methods"`
	AllowedRoutes  []string `json:"allowed_routes"`
	jwt.RegisteredClaims
}

type Role string

const (
	ADMIN Role = "ADMIN"
	RW    Role = "RW" // Read/Write
	RO    Role = "RO" // Read-Only
)

type contextKey string

const (
	RequestMethodKey = contextKey("request_method")
	RequestRouteKey  = contextKey("request_route")
)

var issuer *TokenIssuer

// Init registers the shared secret used to validate (and issue) tokens.
// An empty secret leaves validation uninitialized, so every token is
// rejected; anything signed with an empty HMAC key would otherwise verify.
func Init(secret []byte, opts ...tokenIssuerOption) {
	if len(secret) == 0 {
		issuer = nil
		return
	}
	issuer = NewTokenIssuer(secret, opts...)
}

func getUserClaims(name string) (UserClaims, bool) {
	for _, claimsForRole := range endpointUserClaims {
		for _, userClaims := range claimsForRole {
			if userClaims.Name == name {
				return userClaims, true
			}
		}
	}
	return UserClaims{}, false
}

// Validate checks the token signature, then the requester's method and route
// against its role's claims. Default deny.
func Validate(ctx context.Context, tokenString string) (*JWTError, error) {
	if issuer == nil {
		return Errors[ErrUnAuthorized], fmt.Errorf("token validation not initialized")
	}

	tokenString = strings.TrimSpace(tokenString)
	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(t *jwt.Token) (any, error) {
			return issuer.secret, nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{
			issuer.signingMethod.Alg(),
		}),
	)
	if err != nil {
		return Errors[ErrUnAuthorized], fmt.Errorf("invalid token: %w", err)
	}

	requestClaims, ok := token.Claims.(*UserClaims)
	if !ok {
		return Errors[ErrUnAuthorized], fmt.Errorf("invalid claims: unable to locate user claims section")
	}

	userClaims, ok := getUserClaims(requestClaims.Name)
	if !ok {
		return Errors[ErrForbidden], fmt.Errorf("invalid role: %s not registered as a service role", requestClaims.Name)
	}

	method, ok := ctx.Value(RequestMethodKey).(string)
	if !ok {
		return Errors[ErrForbidden], fmt.Errorf("could not parse request method")
	}

	if !slices.Contains(userClaims.AllowedMethods, method) {
		return Errors[ErrUnAuthorized], fmt.Errorf("not allowed to perform %s action", method)
	}

	route, ok := ctx.Value(RequestRouteKey).(string)
	if !ok {
		return Errors[ErrForbidden], fmt.Errorf("could not parse request route")
	}

	for _, allowedRoute := range userClaims.AllowedRoutes {
		match, err := regexp.MatchString(allowedRoute, route)
		if err != nil {
			return Errors[ErrForbidden], fmt.Errorf("failed to match regex: %w", err)
		}

		if match {
			return nil, nil
		}
	}

	return Errors[ErrForbidden], fmt.Errorf("no route matched: default deny")
}

var roleMethod = map[Role][]string{
	RW: {
		http.MethodDelete,
		http.MethodGet,
		http.MethodPost,
	},
	RO: {
		http.MethodGet,
	},
}

var endpointUserClaims = map[Role][]UserClaims{
	ADMIN: {
		{
			Name:           string(ADMIN),
			AllowedMethods: roleMethod[RW],
			AllowedRoutes: []string{
				".*",
			},
		},
	},
	RO: {
		{
			Name:           "SHIM-READER",
			AllowedMethods: roleMethod[RO],
			AllowedRoutes: []string{
				fmt.Sprintf("^%s$", routes.OVERRIDES),
				fmt.Sprintf("^%s/.*$", routes.RESOLVE),
			},
		},
	},
	RW: {
		{
			Name:           "OVERRIDER",
			AllowedMethods: roleMethod[RW],
			AllowedRoutes: []string{
				fmt.Sprintf("^%s$", routes.OVERRIDES),
				fmt.Sprintf("^%s/.*$", routes.OVERRIDES),
			},
		},
	},
}
