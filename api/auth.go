package api

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/user"
)

var (
	// appJWTConfig is the default JWT auth middleware config.
	appJWTConfig = middleware.JWTConfig{
		SigningKey:    []byte(core.Conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "userToken",
		Claims:        new(Claims),
	}
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

func getAccountClaims(acct Account) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   strconv.Itoa(acct.Profile.ID),
			Audience:  "Shule",
			ExpiresAt: now.Add(core.Conf.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name: acct.Profile.Name,
		Role: acct.Role.String(),
	}
}

func authenticate(uname, pwd string, dir *directory) (*Claims, error) {
	acct, err := dir.getByUsername(uname)
	if err != nil {
		return nil, errAuthenticationFailed
	}
	if err := acct.checkPassword(pwd); err != nil {
		return nil, errAuthenticationFailed
	}
	return getAccountClaims(acct), nil
}

// generateToken generates a signed JWT token string representing the account Claims.
func generateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(appJWTConfig.SigningKey)
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(appJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func getContextAccount(ctx echo.Context, dir *directory) (Account, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return Account{}, err
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return Account{}, errUnauthorized
	}
	return dir.getByID(id)
}

// roleMiddleware gates an endpoint to the given roles.
func roleMiddleware(roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if len(allowed) == 0 || allowed[user.ParseRole(claims.Role)] {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}
