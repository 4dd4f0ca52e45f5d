package v1

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pema-app/backend/internal/httputil"
	"github.com/pema-app/backend/internal/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenLifetime  = 15 * time.Minute
	refreshTokenLifetime = 7 * 24 * time.Hour
)

const contextUser = "pema-user"

// signingKey returns the HMAC key used to sign tokens. When JWT_SECRET is
// unset a random key is generated, which invalidates all tokens on restart.
var signingKey = sync.OnceValue(func() []byte {
	if secret, ok := os.LookupEnv("JWT_SECRET"); ok && secret != "" {
		return []byte(secret)
	}

	log.Warn().Msg("JWT_SECRET is not set, generating a random signing key. Tokens will not survive a restart")
	return []byte(uuid.NewString())
})

type tokenClaims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

func newToken(user models.User, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now().In(time.UTC)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
		Type: tokenType,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey())
}

func newTokenPair(user models.User) (TokenPair, error) {
	access, err := newToken(user, "access", accessTokenLifetime)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := newToken(user, "refresh", refreshTokenLifetime)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// parseToken verifies the signature and expiry of a token and returns its
// claims.
func parseToken(token string) (tokenClaims, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return signingKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return tokenClaims{}, errInvalidToken
	}

	return claims, nil
}

// userForClaims loads the user a token was issued for.
func userForClaims(claims tokenClaims) (models.User, error) {
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.User{}, errInvalidToken
	}

	var user models.User
	err = models.DB.First(&user, id).Error
	if err != nil {
		return models.User{}, errInvalidToken
	}

	return user, nil
}

// RequireLogin authenticates the request with the bearer token from the
// Authorization header and stores the user in the context.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(status(errNoToken), httpError{Error: errNoToken.Error()})
			return
		}

		claims, err := parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil || claims.Type != "access" {
			c.AbortWithStatusJSON(status(errInvalidToken), httpError{Error: errInvalidToken.Error()})
			return
		}

		user, err := userForClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// currentUser returns the authenticated user for the request. It must only
// be called from handlers behind RequireLogin.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuthRegister)
	r.POST("/register", RegisterUser)
	r.OPTIONS("/login", OptionsAuthLogin)
	r.POST("/login", Login)
	r.OPTIONS("/refresh", OptionsAuthRefresh)
	r.POST("/refresh", RefreshToken)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuthRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsAuthLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/refresh [options]
func OptionsAuthRefresh(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user account together with its profile and income record
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func RegisterUser(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s, Details: validationDetail(err)})
		return
	}

	if len(request.Password) < 8 {
		s := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &s, Details: validationDetail(errPasswordTooShort)})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{Error: &s})
		return
	}

	user := models.User{
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: string(hash),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PhoneNumber:  request.PhoneNumber,
	}

	err = models.Register(models.DB, &user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s, Details: validationDetail(err)})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a JWT access and refresh token pair
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Email: strings.ToLower(strings.TrimSpace(request.Email))}).First(&user).Error
	if err != nil {
		// Not found maps to invalid credentials, the response must not
		// disclose whether the email is registered
		s := errInvalidCredentials.Error()
		c.JSON(status(errInvalidCredentials), TokenResponse{Error: &s})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		s := errInvalidCredentials.Error()
		c.JSON(status(errInvalidCredentials), TokenResponse{Error: &s})
		return
	}

	pair, err := newTokenPair(user)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &pair})
}

// @Summary		Refresh token
// @Description	Exchanges a valid refresh token for a new token pair
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	TokenResponse
// @Failure		400		{object}	TokenResponse
// @Failure		401		{object}	TokenResponse
// @Param			token	body		RefreshRequest	true	"Refresh token"
// @Router			/v1/auth/refresh [post]
func RefreshToken(c *gin.Context) {
	var request RefreshRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	claims, err := parseToken(request.Refresh)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	if claims.Type != "refresh" {
		s := errNotRefreshToken.Error()
		c.JSON(http.StatusUnauthorized, TokenResponse{Error: &s})
		return
	}

	user, err := userForClaims(claims)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	pair, err := newTokenPair(user)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Data: &pair})
}
