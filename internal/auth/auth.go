// Package auth guards the admin API with a cookie session. Admins sign in
// with the configured username and password or, when configured, through an
// OIDC provider.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	config "github.com/JoseMiguelMilani/teste-site/configs"
)

const (
	SessionName = "gosess"

	sessionAdminKey = "admin"
	sessionTokenKey = "admin_token"
	contextAdminKey = "admin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PasswordAuth struct {
	username string
	password string
}

func NewPasswordAuth(cfg config.ServerConfig) *PasswordAuth {
	return &PasswordAuth{username: cfg.AdminUsername, password: cfg.AdminPassword}
}

func (a *PasswordAuth) valid(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK && a.password != ""
}

// POST /api/admin/login
func (a *PasswordAuth) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || !a.valid(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Usuário ou senha incorretos."})
		return
	}

	token, err := startSession(c, a.username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erro ao iniciar sessão."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login realizado com sucesso!", "token": token})
}

// POST /api/admin/logout
func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout realizado com sucesso."})
}

// RequireAdmin rejects requests without an admin session and exposes the
// admin name to handlers through CurrentAdmin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		admin, ok := sess.Get(sessionAdminKey).(string)
		if !ok || admin == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Acesso não autorizado."})
			return
		}
		c.Set(contextAdminKey, admin)
		c.Next()
	}
}

func CurrentAdmin(c *gin.Context) string {
	return c.GetString(contextAdminKey)
}

// SetAdmin stores admin in the session. Tests use it to mint a cookie.
func SetAdmin(sess sessions.Session, admin string) {
	sess.Set(sessionAdminKey, admin)
	sess.Set(sessionTokenKey, uuid.NewString())
}

func startSession(c *gin.Context, admin string) (string, error) {
	sess := sessions.Default(c)
	sess.Clear()
	SetAdmin(sess, admin)
	if err := sess.Save(); err != nil {
		return "", err
	}
	token, _ := sess.Get(sessionTokenKey).(string)
	return token, nil
}
