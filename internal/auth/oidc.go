package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	config "github.com/JoseMiguelMilani/teste-site/configs"
)

const sessionStateKey = "oidc_state"

type idTokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

type OIDC struct {
	verifier     idTokenVerifier
	oauth2Config *oauth2.Config
	adminEmails  []string
}

func NewOIDC(ctx context.Context, cfg config.OIDCConfig) (*OIDC, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("OIDC provider init error: %w", err)
	}

	return &OIDC{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		adminEmails: cfg.AdminEmails,
	}, nil
}

func (o *OIDC) isAdmin(email string) bool {
	return email != "" && slices.Contains(o.adminEmails, strings.ToLower(email))
}

// GET /auth/login
func (o *OIDC) Login(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "state generation failed"})
		return
	}
	sess := sessions.Default(c)
	sess.Set(sessionStateKey, state)
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "session save failed"})
		return
	}
	c.Redirect(http.StatusFound, o.oauth2Config.AuthCodeURL(state))
}

// GET /auth/callback
func (o *OIDC) Callback(c *gin.Context) {
	sess := sessions.Default(c)
	expected, _ := sess.Get(sessionStateKey).(string)
	sess.Delete(sessionStateKey)
	if expected == "" || c.Query("state") != expected {
		_ = sess.Save()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "state mismatch"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "code missing"})
		return
	}

	ctx := c.Request.Context()
	oauth2Token, err := o.oauth2Config.Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "token exchange failed"})
		return
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "no id_token in token response"})
		return
	}

	idToken, err := o.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "token verification failed"})
		return
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "claims parse error"})
		return
	}

	if !claims.EmailVerified || !o.isAdmin(claims.Email) {
		log.Printf("OIDC login refused for %q", claims.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Acesso não autorizado."})
		return
	}

	token, err := startSession(c, strings.ToLower(claims.Email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Erro ao iniciar sessão."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login realizado com sucesso!", "token": token, "admin": claims.Name})
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
