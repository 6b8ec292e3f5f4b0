package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/pkg/vault"
)

type vaultPasswordRequest struct {
	Password string `json:"password" binding:"required"`
	Tier     string `json:"tier"`
}

type storeSecretRequest struct {
	Value           string   `json:"value" binding:"required"`
	AllowedPlugins  []string `json:"allowedPlugins"`
	RotateAfterDays int      `json:"rotateAfterDays"`
}

// vaultInitHandler handles POST /api/v1/vault/init. The vault unlocks
// immediately after initialization.
func (s *Server) vaultInitHandler(c *gin.Context) {
	var req vaultPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}
	tier := vault.TierStandard
	if req.Tier != "" {
		tier = vault.Tier(req.Tier)
	}
	if err := s.deps.Vault.Initialize([]byte(req.Password), tier); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"unlocked": true, "tier": string(tier)})
}

// vaultUnlockHandler handles POST /api/v1/vault/unlock.
func (s *Server) vaultUnlockHandler(c *gin.Context) {
	var req vaultPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}
	if err := s.deps.Vault.Unlock([]byte(req.Password)); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unlocked": true})
}

// vaultLockHandler handles POST /api/v1/vault/lock.
func (s *Server) vaultLockHandler(c *gin.Context) {
	s.deps.Vault.Lock()
	c.JSON(http.StatusOK, gin.H{"unlocked": false})
}

// listSecretsHandler handles GET /api/v1/vault/secrets. Metadata only;
// secret values are never returned over the API.
func (s *Server) listSecretsHandler(c *gin.Context) {
	infos, err := s.deps.Vault.List()
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"secrets": infos, "count": len(infos)})
}

// storeSecretHandler handles PUT /api/v1/vault/secrets/:name.
func (s *Server) storeSecretHandler(c *gin.Context) {
	var req storeSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}
	err := s.deps.Vault.Store(c.Param("name"), []byte(req.Value), req.AllowedPlugins,
		vault.StoreOptions{RotateAfterDays: req.RotateAfterDays})
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": c.Param("name")})
}

// deleteSecretHandler handles DELETE /api/v1/vault/secrets/:name.
func (s *Server) deleteSecretHandler(c *gin.Context) {
	if err := s.deps.Vault.Delete(c.Param("name")); err != nil {
		abortError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
